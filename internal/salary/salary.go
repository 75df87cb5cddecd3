// Package salary derives hour and rate metrics from jobs and configurations.
// Every function is pure; validation is a separate explicit step.
package salary

import (
	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/mathutil"
)

// WeeksPerMonth is the average-weeks-per-month conversion factor.
const WeeksPerMonth = constants.WeeksPerMonth

// WeeklyHours returns the hours worked per week. In daily mode it is the
// weekday sum plus the weekend sum, so the split adds up bit for bit.
func WeeklyHours(job model.Job) float64 {
	switch job.Mode() {
	case model.TotalMonthlyHours:
		return job.TotalMonthlyHours / WeeksPerMonth
	default:
		return sumDays(job.HoursPerDay, model.Weekdays()) + sumDays(job.HoursPerDay, model.WeekendDays())
	}
}

// MonthlyHours returns the hours worked per month. In daily mode the weekly
// sum is computed first and then multiplied, so rounding matches
// WeeklyHours(job) * WeeksPerMonth exactly.
func MonthlyHours(job model.Job) float64 {
	switch job.Mode() {
	case model.TotalMonthlyHours:
		return job.TotalMonthlyHours
	default:
		return WeeklyHours(job) * WeeksPerMonth
	}
}

// HourlyRate returns the monthly salary divided by the monthly hours, or 0
// when the job has no hours.
func HourlyRate(job model.Job) float64 {
	return mathutil.SafeDivide(job.MonthlySalary, MonthlyHours(job))
}

// WeekdayHours returns the weekly hours worked Monday to Friday. In total
// monthly mode the split is an approximation that assumes the hours are
// spread evenly over all seven days.
func WeekdayHours(job model.Job) float64 {
	switch job.Mode() {
	case model.TotalMonthlyHours:
		return job.TotalMonthlyHours * (constants.WeekdaysPerWeek / float64(constants.DaysPerWeek)) / WeeksPerMonth
	default:
		return sumDays(job.HoursPerDay, model.Weekdays())
	}
}

// WeekendHours returns the weekly hours worked on Saturday and Sunday, with
// the same even-spread approximation as WeekdayHours in total monthly mode.
func WeekendHours(job model.Job) float64 {
	switch job.Mode() {
	case model.TotalMonthlyHours:
		return job.TotalMonthlyHours * (constants.WeekendDaysPerWeek / float64(constants.DaysPerWeek)) / WeeksPerMonth
	default:
		return sumDays(job.HoursPerDay, model.WeekendDays())
	}
}

// CalculateJobResult combines all metrics of one job.
func CalculateJobResult(job model.Job) model.CalculationResult {
	return model.CalculationResult{
		Job:          job,
		JobID:        job.ID,
		JobName:      job.Name,
		WeeklyHours:  WeeklyHours(job),
		MonthlyHours: MonthlyHours(job),
		HourlyRate:   HourlyRate(job),
		WeekdayHours: WeekdayHours(job),
		WeekendHours: WeekendHours(job),
	}
}

// CalculateTotalResults aggregates the metrics of every job in configuration.
// The total salary is summed from the jobs themselves, not from the results.
func CalculateTotalResults(configuration model.WorkConfiguration) model.TotalCalculationResult {
	total := model.TotalCalculationResult{
		JobResults: make([]model.CalculationResult, 0, len(configuration.Jobs)),
	}

	for _, job := range configuration.Jobs {
		result := CalculateJobResult(job)
		total.JobResults = append(total.JobResults, result)
		total.TotalWeeklyHours += result.WeeklyHours
		total.TotalMonthlyHours += result.MonthlyHours
		total.TotalWeekdayHours += result.WeekdayHours
		total.TotalWeekendHours += result.WeekendHours
	}
	for _, job := range configuration.Jobs {
		total.TotalMonthlySalary += job.MonthlySalary
	}
	total.AverageHourlyRate = mathutil.SafeDivide(total.TotalMonthlySalary, total.TotalMonthlyHours)

	return total
}

// CalculateJobsTotal is CalculateTotalResults over a bare job list.
func CalculateJobsTotal(jobs []model.Job) model.TotalCalculationResult {
	return CalculateTotalResults(model.WorkConfiguration{Jobs: jobs})
}

func sumDays(hours model.WeekHours, days []model.DayOfWeek) float64 {
	total := 0.0
	for _, day := range days {
		total += hours.Get(day)
	}
	return total
}
