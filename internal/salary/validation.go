package salary

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
)

// ValidateJob returns every rule the job violates, in a stable order. An
// empty result means the job is valid.
func ValidateJob(job model.Job) []string {
	var errs []string

	if strings.TrimSpace(job.Name) == "" {
		errs = append(errs, "Job name must not be empty")
	}

	switch {
	case !finite(job.MonthlySalary):
		errs = append(errs, "Monthly salary must be a finite number")
	case job.MonthlySalary <= 0:
		errs = append(errs, "Monthly salary must be greater than 0")
	}

	switch job.Mode() {
	case model.DailyHours:
		// the weekly sum is only meaningful once every day is a finite number
		daysFinite := true
		for _, day := range model.Days() {
			if !finite(job.HoursPerDay.Get(day)) {
				daysFinite = false
			}
		}
		if daysFinite {
			weekly := WeeklyHours(job)
			if weekly <= 0 {
				errs = append(errs, "Total weekly hours must be greater than 0")
			}
			if weekly > constants.MaxHoursPerWeek {
				errs = append(errs, fmt.Sprintf("Total weekly hours must not exceed %.0f", constants.MaxHoursPerWeek))
			}
		}
		for _, day := range model.Days() {
			hours := job.HoursPerDay.Get(day)
			switch {
			case !finite(hours):
				errs = append(errs, fmt.Sprintf("Hours on %s must be a finite number", day.Abbreviation()))
			case hours > constants.MaxHoursPerDay:
				errs = append(errs, fmt.Sprintf("Hours on %s must not exceed %.0f", day.Abbreviation(), constants.MaxHoursPerDay))
			case hours < 0:
				errs = append(errs, fmt.Sprintf("Hours on %s must not be negative", day.Abbreviation()))
			}
		}
	case model.TotalMonthlyHours:
		switch {
		case !finite(job.TotalMonthlyHours):
			errs = append(errs, "Total monthly hours must be a finite number")
		case job.TotalMonthlyHours <= 0:
			errs = append(errs, "Total monthly hours must be greater than 0")
		case job.TotalMonthlyHours > constants.MaxHoursPerMonth:
			errs = append(errs, fmt.Sprintf("Total monthly hours must not exceed %.0f", constants.MaxHoursPerMonth))
		}
	}

	return errs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
