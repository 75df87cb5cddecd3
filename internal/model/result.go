package model

// CalculationResult is the derived metrics of one job. It is never persisted.
type CalculationResult struct {
	Job          Job     `json:"-" yaml:"-"`
	JobID        string  `json:"jobId" yaml:"jobId"`
	JobName      string  `json:"jobName" yaml:"jobName"`
	WeeklyHours  float64 `json:"weeklyHours" yaml:"weeklyHours"`
	MonthlyHours float64 `json:"monthlyHours" yaml:"monthlyHours"`
	HourlyRate   float64 `json:"hourlyRate" yaml:"hourlyRate"`
	WeekdayHours float64 `json:"weekdayHours" yaml:"weekdayHours"`
	WeekendHours float64 `json:"weekendHours" yaml:"weekendHours"`
}

// TotalCalculationResult aggregates the results of all jobs in a configuration.
type TotalCalculationResult struct {
	TotalWeeklyHours   float64             `json:"totalWeeklyHours" yaml:"totalWeeklyHours"`
	TotalMonthlyHours  float64             `json:"totalMonthlyHours" yaml:"totalMonthlyHours"`
	TotalMonthlySalary float64             `json:"totalMonthlySalary" yaml:"totalMonthlySalary"`
	AverageHourlyRate  float64             `json:"averageHourlyRate" yaml:"averageHourlyRate"`
	TotalWeekdayHours  float64             `json:"totalWeekdayHours" yaml:"totalWeekdayHours"`
	TotalWeekendHours  float64             `json:"totalWeekendHours" yaml:"totalWeekendHours"`
	JobResults         []CalculationResult `json:"jobResults" yaml:"jobResults"`
}

// Clone returns a copy that shares no memory with t.
func (t TotalCalculationResult) Clone() TotalCalculationResult {
	results := make([]CalculationResult, len(t.JobResults))
	copy(results, t.JobResults)
	t.JobResults = results
	return t
}
