package salary

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/testutil"
)

const tolerance = constants.HoursTolerance

func TestDailyHoursMetrics(t *testing.T) {
	tests := []struct {
		name  string
		hours model.WeekHours
	}{
		{"Weekdays only", model.WeekHours{4, 4, 4, 4, 4, 0, 0}},
		{"Weekend only", model.WeekHours{0, 0, 0, 0, 0, 6, 5.5}},
		{"Uneven schedule", model.WeekHours{8, 7.5, 0, 3.25, 8, 2, 1}},
		{"All zero", model.WeekHours{}},
		{"Full week", model.WeekHours{24, 24, 24, 24, 24, 24, 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := model.NewDailyJob("1", "Job", 1000, tt.hours)

			sum := 0.0
			for _, h := range tt.hours {
				sum += h
			}
			weekly := WeeklyHours(job)
			testutil.AssertFloat(t, "WeeklyHours", weekly, sum, tolerance)
			testutil.AssertFloat(t, "MonthlyHours", MonthlyHours(job), weekly*WeeksPerMonth, tolerance)

			weekday := WeekdayHours(job)
			weekend := WeekendHours(job)
			if weekday+weekend != weekly {
				t.Errorf("WeekdayHours + WeekendHours = %v, expected exactly %v", weekday+weekend, weekly)
			}
		})
	}
}

func TestTotalMonthlyHoursMetrics(t *testing.T) {
	tests := []struct {
		name  string
		total float64
	}{
		{"Typical", 100},
		{"Part time", 37.5},
		{"Maximum", 744},
		{"Zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := model.NewMonthlyJob("1", "Job", 3000, tt.total)
			job.HoursPerDay = model.WeekHours{8, 8, 8, 8, 8, 8, 8} // ignored in this mode

			testutil.AssertFloat(t, "WeeklyHours", WeeklyHours(job), tt.total/WeeksPerMonth, tolerance)
			if MonthlyHours(job) != tt.total {
				t.Errorf("MonthlyHours = %v, expected %v", MonthlyHours(job), tt.total)
			}

			weekday := WeekdayHours(job)
			weekend := WeekendHours(job)
			testutil.AssertFloat(t, "weekday+weekend", weekday+weekend, WeeklyHours(job), tolerance)
			testutil.AssertFloat(t, "weekday*2", weekday*2, weekend*5, tolerance)
		})
	}
}

func TestHourlyRateZeroHours(t *testing.T) {
	jobs := []model.Job{
		model.NewDailyJob("1", "Empty daily", 5000, model.WeekHours{}),
		model.NewMonthlyJob("2", "Empty monthly", 5000, 0),
		model.NewMonthlyJob("3", "Negative salary", -100, 0),
	}
	for _, job := range jobs {
		if rate := HourlyRate(job); rate != 0 {
			t.Errorf("HourlyRate(%s) = %v, expected 0", job.Name, rate)
		}
	}
}

func TestZeroValueInputTypeIsDaily(t *testing.T) {
	job := model.Job{ID: "1", Name: "Legacy", MonthlySalary: 100, HoursPerDay: model.WeekHours{1, 1, 1, 1, 1, 1, 1}, TotalMonthlyHours: 50}
	if WeeklyHours(job) != 7 {
		t.Errorf("WeeklyHours = %v, expected 7", WeeklyHours(job))
	}
}

func TestScenarioTotalMonthlyHoursJob(t *testing.T) {
	job := model.NewMonthlyJob("design", "Design", 3000, 100)
	result := CalculateJobResult(job)

	testutil.AssertFloat(t, "WeeklyHours", result.WeeklyHours, 23.26, 0.005)
	testutil.AssertFloat(t, "HourlyRate", result.HourlyRate, 30, tolerance)
	if result.JobID != "design" || result.JobName != "Design" {
		t.Errorf("unexpected job identity in result: %+v", result)
	}
}

func TestScenarioDailyHoursJob(t *testing.T) {
	job := testutil.WeekdayJob("shop", "Shop", 1200, 4)
	result := CalculateJobResult(job)

	testutil.AssertFloat(t, "WeeklyHours", result.WeeklyHours, 20, tolerance)
	testutil.AssertFloat(t, "MonthlyHours", result.MonthlyHours, 86, tolerance)
	testutil.AssertFloat(t, "HourlyRate", result.HourlyRate, 13.95, 0.005)
	testutil.AssertFloat(t, "WeekdayHours", result.WeekdayHours, 20, tolerance)
	testutil.AssertFloat(t, "WeekendHours", result.WeekendHours, 0, tolerance)
}

func TestCalculateTotalResults(t *testing.T) {
	config := testutil.Configuration("c", "Two jobs", 0,
		model.NewMonthlyJob("a", "A", 1000, 100),
		model.NewMonthlyJob("b", "B", 2000, 200),
	)

	total := CalculateTotalResults(config)

	testutil.AssertFloat(t, "TotalMonthlySalary", total.TotalMonthlySalary, 3000, tolerance)
	testutil.AssertFloat(t, "TotalMonthlyHours", total.TotalMonthlyHours, 300, tolerance)
	testutil.AssertFloat(t, "AverageHourlyRate", total.AverageHourlyRate, 10, tolerance)
	testutil.AssertFloat(t, "TotalWeeklyHours", total.TotalWeeklyHours, 300/WeeksPerMonth, tolerance)
	testutil.AssertFloat(t, "weekday+weekend", total.TotalWeekdayHours+total.TotalWeekendHours, total.TotalWeeklyHours, tolerance)

	if len(total.JobResults) != 2 {
		t.Fatalf("expected 2 job results, got %d", len(total.JobResults))
	}
	if r := testutil.FindJobResult(total.JobResults, "b"); r == nil || r.HourlyRate != 10 {
		t.Errorf("unexpected result for job b: %+v", r)
	}
}

func TestCalculateTotalResultsMixedModes(t *testing.T) {
	daily := testutil.WeekdayJob("d", "Daily", 1200, 4)
	monthly := model.NewMonthlyJob("m", "Monthly", 3000, 100)

	total := CalculateJobsTotal([]model.Job{daily, monthly})

	testutil.AssertFloat(t, "TotalMonthlyHours", total.TotalMonthlyHours, 186, tolerance)
	testutil.AssertFloat(t, "TotalMonthlySalary", total.TotalMonthlySalary, 4200, tolerance)
	testutil.AssertFloat(t, "AverageHourlyRate", total.AverageHourlyRate, 4200.0/186.0, tolerance)
}

func TestCalculateTotalResultsEmpty(t *testing.T) {
	total := CalculateTotalResults(model.WorkConfiguration{})
	if total.AverageHourlyRate != 0 || total.TotalMonthlyHours != 0 || total.TotalMonthlySalary != 0 {
		t.Errorf("expected zero totals, got %+v", total)
	}
	if total.JobResults == nil || len(total.JobResults) != 0 {
		t.Errorf("expected empty, non-nil job results, got %v", total.JobResults)
	}
}

func TestValidateJob(t *testing.T) {
	tests := []struct {
		name     string
		job      model.Job
		expected []string
	}{
		{
			name: "Valid daily job",
			job:  testutil.WeekdayJob("1", "Shop", 1200, 4),
		},
		{
			name: "Valid monthly job",
			job:  model.NewMonthlyJob("1", "Design", 3000, 744),
		},
		{
			name: "Blank name and zero salary",
			job:  testutil.WeekdayJob("1", "   ", 0, 4),
			expected: []string{
				"Job name must not be empty",
				"Monthly salary must be greater than 0",
			},
		},
		{
			name:     "No daily hours",
			job:      model.NewDailyJob("1", "Idle", 100, model.WeekHours{}),
			expected: []string{"Total weekly hours must be greater than 0"},
		},
		{
			name: "Day over 24 and negative day",
			job:  model.NewDailyJob("1", "Odd", 100, model.WeekHours{25, -1, 0, 0, 0, 0, 0}),
			expected: []string{
				"Hours on Mon must not exceed 24",
				"Hours on Tue must not be negative",
			},
		},
		{
			name: "Weekly ceiling",
			job:  model.NewDailyJob("1", "Too much", 100, model.WeekHours{25, 25, 25, 25, 25, 25, 25}),
			expected: []string{
				"Total weekly hours must not exceed 168",
				"Hours on Mon must not exceed 24",
				"Hours on Tue must not exceed 24",
				"Hours on Wed must not exceed 24",
				"Hours on Thu must not exceed 24",
				"Hours on Fri must not exceed 24",
				"Hours on Sat must not exceed 24",
				"Hours on Sun must not exceed 24",
			},
		},
		{
			name:     "Monthly zero hours",
			job:      model.NewMonthlyJob("1", "Design", 3000, 0),
			expected: []string{"Total monthly hours must be greater than 0"},
		},
		{
			name:     "Monthly ceiling",
			job:      model.NewMonthlyJob("1", "Design", 3000, 745),
			expected: []string{"Total monthly hours must not exceed 744"},
		},
		{
			name:     "NaN salary",
			job:      model.NewMonthlyJob("1", "Design", math.NaN(), 100),
			expected: []string{"Monthly salary must be a finite number"},
		},
		{
			name:     "Infinite salary",
			job:      model.NewMonthlyJob("1", "Design", math.Inf(1), 100),
			expected: []string{"Monthly salary must be a finite number"},
		},
		{
			name:     "NaN day",
			job:      model.NewDailyJob("1", "Shop", 1200, model.WeekHours{math.NaN(), 8}),
			expected: []string{"Hours on Mon must be a finite number"},
		},
		{
			name:     "Infinite day",
			job:      model.NewDailyJob("1", "Shop", 1200, model.WeekHours{8, 0, 0, 0, 0, 0, math.Inf(-1)}),
			expected: []string{"Hours on Sun must be a finite number"},
		},
		{
			name:     "NaN monthly hours",
			job:      model.NewMonthlyJob("1", "Design", 3000, math.NaN()),
			expected: []string{"Total monthly hours must be a finite number"},
		},
		{
			name:     "Monthly mode ignores daily hours",
			job:      model.Job{ID: "1", Name: "Design", MonthlySalary: 3000, InputType: model.TotalMonthlyHours, TotalMonthlyHours: 10, HoursPerDay: model.WeekHours{30}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateJob(tt.job)
			if strings.Join(errs, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("ValidateJob() = %q, expected %q", errs, tt.expected)
			}
		})
	}
}

func TestValidateJobBoundaries(t *testing.T) {
	week := model.WeekHours{24, 24, 24, 24, 24, 24, 24}
	if errs := ValidateJob(model.NewDailyJob("1", "Max", 1, week)); len(errs) != 0 {
		t.Errorf("expected a 168 hour week to be valid, got %v", errs)
	}
	if errs := ValidateJob(model.NewDailyJob("1", "Tiny", 0.01, model.WeekHours{0, 0, 0, 0, 0, 0, 0.1})); len(errs) != 0 {
		t.Errorf("expected a small positive schedule to be valid, got %v", errs)
	}
}

func TestSampleConfiguration(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	sample := SampleConfiguration(now)

	if sample.ID != constants.SampleConfigurationID {
		t.Errorf("expected id %q, got %q", constants.SampleConfigurationID, sample.ID)
	}
	if sample.CreatedAt != now.UnixMilli() {
		t.Errorf("expected createdAt %d, got %d", now.UnixMilli(), sample.CreatedAt)
	}
	if len(sample.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(sample.Jobs))
	}
	if sample.Jobs[0].InputType != model.TotalMonthlyHours || sample.Jobs[1].InputType != model.DailyHours {
		t.Errorf("expected one monthly and one daily job, got %s and %s", sample.Jobs[0].InputType, sample.Jobs[1].InputType)
	}
	for _, job := range sample.Jobs {
		if errs := ValidateJob(job); len(errs) != 0 {
			t.Errorf("sample job %q is invalid: %v", job.Name, errs)
		}
	}

	total := CalculateTotalResults(sample)
	testutil.AssertFloat(t, "TotalMonthlyHours", total.TotalMonthlyHours, 120+17.5*WeeksPerMonth, tolerance)
	if math.IsNaN(total.AverageHourlyRate) || total.AverageHourlyRate <= 0 {
		t.Errorf("unexpected average hourly rate %v", total.AverageHourlyRate)
	}
}

func TestFormatting(t *testing.T) {
	if got := FormatMoney(1200, model.CurrencyUSD); got != "1,200 $" {
		t.Errorf("FormatMoney() = %q", got)
	}
	if got := FormatHours(23.2558); got != "23.3" {
		t.Errorf("FormatHours() = %q", got)
	}
	if got := FormatNumber(13.953488); got != "13.95" {
		t.Errorf("FormatNumber() = %q", got)
	}
}
