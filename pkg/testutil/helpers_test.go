package testutil

import (
	"testing"

	"github.com/iwvelando/earning-formula/internal/model"
)

func TestFindJobResult(t *testing.T) {
	results := []model.CalculationResult{
		{JobID: "a", JobName: "A"},
		{JobID: "b", JobName: "B"},
	}

	found := FindJobResult(results, "b")
	if found == nil || found.JobName != "B" {
		t.Fatalf("FindJobResult() = %v, expected job B", found)
	}
	if FindJobResult(results, "missing") != nil {
		t.Errorf("FindJobResult() expected nil for missing id")
	}
}

func TestFindAndCountConfigurations(t *testing.T) {
	configs := []model.WorkConfiguration{
		Configuration("x", "X", 1),
		Configuration("y", "Y", 2),
		Configuration("x", "X2", 3),
	}

	if got := CountConfigurations(configs, "x"); got != 2 {
		t.Errorf("CountConfigurations() = %d, expected 2", got)
	}
	found := FindConfiguration(configs, "y")
	if found == nil || found.Name != "Y" {
		t.Fatalf("FindConfiguration() = %v, expected Y", found)
	}
	if FindConfiguration(configs, "z") != nil {
		t.Errorf("FindConfiguration() expected nil for missing id")
	}
}

func TestWeekdayJob(t *testing.T) {
	job := WeekdayJob("1", "Shop", 1200, 4)
	if job.InputType != model.DailyHours {
		t.Fatalf("expected daily hours input type, got %s", job.InputType)
	}
	for _, day := range model.Weekdays() {
		if job.HoursPerDay.Get(day) != 4 {
			t.Errorf("expected 4 hours on %s, got %v", day, job.HoursPerDay.Get(day))
		}
	}
	for _, day := range model.WeekendDays() {
		if job.HoursPerDay.Get(day) != 0 {
			t.Errorf("expected 0 hours on %s, got %v", day, job.HoursPerDay.Get(day))
		}
	}
}
