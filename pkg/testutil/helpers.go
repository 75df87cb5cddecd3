// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"testing"

	"github.com/iwvelando/earning-formula/internal/model"
)

// FindJobResult finds a job result by job id in the results slice.
// Returns a pointer to the result if found, nil otherwise.
func FindJobResult(results []model.CalculationResult, jobID string) *model.CalculationResult {
	for i := range results {
		if results[i].JobID == jobID {
			return &results[i]
		}
	}
	return nil
}

// FindConfiguration finds a configuration by id in the configs slice.
// Returns a pointer to the configuration if found, nil otherwise.
func FindConfiguration(configs []model.WorkConfiguration, id string) *model.WorkConfiguration {
	for i := range configs {
		if configs[i].ID == id {
			return &configs[i]
		}
	}
	return nil
}

// CountConfigurations counts the entries with id.
func CountConfigurations(configs []model.WorkConfiguration, id string) int {
	n := 0
	for _, c := range configs {
		if c.ID == id {
			n++
		}
	}
	return n
}

// AssertFloat fails the test when got is further than tolerance from want.
func AssertFloat(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, expected %v (tolerance %v)", name, got, want, tolerance)
	}
}

// WeekdayJob returns a daily-hours job working the same hours Monday to Friday.
func WeekdayJob(id, name string, salary, hoursPerWeekday float64) model.Job {
	return model.NewDailyJob(id, name, salary, model.UniformWeekHours(hoursPerWeekday, model.Weekdays()...))
}

// Configuration returns a configuration holding jobs.
func Configuration(id, name string, createdAt int64, jobs ...model.Job) model.WorkConfiguration {
	return model.WorkConfiguration{ID: id, Name: name, CreatedAt: createdAt, Jobs: model.CloneJobs(jobs)}
}
