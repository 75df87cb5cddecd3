package integration

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/internal/salary"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/testutil"
)

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// largeConfiguration mixes daily and monthly jobs.
func largeConfiguration(jobs int) model.WorkConfiguration {
	config := model.WorkConfiguration{ID: "large", Name: "Large", CreatedAt: 1}
	for i := 0; i < jobs; i++ {
		id := fmt.Sprintf("job-%d", i)
		if i%2 == 0 {
			config.Jobs = append(config.Jobs, testutil.WeekdayJob(id, id, float64(1000+i), 1+float64(i%8)))
		} else {
			config.Jobs = append(config.Jobs, model.NewMonthlyJob(id, id, float64(2000+i), float64(10+i%700)))
		}
	}
	return config
}

// TestPerformance tests performance characteristics
func TestPerformance(t *testing.T) {
	ctx := context.Background()
	conf := loadConfig(t, constants.StorageBackendSQLite, t.TempDir())
	a, cleanup := start(t, conf)
	defer cleanup()

	config := largeConfiguration(500)

	begin := time.Now()
	total := salary.CalculateTotalResults(config)
	calcTime := time.Since(begin)

	begin = time.Now()
	for i := 0; i < 50; i++ {
		c := config
		c.ID = fmt.Sprintf("large-%d", i)
		c.CreatedAt = int64(i)
		if err := a.Store.SaveConfiguration(ctx, c); err != nil {
			t.Fatalf("SaveConfiguration() error = %v", err)
		}
	}
	saveTime := time.Since(begin)

	begin = time.Now()
	exported, err := a.Store.ExportConfigurations(ctx)
	if err != nil {
		t.Fatalf("ExportConfigurations() error = %v", err)
	}
	if _, err := a.Store.ImportConfigurations(ctx, exported, true); err != nil {
		t.Fatalf("ImportConfigurations() error = %v", err)
	}
	roundTripTime := time.Since(begin)

	t.Logf("Performance metrics:")
	t.Logf("  Calculate totals: %v", calcTime)
	t.Logf("  Save configurations: %v", saveTime)
	t.Logf("  Export/import: %v", roundTripTime)

	if elapsed := calcTime + saveTime + roundTripTime; elapsed > 30*time.Second {
		t.Errorf("Total processing time %v exceeds 30 second threshold", elapsed)
	}
	if len(total.JobResults) != 500 {
		t.Errorf("Expected 500 results, got %d", len(total.JobResults))
	}
	if n, _ := a.Store.ConfigurationsCount(ctx); n != 51 {
		t.Errorf("Expected 51 configurations, got %d", n)
	}
}

// TestDataConsistency validates that multiple runs produce identical results
func TestDataConsistency(t *testing.T) {
	config := largeConfiguration(100)
	first := salary.CalculateTotalResults(config)

	for run := 1; run < 5; run++ {
		if got := salary.CalculateTotalResults(config); !reflect.DeepEqual(got, first) {
			t.Fatalf("Run %d produced different results", run)
		}
	}

	for _, result := range first.JobResults {
		testutil.AssertFloat(t, result.JobID+" split",
			result.WeekdayHours+result.WeekendHours, result.WeeklyHours, constants.HoursTolerance)
	}
}

func BenchmarkCalculateTotalResults(b *testing.B) {
	config := largeConfiguration(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		salary.CalculateTotalResults(config)
	}
}
