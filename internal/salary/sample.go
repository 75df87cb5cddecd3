package salary

import (
	"time"

	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/format"
)

// SampleConfiguration returns the demo configuration seeded when no
// configuration exists yet.
func SampleConfiguration(now time.Time) model.WorkConfiguration {
	freelance := model.NewMonthlyJob("1", "Freelance project", 240000, 120)
	mainJob := model.NewDailyJob("2", "Main job", 150000,
		model.UniformWeekHours(3.5, model.Weekdays()...))

	return model.WorkConfiguration{
		ID:        constants.SampleConfigurationID,
		Name:      "Sample configuration",
		Jobs:      []model.Job{freelance, mainJob},
		CreatedAt: now.UnixMilli(),
	}
}

// FormatMoney renders a whole amount suffixed with the currency symbol.
func FormatMoney(amount float64, currency model.Currency) string {
	return format.Money(amount, currency.Symbol)
}

// FormatHours renders hours with at most one decimal digit.
func FormatHours(hours float64) string {
	return format.Hours(hours)
}

// FormatNumber renders a value with at most two decimal digits.
func FormatNumber(number float64) string {
	return format.Number(number)
}
