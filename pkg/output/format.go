// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/earning-formula/internal/i18n"
	"github.com/iwvelando/earning-formula/internal/model"
	"github.com/iwvelando/earning-formula/pkg/constants"
	"github.com/iwvelando/earning-formula/pkg/format"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Summary is everything the summary views render.
type Summary struct {
	Configuration string                        `json:"configuration" yaml:"configuration"`
	Saved         bool                          `json:"saved" yaml:"saved"`
	Currency      model.Currency                `json:"currency" yaml:"currency"`
	Language      model.Language                `json:"language" yaml:"language"`
	Total         *model.TotalCalculationResult `json:"total" yaml:"total"`
}

// Write renders s in the given output format.
func Write(w io.Writer, outputFormat string, s Summary) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, s)
	case constants.OutputFormatCSV:
		return CsvFormat(w, s)
	case constants.OutputFormatJSON:
		return JSONFormat(w, s)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, s)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table,
// labelled in the summary's language.
func PrettyFormat(w io.Writer, s Summary) error {
	tr := i18n.For(s.Language)
	tag := s.Language.Tag()
	hours := func(h float64) string {
		return format.HoursIn(tag, h) + " " + tr.T(i18n.KeyHoursShort)
	}
	money := func(amount float64) string {
		return format.MoneyIn(tag, amount, s.Currency.Symbol)
	}
	rate := func(r float64) string {
		return format.NumberIn(tag, r) + " " + s.Currency.Symbol + tr.T(i18n.KeyPerHour)
	}

	name := s.Configuration
	if !s.Saved && strings.TrimSpace(name) == "" {
		name = tr.T(i18n.KeyUnsaved)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s: %s ---\n", tr.T(i18n.KeyConfiguration), name)
	if s.Total == nil || len(s.Total.JobResults) == 0 {
		fmt.Fprintf(&b, "%s\n", tr.T(i18n.KeyNoJobs))
		_, err := io.WriteString(w, b.String())
		return err
	}

	t := s.Total
	fmt.Fprintf(&b, "%s\n", tr.T(i18n.KeyTotalResults))
	fmt.Fprintf(&b, "%s | %s\n", tr.T(i18n.KeyTotalMonthlySalary), money(t.TotalMonthlySalary))
	fmt.Fprintf(&b, "%s | %s\n", tr.T(i18n.KeyTotalWeeklyHours), hours(t.TotalWeeklyHours))
	fmt.Fprintf(&b, "%s | %s\n", tr.T(i18n.KeyTotalMonthlyHours), hours(t.TotalMonthlyHours))
	fmt.Fprintf(&b, "%s | %s\n", tr.T(i18n.KeyAverageHourlyRate), rate(t.AverageHourlyRate))
	fmt.Fprintf(&b, "%s | %s\n", tr.T(i18n.KeyWeekdays), hours(t.TotalWeekdayHours))
	fmt.Fprintf(&b, "%s | %s\n", tr.T(i18n.KeyWeekends), hours(t.TotalWeekendHours))

	fmt.Fprintf(&b, "\n%s\n", tr.T(i18n.KeyJobBreakdown))
	for _, r := range t.JobResults {
		fmt.Fprintf(&b, "* %s\n", r.JobName)
		fmt.Fprintf(&b, "  %s | %s\n", tr.T(i18n.KeyMonthlySalary), money(r.Job.MonthlySalary))
		fmt.Fprintf(&b, "  %s | %s\n", tr.T(i18n.KeyWeeklyHours), hours(r.WeeklyHours))
		fmt.Fprintf(&b, "  %s | %s\n", tr.T(i18n.KeyMonthlyHours), hours(r.MonthlyHours))
		fmt.Fprintf(&b, "  %s | %s\n", tr.T(i18n.KeyHourlyRate), rate(r.HourlyRate))
		if r.Job.Mode() == model.DailyHours {
			fmt.Fprintf(&b, "  %s\n", schedule(tr, tag, r.Job.HoursPerDay))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func schedule(tr i18n.Translator, tag language.Tag, hours model.WeekHours) string {
	parts := make([]string, 0, constants.DaysPerWeek)
	for _, day := range model.Days() {
		parts = append(parts, tr.Day(day)+" "+format.HoursIn(tag, hours.Get(day)))
	}
	return strings.Join(parts, ", ")
}

// CsvFormat outputs in comma-separated value format, one row per job and a
// final total row.
func CsvFormat(w io.Writer, s Summary) error {
	var b strings.Builder
	b.WriteString(`"job","monthly salary","weekly hours","monthly hours","hourly rate","weekday hours","weekend hours"` + "\n")
	if s.Total != nil {
		for _, r := range s.Total.JobResults {
			fmt.Fprintf(&b, `"%s","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
				csvEscape(r.JobName), r.Job.MonthlySalary, r.WeeklyHours, r.MonthlyHours,
				r.HourlyRate, r.WeekdayHours, r.WeekendHours)
		}
		t := s.Total
		fmt.Fprintf(&b, `"total","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
			t.TotalMonthlySalary, t.TotalWeeklyHours, t.TotalMonthlyHours,
			t.AverageHourlyRate, t.TotalWeekdayHours, t.TotalWeekendHours)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// JSONFormat outputs the summary as indented JSON.
func JSONFormat(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}

// YAMLFormat outputs the summary as YAML.
func YAMLFormat(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}
