package model

import (
	"encoding/json"
	"testing"

	"github.com/iwvelando/earning-formula/pkg/constants"
)

func TestParseDayOfWeek(t *testing.T) {
	tests := []struct {
		input    string
		expected DayOfWeek
		ok       bool
	}{
		{"MONDAY", Monday, true},
		{"mon", Monday, true},
		{" Sun ", Sunday, true},
		{"saturday", Saturday, true},
		{"", Monday, false},
		{"funday", Monday, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			day, ok := ParseDayOfWeek(tt.input)
			if ok != tt.ok || (ok && day != tt.expected) {
				t.Errorf("ParseDayOfWeek(%q) = %v, %v; expected %v, %v", tt.input, day, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestWeekHoursCopySemantics(t *testing.T) {
	original := NewDailyJob("1", "Shop", 1200, UniformWeekHours(4, Weekdays()...))
	edited := original
	edited.HoursPerDay = edited.HoursPerDay.With(Saturday, 6)

	if original.HoursPerDay.Get(Saturday) != 0 {
		t.Errorf("editing a copy changed the original schedule")
	}
	if edited.HoursPerDay.Get(Saturday) != 6 {
		t.Errorf("expected 6 hours on Saturday, got %v", edited.HoursPerDay.Get(Saturday))
	}
	if got := NewWeekHours(map[DayOfWeek]float64{Friday: 2, DayOfWeek(42): 9}); got != (WeekHours{0, 0, 0, 0, 2, 0, 0}) {
		t.Errorf("NewWeekHours() = %v", got)
	}
}

func TestParseJobInputType(t *testing.T) {
	if got, ok := ParseJobInputType("TOTAL_MONTHLY_HOURS"); !ok || got != TotalMonthlyHours {
		t.Errorf("expected TOTAL_MONTHLY_HOURS, got %v %v", got, ok)
	}
	if got, ok := ParseJobInputType("hourly"); ok || got != DailyHours {
		t.Errorf("expected fallback to DAILY_HOURS, got %v %v", got, ok)
	}
}

func TestConfigurationCloneIsIndependent(t *testing.T) {
	config := WorkConfiguration{ID: "a", Name: "A", Jobs: []Job{NewMonthlyJob("1", "Design", 3000, 100)}}
	clone := config.Clone()
	clone.Jobs[0].Name = "Changed"

	if config.Jobs[0].Name != "Design" {
		t.Errorf("clone shares jobs with the original")
	}
	if config.FindJob("1") != 0 || config.FindJob("2") != -1 {
		t.Errorf("FindJob returned unexpected indexes")
	}
	if empty := CloneJobs(nil); empty == nil {
		t.Errorf("CloneJobs(nil) should return an empty, non-nil slice")
	}
	if bare := (WorkConfiguration{ID: "n"}).Clone(); bare.Jobs == nil || len(bare.Jobs) != 0 {
		t.Errorf("Clone() should turn nil jobs into an empty slice, got %#v", bare.Jobs)
	}
}

func TestConfigurationRef(t *testing.T) {
	tests := []struct {
		name      string
		ref       ConfigurationRef
		saved     bool
		persisted string
	}{
		{"Zero value", ConfigurationRef{}, false, constants.CurrentConfigurationID},
		{"Unsaved", UnsavedRef(), false, constants.CurrentConfigurationID},
		{"Saved", SavedRef("abc"), true, "abc"},
		{"Sentinel parses to unsaved", ParseConfigurationRef(constants.CurrentConfigurationID), false, constants.CurrentConfigurationID},
		{"Id parses to saved", ParseConfigurationRef("xyz"), true, "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ref.IsSaved() != tt.saved {
				t.Errorf("IsSaved() = %v, expected %v", tt.ref.IsSaved(), tt.saved)
			}
			if tt.ref.String() != tt.persisted {
				t.Errorf("String() = %q, expected %q", tt.ref.String(), tt.persisted)
			}
		})
	}
}

func TestCurrencyFromCode(t *testing.T) {
	if got := CurrencyFromCode("usd"); got != CurrencyUSD {
		t.Errorf("expected USD, got %v", got)
	}
	if got := CurrencyFromCode("EUR"); got != CurrencyRUB {
		t.Errorf("expected fallback to RUB, got %v", got)
	}
}

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
		ok       bool
	}{
		{"de_DE.UTF-8", "de", true},
		{"en-US", "en", true},
		{"kk_KZ", "kk", true},
		{"zh_CN.GB2312", "zh", true},
		{"ja_JP.UTF-8", "", false},
		{"C", "", false},
		{"POSIX", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			l, ok := MatchLocale(tt.locale)
			if ok != tt.ok || l.Code != tt.expected {
				t.Errorf("MatchLocale(%q) = %q, %v; expected %q, %v", tt.locale, l.Code, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestHostLanguage(t *testing.T) {
	env := map[string]string{"LANG": "fr_FR.UTF-8"}
	if got := HostLanguage(func(k string) string { return env[k] }); got.Code != "fr" {
		t.Errorf("expected fr from LANG, got %q", got.Code)
	}

	env["LC_ALL"] = "es_ES.UTF-8"
	if got := HostLanguage(func(k string) string { return env[k] }); got.Code != "es" {
		t.Errorf("expected LC_ALL to win, got %q", got.Code)
	}

	if got := HostLanguage(func(string) string { return "ja_JP" }); got.Code != constants.DefaultLanguageCode {
		t.Errorf("expected default language, got %q", got.Code)
	}
	if got := HostLanguage(nil); got.Code != constants.DefaultLanguageCode {
		t.Errorf("expected default language for nil getenv, got %q", got.Code)
	}
}

func TestWeekHoursJSON(t *testing.T) {
	hours := UniformWeekHours(4, Weekdays()...).With(Sunday, 1.5)

	data, err := json.Marshal(hours)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded WeekHours
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != hours {
		t.Errorf("round trip = %v, expected %v", decoded, hours)
	}

	if err := json.Unmarshal([]byte(`{"mon": 2, "SATURDAY": 3}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != (WeekHours{2, 0, 0, 0, 0, 3, 0}) {
		t.Errorf("sparse decode = %v", decoded)
	}

	if err := json.Unmarshal([]byte(`{"someday": 2}`), &decoded); err == nil {
		t.Errorf("expected an error for an unknown day")
	}
}
