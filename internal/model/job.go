// Package model defines the value types shared by the calculator, the
// configuration store and the configuration manager.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DayOfWeek identifies a day, Monday first.
type DayOfWeek int

// Days of the week in display order.
const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

var dayAbbreviations = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Days returns all seven days, Monday first.
func Days() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Weekdays returns Monday through Friday.
func Weekdays() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// WeekendDays returns Saturday and Sunday.
func WeekendDays() []DayOfWeek {
	return []DayOfWeek{Saturday, Sunday}
}

// Valid reports whether d is one of the seven days.
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the persisted name of the day, e.g. "MONDAY".
func (d DayOfWeek) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return dayNames[d]
}

// Abbreviation returns the English short name, e.g. "Mon".
func (d DayOfWeek) Abbreviation() string {
	if !d.Valid() {
		return "?"
	}
	return dayAbbreviations[d]
}

// ParseDayOfWeek accepts the persisted name, the abbreviation, or a lowercase
// prefix of either ("mon", "monday").
func ParseDayOfWeek(s string) (DayOfWeek, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return 0, false
	}
	for _, d := range Days() {
		if upper == dayNames[d] || upper == strings.ToUpper(dayAbbreviations[d]) {
			return d, true
		}
	}
	return 0, false
}

// WeekHours holds the hours worked on each day, indexed by DayOfWeek. It is an
// array so that copying a Job copies its schedule.
type WeekHours [7]float64

// NewWeekHours builds a schedule from a sparse day mapping; missing days are 0.
func NewWeekHours(hours map[DayOfWeek]float64) WeekHours {
	var w WeekHours
	for day, h := range hours {
		if day.Valid() {
			w[day] = h
		}
	}
	return w
}

// UniformWeekHours sets the same hours on every day in days.
func UniformWeekHours(hours float64, days ...DayOfWeek) WeekHours {
	var w WeekHours
	for _, day := range days {
		if day.Valid() {
			w[day] = hours
		}
	}
	return w
}

// Get returns the hours for day, 0 for an invalid day.
func (w WeekHours) Get(day DayOfWeek) float64 {
	if !day.Valid() {
		return 0
	}
	return w[day]
}

// With returns a copy of w with day set to hours.
func (w WeekHours) With(day DayOfWeek, hours float64) WeekHours {
	if day.Valid() {
		w[day] = hours
	}
	return w
}

// MarshalJSON renders the schedule as an object keyed by day name.
func (w WeekHours) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, len(w))
	for _, day := range Days() {
		m[day.String()] = w[day]
	}
	return json.Marshal(m)
}

// UnmarshalJSON accepts an object keyed by day name or abbreviation. Missing
// days are 0.
func (w *WeekHours) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out WeekHours
	for key, hours := range m {
		day, ok := ParseDayOfWeek(key)
		if !ok {
			return fmt.Errorf("unknown day %q", key)
		}
		out[day] = hours
	}
	*w = out
	return nil
}

// JobInputType selects which hour field of a Job is authoritative.
type JobInputType string

const (
	// DailyHours means HoursPerDay is authoritative.
	DailyHours JobInputType = "DAILY_HOURS"
	// TotalMonthlyHours means TotalMonthlyHours is authoritative.
	TotalMonthlyHours JobInputType = "TOTAL_MONTHLY_HOURS"
)

// ParseJobInputType maps a persisted name to a JobInputType. Unknown values
// report false.
func ParseJobInputType(s string) (JobInputType, bool) {
	switch JobInputType(strings.ToUpper(strings.TrimSpace(s))) {
	case DailyHours:
		return DailyHours, true
	case TotalMonthlyHours:
		return TotalMonthlyHours, true
	default:
		return DailyHours, false
	}
}

// Job is one income source.
type Job struct {
	ID                string       `json:"id" yaml:"id"`
	Name              string       `json:"name" yaml:"name"`
	MonthlySalary     float64      `json:"monthlySalary" yaml:"monthlySalary"`
	InputType         JobInputType `json:"inputType" yaml:"inputType"`
	HoursPerDay       WeekHours    `json:"hoursPerDay" yaml:"-"`
	TotalMonthlyHours float64      `json:"totalMonthlyHours" yaml:"totalMonthlyHours"`
}

// NewDailyJob builds a job whose hours come from a per-day schedule.
func NewDailyJob(id, name string, monthlySalary float64, hours WeekHours) Job {
	return Job{
		ID:            id,
		Name:          name,
		MonthlySalary: monthlySalary,
		InputType:     DailyHours,
		HoursPerDay:   hours,
	}
}

// NewMonthlyJob builds a job whose hours come from a single monthly total.
func NewMonthlyJob(id, name string, monthlySalary, totalMonthlyHours float64) Job {
	return Job{
		ID:                id,
		Name:              name,
		MonthlySalary:     monthlySalary,
		InputType:         TotalMonthlyHours,
		TotalMonthlyHours: totalMonthlyHours,
	}
}

// Mode returns the input type, treating the zero value as DailyHours.
func (j Job) Mode() JobInputType {
	if j.InputType == TotalMonthlyHours {
		return TotalMonthlyHours
	}
	return DailyHours
}
