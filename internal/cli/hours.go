package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/earning-formula/internal/model"
)

// parseWeekHours reads a schedule such as "mon=4,tue=4,sat=2.5". Days left
// out work zero hours.
func parseWeekHours(value string) (model.WeekHours, error) {
	var hours model.WeekHours
	if strings.TrimSpace(value) == "" {
		return hours, nil
	}

	for _, part := range strings.Split(value, ",") {
		key, raw, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return model.WeekHours{}, fmt.Errorf("invalid schedule entry %q, expected day=hours", part)
		}
		day, ok := model.ParseDayOfWeek(key)
		if !ok {
			return model.WeekHours{}, fmt.Errorf("unknown day %q", key)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return model.WeekHours{}, fmt.Errorf("invalid hours for %s: %w", day.Abbreviation(), err)
		}
		hours = hours.With(day, h)
	}
	return hours, nil
}

// parseMode accepts the short CLI names as well as the persisted ones.
func parseMode(value string) (model.JobInputType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "daily":
		return model.DailyHours, nil
	case "monthly":
		return model.TotalMonthlyHours, nil
	}
	if mode, ok := model.ParseJobInputType(value); ok {
		return mode, nil
	}
	return "", fmt.Errorf("invalid mode %q, expected daily or monthly", value)
}
