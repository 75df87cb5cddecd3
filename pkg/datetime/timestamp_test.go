package datetime

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		loc      *time.Location
		expected string
	}{
		{"Zero", 0, time.UTC, ""},
		{"Epoch plus one minute", 60_000, time.UTC, "1970-01-01 00:01"},
		{"Fixed zone", 1_700_000_000_000, time.FixedZone("UTC+5", 5*3600), "2023-11-15 03:13"},
		{"UTC", 1_700_000_000_000, time.UTC, "2023-11-14 22:13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMillis(tt.ms, tt.loc); got != tt.expected {
				t.Errorf("FormatMillis(%d) = %q, expected %q", tt.ms, got, tt.expected)
			}
		})
	}
}

func TestFromMillisDefaultsToLocal(t *testing.T) {
	if got := FromMillis(1, nil).Location(); got != time.Local {
		t.Errorf("expected time.Local, got %v", got)
	}
}

func TestMustParseMillis(t *testing.T) {
	ms := MustParseMillis("2023-11-14 22:13")
	if got := FormatMillis(ms, time.UTC); got != "2023-11-14 22:13" {
		t.Errorf("round trip = %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for an invalid date")
		}
	}()
	MustParseMillis("not a date")
}
