package format

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		symbol   string
		expected string
	}{
		{"Small amount", 30, "$", "30 $"},
		{"Thousands separator", 1200, "$", "1,200 $"},
		{"Rounds to whole units", 1234.56, "₽", "1,235 ₽"},
		{"Millions", 2400000, "₸", "2,400,000 ₸"},
		{"No symbol", 999, "", "999"},
		{"Negative amount", -1500, "$", "-1,500 $"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Money(tt.amount, tt.symbol); got != tt.expected {
				t.Errorf("Money(%v, %q) = %q, expected %q", tt.amount, tt.symbol, got, tt.expected)
			}
		})
	}
}

func TestHours(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{"Whole hours", 86, "86"},
		{"One decimal", 23.2558, "23.3"},
		{"Rounds to whole", 19.96, "20"},
		{"Zero", 0, "0"},
		{"Thousands", 1234.5, "1,234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hours(tt.hours); got != tt.expected {
				t.Errorf("Hours(%v) = %q, expected %q", tt.hours, got, tt.expected)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"Two decimals", 13.953488, "13.95"},
		{"One decimal", 12.5, "12.5"},
		{"Integer", 30, "30"},
		{"Grouped", 1234567.891, "1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.value); got != tt.expected {
				t.Errorf("Number(%v) = %q, expected %q", tt.value, got, tt.expected)
			}
		})
	}
}
