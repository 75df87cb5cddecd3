// Package format renders money and hour amounts with locale-aware grouping.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/earning-formula/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money returns a whole amount with thousands separators followed by the
// currency symbol (e.g., "1,200 $").
func Money(amount float64, symbol string) string {
	return MoneyIn(language.English, amount, symbol)
}

// MoneyIn is Money with the grouping rules of tag.
func MoneyIn(tag language.Tag, amount float64, symbol string) string {
	p := message.NewPrinter(tag)
	formatted := p.Sprintf("%.0f", math.Round(amount))
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return formatted
	}
	return formatted + " " + symbol
}

// Hours returns an hour amount with thousands separators and at most one
// decimal digit (e.g., "86", "23.3").
func Hours(hours float64) string {
	return HoursIn(language.English, hours)
}

// HoursIn is Hours with the grouping rules of tag.
func HoursIn(tag language.Tag, hours float64) string {
	p := message.NewPrinter(tag)
	rounded := mathutil.RoundTo(hours, 1)
	if rounded == math.Trunc(rounded) {
		return p.Sprintf("%.0f", rounded)
	}
	return p.Sprintf("%.1f", rounded)
}

// Number returns a value with thousands separators and at most two decimal
// digits (e.g., "13.95", "1,234.5").
func Number(value float64) string {
	return NumberIn(language.English, value)
}

// NumberIn is Number with the grouping rules of tag.
func NumberIn(tag language.Tag, value float64) string {
	p := message.NewPrinter(tag)
	rounded := mathutil.Round(value)
	switch {
	case rounded == math.Trunc(rounded):
		return p.Sprintf("%.0f", rounded)
	case mathutil.RoundTo(value, 1) == rounded:
		return p.Sprintf("%.1f", rounded)
	default:
		return p.Sprintf("%.2f", rounded)
	}
}
