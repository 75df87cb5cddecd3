// Package datetime converts the millisecond timestamps stored with
// configurations.
package datetime

import "time"

// DisplayLayout is the format configuration timestamps are shown in.
const DisplayLayout = "2006-01-02 15:04"

// FromMillis converts epoch milliseconds to a time in loc. A nil loc means
// time.Local.
func FromMillis(ms int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(ms).In(loc)
}

// FormatMillis renders epoch milliseconds with DisplayLayout. Zero renders as
// an empty string since it marks a configuration that was never stamped.
func FormatMillis(ms int64, loc *time.Location) string {
	if ms == 0 {
		return ""
	}
	return FromMillis(ms, loc).Format(DisplayLayout)
}

// MustParseMillis parses a DisplayLayout string in UTC into epoch
// milliseconds and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseMillis(s string) int64 {
	t, err := time.ParseInLocation(DisplayLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}
