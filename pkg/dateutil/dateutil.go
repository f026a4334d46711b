package dateutil

import (
	"fmt"
	"time"
)

// DayFormat is the ISO calendar-day format used for focus session dates.
const DayFormat = "2006-01-02"

// ParseDay parses an ISO YYYY-MM-DD string as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDay formats a time as an ISO YYYY-MM-DD string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// WindowStart returns the start of a trailing window of the given number
// of days ending at now. A 7-day window at 2024-05-08 starts at the
// beginning of 2024-05-01.
func WindowStart(now time.Time, days int) time.Time {
	return StartOfDay(now).AddDate(0, 0, -(days - 1))
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a. Each side is read in its own location,
// so mixing zones (parsed UTC days against local wall-clock times)
// still counts calendar days exactly.
func DaysBetween(a, b time.Time) int {
	ua := utcMidnight(a)
	ub := utcMidnight(b)
	return int(ub.Sub(ua).Hours() / 24)
}

// utcMidnight pins t's calendar date to midnight UTC so day arithmetic
// is exact regardless of t's zone.
func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
