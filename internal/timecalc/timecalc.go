package timecalc

import (
	"fmt"
	"time"
)

// DateLayout is the canonical civil date format used across journey.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as local midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay returns midnight of the following calendar day. It rebuilds the
// date from its fields so the result is midnight even across DST changes.
func NextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether two times fall in the same month of the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AtHour returns the given day at hour:00 local time.
func AtHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// DaysInclusive counts calendar days from a to b inclusive by stepping one
// civil day at a time. Returns 0 when b is before a.
func DaysInclusive(a, b time.Time) int {
	a, b = StartOfDay(a), StartOfDay(b)
	n := 0
	for d := a; !d.After(b); d = NextDay(d) {
		n++
	}
	return n
}
