// Package calendar implements trip date-range selection on a calendar: a
// selection is an explicit DateRange value that callers feed into SelectDay
// on every tapped day and store themselves. Marked days and the range label
// are derived from the range and never mutated on their own.
package calendar

import (
	"fmt"
	"time"

	"github.com/pehdsa/journey-native/internal/timecalc"
)

// CalendarDay identifies a single calendar day. DateString is the canonical
// YYYY-MM-DD form and Timestamp is local midnight in milliseconds since epoch.
type CalendarDay struct {
	DateString string `json:"dateString"`
	Timestamp  int64  `json:"timestamp"`
}

// NewDay returns the CalendarDay containing t, in t's location.
func NewDay(t time.Time) CalendarDay {
	midnight := timecalc.StartOfDay(t)
	return CalendarDay{
		DateString: timecalc.FormatDate(midnight),
		Timestamp:  midnight.UnixMilli(),
	}
}

// ParseDay parses a YYYY-MM-DD string as a day in loc (time.Local when nil).
func ParseDay(s string, loc *time.Location) (CalendarDay, error) {
	t, err := timecalc.ParseDate(s, loc)
	if err != nil {
		return CalendarDay{}, err
	}
	return NewDay(t), nil
}

// Date returns the civil date as midnight UTC. Stepping this value with
// timecalc.NextDay never crosses a DST boundary.
func (d CalendarDay) Date() time.Time {
	t, err := time.Parse(timecalc.DateLayout, d.DateString)
	if err != nil {
		// Days built outside NewDay may only carry a timestamp, which is
		// midnight in the local zone.
		y, m, day := time.UnixMilli(d.Timestamp).In(time.Local).Date()
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// key is the YYYY-MM-DD form of d, derived from the timestamp when
// DateString is missing.
func (d CalendarDay) key() string {
	if d.DateString != "" {
		return d.DateString
	}
	return timecalc.FormatDate(d.Date())
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDay) Before(other CalendarDay) bool {
	return d.Timestamp < other.Timestamp
}

func (d CalendarDay) String() string {
	return d.DateString
}

// State is the selection state of a DateRange.
type State int

const (
	// Empty means no day has been chosen yet.
	Empty State = iota
	// Half means only the start day has been chosen.
	Half
	// Full means both start and end are chosen.
	Full
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Half:
		return "half"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DateRange is a possibly incomplete selection. When both ends are set,
// Start is never after End.
type DateRange struct {
	Start *CalendarDay `json:"startsAt,omitempty"`
	End   *CalendarDay `json:"endsAt,omitempty"`
}

// State reports how much of the range has been chosen.
func (r DateRange) State() State {
	switch {
	case r.Start == nil:
		return Empty
	case r.End == nil:
		return Half
	default:
		return Full
	}
}

// Complete reports whether both start and end are set.
func (r DateRange) Complete() bool {
	return r.State() == Full
}

// Days returns the number of calendar days covered by the range, counting
// a start-only range as one day.
func (r DateRange) Days() int {
	switch r.State() {
	case Empty:
		return 0
	case Half:
		return 1
	}
	return timecalc.DaysInclusive(r.Start.Date(), r.End.Date())
}
