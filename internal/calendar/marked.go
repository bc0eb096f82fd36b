package calendar

import (
	"sort"

	"github.com/pehdsa/journey-native/internal/timecalc"
)

// Marking describes how a calendar day is highlighted.
type Marking struct {
	Start     bool `json:"startingDay,omitempty"`
	End       bool `json:"endingDay,omitempty"`
	InRange   bool `json:"inRange,omitempty"`
	SingleDay bool `json:"selected,omitempty"`
}

// MarkedDaySet maps a YYYY-MM-DD date string to its marking.
type MarkedDaySet map[string]Marking

// BuildMarkedDays derives the highlighted days for r.
//
// A start-only range marks one day as both start and end. A complete range
// marks every civil day from start to end inclusive, stepping one calendar
// date at a time.
func BuildMarkedDays(r DateRange) MarkedDaySet {
	marked := MarkedDaySet{}
	switch r.State() {
	case Empty:
		return marked
	case Half:
		marked[r.Start.key()] = Marking{Start: true, End: true, SingleDay: true}
		return marked
	}

	first, last := r.Start.Date(), r.End.Date()
	if first.Equal(last) {
		marked[timecalc.FormatDate(first)] = Marking{Start: true, End: true, SingleDay: true}
		return marked
	}
	for d := first; !d.After(last); d = timecalc.NextDay(d) {
		key := timecalc.FormatDate(d)
		switch {
		case d.Equal(first):
			marked[key] = Marking{Start: true}
		case d.Equal(last):
			marked[key] = Marking{End: true}
		default:
			marked[key] = Marking{InRange: true}
		}
	}
	return marked
}

// Dates returns the marked date strings in calendar order.
func (m MarkedDaySet) Dates() []string {
	dates := make([]string, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
