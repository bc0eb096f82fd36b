package calendar

// SelectDay returns the range that results from tapping day on a calendar
// showing current.
//
// A tap on an empty range sets the start. A tap on a start-only range
// completes it, the earlier of the two days becoming the start. A tap on a
// complete range discards it and starts over from the tapped day.
func SelectDay(current DateRange, tapped CalendarDay) DateRange {
	switch current.State() {
	case Empty:
		return DateRange{Start: dayPtr(tapped)}
	case Half:
		start := *current.Start
		if tapped.Timestamp >= start.Timestamp {
			return DateRange{Start: dayPtr(start), End: dayPtr(tapped)}
		}
		return DateRange{Start: dayPtr(tapped), End: dayPtr(start)}
	default:
		return DateRange{Start: dayPtr(tapped)}
	}
}

// dayPtr copies d so the returned range never aliases the caller's days.
func dayPtr(d CalendarDay) *CalendarDay {
	return &d
}
