package calendar

// Bounds restricts which days may be tapped. A nil side is unbounded.
type Bounds struct {
	Min *CalendarDay
	Max *CalendarDay
}

// Allows reports whether day lies within b, inclusive on both sides.
// Comparison is by civil date so bounds built in another zone still apply.
func (b Bounds) Allows(day CalendarDay) bool {
	if b.Min != nil && day.key() < b.Min.key() {
		return false
	}
	if b.Max != nil && day.key() > b.Max.key() {
		return false
	}
	return true
}

// BoundsOf returns bounds spanning a complete range; otherwise unbounded.
func BoundsOf(r DateRange) Bounds {
	if !r.Complete() {
		return Bounds{}
	}
	return Bounds{Min: dayPtr(*r.Start), Max: dayPtr(*r.End)}
}
