package calendar_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/pehdsa/journey-native/internal/calendar"
)

func TestBuildMarkedDaysEmpty(t *testing.T) {
	got := calendar.BuildMarkedDays(calendar.DateRange{})
	if len(got) != 0 {
		t.Errorf("BuildMarkedDays(empty) = %v, want no entries", got)
	}
}

func TestBuildMarkedDaysSingle(t *testing.T) {
	for _, r := range []calendar.DateRange{
		rangeOf(t, "2026-08-16", ""),
		rangeOf(t, "2026-08-16", "2026-08-16"),
	} {
		got := calendar.BuildMarkedDays(r)
		want := calendar.MarkedDaySet{
			"2026-08-16": {Start: true, End: true, SingleDay: true},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("BuildMarkedDays(%s) = %v, want %v", describe(r), got, want)
		}
	}
}

func TestBuildMarkedDaysRange(t *testing.T) {
	got := calendar.BuildMarkedDays(rangeOf(t, "2026-08-16", "2026-08-20"))
	want := calendar.MarkedDaySet{
		"2026-08-16": {Start: true},
		"2026-08-17": {InRange: true},
		"2026-08-18": {InRange: true},
		"2026-08-19": {InRange: true},
		"2026-08-20": {End: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildMarkedDays = %v, want %v", got, want)
	}
}

func TestBuildMarkedDaysCrossMonth(t *testing.T) {
	got := calendar.BuildMarkedDays(rangeOf(t, "2028-02-27", "2028-03-02"))
	wantDates := []string{"2028-02-27", "2028-02-28", "2028-02-29", "2028-03-01", "2028-03-02"}
	if !reflect.DeepEqual(got.Dates(), wantDates) {
		t.Errorf("Dates() = %v, want %v", got.Dates(), wantDates)
	}
}

func TestBuildMarkedDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	for _, l := range []*time.Location{loc, ny} {
		// US clocks jump forward on 2026-03-08.
		start, _ := calendar.ParseDay("2026-03-06", l)
		end, _ := calendar.ParseDay("2026-03-10", l)
		got := calendar.BuildMarkedDays(calendar.DateRange{Start: &start, End: &end})
		if len(got) != 5 {
			t.Errorf("%s: BuildMarkedDays across DST = %d entries, want 5 (%v)", l, len(got), got.Dates())
		}
	}
}

// setLocal swaps time.Local for the duration of the test.
func setLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestBuildMarkedDaysFromTimestampOnly(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	for _, loc := range []*time.Location{time.UTC, berlin, saoPaulo} {
		t.Run(loc.String(), func(t *testing.T) {
			setLocal(t, loc)
			start := calendar.CalendarDay{Timestamp: time.Date(2026, 8, 16, 0, 0, 0, 0, loc).UnixMilli()}
			end := calendar.CalendarDay{Timestamp: time.Date(2026, 8, 18, 0, 0, 0, 0, loc).UnixMilli()}

			full := calendar.DateRange{Start: &start, End: &end}
			wantDates := []string{"2026-08-16", "2026-08-17", "2026-08-18"}
			if got := calendar.BuildMarkedDays(full).Dates(); !reflect.DeepEqual(got, wantDates) {
				t.Errorf("BuildMarkedDays = %v, want %v", got, wantDates)
			}
			if got := calendar.FormatRangeLabel(full); got != "16 to 18 of August" {
				t.Errorf("FormatRangeLabel = %q, want %q", got, "16 to 18 of August")
			}

			half := calendar.BuildMarkedDays(calendar.DateRange{Start: &start})
			want := calendar.MarkedDaySet{"2026-08-16": {Start: true, End: true, SingleDay: true}}
			if !reflect.DeepEqual(half, want) {
				t.Errorf("BuildMarkedDays(start only) = %v, want %v", half, want)
			}

			same := calendar.BuildMarkedDays(calendar.DateRange{Start: &start, End: &start})
			if !reflect.DeepEqual(same, want) {
				t.Errorf("BuildMarkedDays(start == end) = %v, want %v", same, want)
			}

			min := day(t, "2026-08-17")
			if (calendar.Bounds{Min: &min}).Allows(start) {
				t.Error("Bounds allowed a timestamp-only day before Min")
			}
		})
	}
}
