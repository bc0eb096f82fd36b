package model

import (
	"time"

	"github.com/pehdsa/journey-native/internal/calendar"
)

// Trip is a trip as returned by the trip API.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// Range returns the trip dates as a complete DateRange in loc.
func (t Trip) Range(loc *time.Location) calendar.DateRange {
	if loc == nil {
		loc = time.Local
	}
	start := calendar.NewDay(t.StartsAt.In(loc))
	end := calendar.NewDay(t.EndsAt.In(loc))
	return calendar.DateRange{Start: &start, End: &end}
}

// NewTrip is the body of a trip creation request.
type NewTrip struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	EmailsToInvite []string  `json:"emails_to_invite"`
}

// TripUpdate is the body of a trip update request.
type TripUpdate struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// Activity is a single planned activity.
type Activity struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

// ActivityDay groups the activities of one trip day.
type ActivityDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// Link is an important link attached to a trip.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Participant is a guest (or the owner) of a trip.
type Participant struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Email       string  `json:"email"`
	IsConfirmed bool    `json:"is_confirmed"`
}

// Draft is the trip creation form kept between invocations.
type Draft struct {
	Destination string             `json:"destination"`
	Dates       calendar.DateRange `json:"dates"`
	Guests      []string           `json:"emails_to_invite"`
}
