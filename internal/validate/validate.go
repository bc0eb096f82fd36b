// Package validate checks trip planner form input before it is sent to the API.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/pehdsa/journey-native/internal/model"
)

// MinDestinationLength is the shortest destination accepted for a trip.
const MinDestinationLength = 4

var validate = validator.New()

// Error is a user-facing validation failure.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsValidation reports whether err is (or wraps) a validation Error.
func IsValidation(err error) bool {
	var v *Error
	return errors.As(err, &v)
}

type tripDetails struct {
	Destination string `validate:"required,min=4"`
}

type guestEmail struct {
	Email string `validate:"required,email"`
}

type activityForm struct {
	Title string `validate:"required"`
	Date  string `validate:"required"`
	Hour  int    `validate:"min=0,max=23"`
}

type linkForm struct {
	Title string `validate:"required"`
	URL   string `validate:"required,url"`
}

type confirmation struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// TripDetails checks the first step of the creation form: a destination
// and a complete date range.
func TripDetails(draft model.Draft) error {
	dest := strings.TrimSpace(draft.Destination)
	if dest == "" || !draft.Dates.Complete() {
		return &Error{Field: "trip", Message: "fill in the destination and both trip dates to continue"}
	}
	return check(tripDetails{Destination: dest})
}

// NewTrip checks the whole creation form, including at least one guest.
func NewTrip(draft model.Draft) error {
	if err := TripDetails(draft); err != nil {
		return err
	}
	if len(draft.Guests) == 0 {
		return &Error{Field: "guests", Message: "invite at least one guest"}
	}
	for _, g := range draft.Guests {
		if err := Email(g); err != nil {
			return err
		}
	}
	return nil
}

// Email checks a single email address.
func Email(email string) error {
	return check(guestEmail{Email: strings.TrimSpace(email)})
}

// Guest checks an email before it is added to guests.
func Guest(email string, guests []string) error {
	if err := Email(email); err != nil {
		return err
	}
	for _, g := range guests {
		if strings.EqualFold(g, strings.TrimSpace(email)) {
			return &Error{Field: "email", Message: fmt.Sprintf("%s is already invited", email)}
		}
	}
	return nil
}

// Activity checks a new activity: title, date and an hour between 0 and 23.
func Activity(title, date string, hour int) error {
	return check(activityForm{Title: strings.TrimSpace(title), Date: date, Hour: hour})
}

// Link checks a new trip link.
func Link(title, url string) error {
	return check(linkForm{Title: strings.TrimSpace(title), URL: strings.TrimSpace(url)})
}

// Confirmation checks the name and email a participant confirms with.
func Confirmation(name, email string) error {
	return check(confirmation{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)})
}

func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &Error{Field: strings.ToLower(fe.Field()), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return fmt.Sprintf("%q is not a valid email", fe.Value())
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
