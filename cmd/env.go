package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/api"
	"github.com/pehdsa/journey-native/internal/calendar"
	"github.com/pehdsa/journey-native/internal/config"
	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/logging"
	"github.com/pehdsa/journey-native/internal/model"
	"github.com/pehdsa/journey-native/internal/storage"
	"github.com/pehdsa/journey-native/internal/validate"
)

// env bundles what every command needs: data directory, config and zone.
type env struct {
	base string
	cfg  config.Config
	loc  *time.Location
}

func loadEnv() (*env, error) {
	base, err := storage.BaseDir()
	if err != nil {
		return nil, exitcode.Fail("locating data directory", err)
	}
	cfg, err := config.Load(base)
	if err != nil {
		return nil, exitcode.AsUsage(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, exitcode.AsUsage(err)
	}
	return &env{base: base, cfg: cfg, loc: loc}, nil
}

// apiContext bounds a single API call by the configured timeout.
func (e *env) apiContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, e.cfg.Timeout())
}

func (e *env) client(ctx context.Context) *api.Client {
	return api.NewClient(ctx, e.cfg.API.BaseURL, e.cfg.API.Token, slog.Default())
}

func (e *env) formatter() calendar.Formatter {
	return e.cfg.Formatter()
}

func (e *env) today() calendar.CalendarDay {
	return calendar.NewDay(now().In(e.loc))
}

// parseDay parses a YYYY-MM-DD argument in the configured zone.
func (e *env) parseDay(s string) (calendar.CalendarDay, error) {
	d, err := calendar.ParseDay(s, e.loc)
	if err != nil {
		return calendar.CalendarDay{}, exitcode.AsUsage(err)
	}
	return d, nil
}

// checkNotPast rejects days before today; trips cannot be moved into the past.
func (e *env) checkNotPast(day calendar.CalendarDay) error {
	today := e.today()
	if !(calendar.Bounds{Min: &today}).Allows(day) {
		return exitcode.Usagef("%s is in the past; trips start today (%s) or later", day, today)
	}
	return nil
}

// currentTripID returns the trip saved on this device.
func (e *env) currentTripID() (string, error) {
	id, err := storage.LoadTripID(e.base)
	if errors.Is(err, storage.ErrNoTrip) {
		return "", exitcode.Usagef("no trip saved on this device; create one with \"journey trip create\"")
	}
	if err != nil {
		return "", exitcode.Fail("loading saved trip", err)
	}
	return id, nil
}

// fetchTrip loads the current trip from the API. When the API no longer
// knows it, the saved ID is forgotten.
func (e *env) fetchTrip(ctx context.Context, client *api.Client) (model.Trip, error) {
	id, err := e.currentTripID()
	if err != nil {
		return model.Trip{}, err
	}
	trip, err := client.GetTrip(ctx, id)
	if api.IsNotFound(err) {
		if rmErr := storage.RemoveTripID(e.base); rmErr != nil {
			slog.Warn("could not remove stale trip ID", "trip_id", id, logging.Err(rmErr))
		}
		return model.Trip{}, exitcode.Usagef("trip %s no longer exists; it was removed from this device", id)
	}
	if err != nil {
		return model.Trip{}, exitcode.Fail("fetching trip", err)
	}
	return trip, nil
}

// checkForm turns validation failures into usage errors.
func checkForm(err error) error {
	if err == nil {
		return nil
	}
	if validate.IsValidation(err) {
		return exitcode.AsUsage(err)
	}
	return err
}

// dayTime returns local midnight of d in the configured zone.
func (e *env) dayTime(d calendar.CalendarDay) time.Time {
	civil := d.Date()
	return time.Date(civil.Year(), civil.Month(), civil.Day(), 0, 0, 0, 0, e.loc)
}
