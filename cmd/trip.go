package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/calendar"
	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/logging"
	"github.com/pehdsa/journey-native/internal/model"
	"github.com/pehdsa/journey-native/internal/storage"
	"github.com/pehdsa/journey-native/internal/validate"
)

// maxDestinationWidth is how much of the destination the summary line shows.
const maxDestinationWidth = 14

var (
	tripUpdateDestination string
	tripUpdateFrom        string
	tripUpdateTo          string
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Create and manage the current trip",
}

var tripCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the trip from the current draft",
	Args:  cobra.NoArgs,
	RunE:  runTripCreate,
}

var tripShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current trip",
	Args:  cobra.NoArgs,
	RunE:  runTripShow,
}

var tripUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change the current trip's destination or dates",
	Args:  cobra.NoArgs,
	RunE:  runTripUpdate,
}

var tripConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm the trip and send the invitations",
	Args:  cobra.NoArgs,
	RunE:  runTripConfirm,
}

var tripForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Forget the current trip on this device",
	Args:  cobra.NoArgs,
	RunE:  runTripForget,
}

func init() {
	tripUpdateCmd.Flags().StringVar(&tripUpdateDestination, "destination", "", "New destination")
	tripUpdateCmd.Flags().StringVar(&tripUpdateFrom, "from", "", "New start date (YYYY-MM-DD)")
	tripUpdateCmd.Flags().StringVar(&tripUpdateTo, "to", "", "New end date (YYYY-MM-DD)")

	tripCmd.AddCommand(tripCreateCmd)
	tripCmd.AddCommand(tripShowCmd)
	tripCmd.AddCommand(tripUpdateCmd)
	tripCmd.AddCommand(tripConfirmCmd)
	tripCmd.AddCommand(tripForgetCmd)
}

func resetTripFlags() {
	tripUpdateDestination = ""
	tripUpdateFrom = ""
	tripUpdateTo = ""
}

func runTripCreate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}
	if err := checkForm(validate.NewTrip(draft)); err != nil {
		return err
	}
	if e.cfg.Owner.Name == "" || e.cfg.Owner.Email == "" {
		return exitcode.Usagef("set owner.name and owner.email in %s before creating a trip", "~/.journey/config.json")
	}
	if err := checkForm(validate.Email(e.cfg.Owner.Email)); err != nil {
		return err
	}

	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	id, err := e.client(ctx).CreateTrip(ctx, model.NewTrip{
		Destination:    strings.TrimSpace(draft.Destination),
		StartsAt:       e.dayTime(*draft.Dates.Start),
		EndsAt:         e.dayTime(*draft.Dates.End),
		OwnerName:      e.cfg.Owner.Name,
		OwnerEmail:     e.cfg.Owner.Email,
		EmailsToInvite: draft.Guests,
	})
	if err != nil {
		return exitcode.Fail("creating trip", err)
	}

	if err := storage.SaveTripID(e.base, id); err != nil {
		return exitcode.Fail("could not save the trip ID on this device", err)
	}
	if err := storage.ClearDraft(e.base); err != nil {
		slog.Warn("could not clear draft", logging.Err(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Trip created: %s\n", id)
	fmt.Fprintf(out, "%s %s.\n", shortDestination(draft.Destination), e.formatter().Label(draft.Dates))
	return nil
}

func runTripShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()

	trip, err := e.fetchTrip(ctx, e.client(ctx))
	if err != nil {
		return err
	}
	printTrip(cmd.OutOrStdout(), trip, e)
	return nil
}

func runTripUpdate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	client := e.client(ctx)

	trip, err := e.fetchTrip(ctx, client)
	if err != nil {
		return err
	}

	destination := trip.Destination
	if tripUpdateDestination != "" {
		destination = strings.TrimSpace(tripUpdateDestination)
	}
	current := trip.Range(e.loc)
	from, to := *current.Start, *current.End
	if tripUpdateFrom != "" {
		if from, err = e.parseDay(tripUpdateFrom); err != nil {
			return err
		}
		if err := e.checkNotPast(from); err != nil {
			return err
		}
	}
	if tripUpdateTo != "" {
		if to, err = e.parseDay(tripUpdateTo); err != nil {
			return err
		}
		if err := e.checkNotPast(to); err != nil {
			return err
		}
	}
	dates := calendar.SelectDay(calendar.SelectDay(calendar.DateRange{}, from), to)

	if err := checkForm(validate.TripDetails(model.Draft{Destination: destination, Dates: dates})); err != nil {
		return err
	}

	err = client.UpdateTrip(ctx, trip.ID, model.TripUpdate{
		Destination: destination,
		StartsAt:    e.dayTime(*dates.Start),
		EndsAt:      e.dayTime(*dates.End),
	})
	if err != nil {
		return exitcode.Fail("updating trip", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Trip updated.")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s.\n", shortDestination(destination), e.formatter().Label(dates))
	return nil
}

func runTripConfirm(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	id, err := e.currentTripID()
	if err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	if err := e.client(ctx).ConfirmTrip(ctx, id); err != nil {
		return exitcode.Fail("confirming trip", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Trip confirmed. Invitations were sent to the guests.")
	return nil
}

func runTripForget(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	if err := storage.RemoveTripID(e.base); err != nil {
		return exitcode.Fail("forgetting trip", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Trip forgotten on this device.")
	return nil
}

func printTrip(w io.Writer, trip model.Trip, e *env) {
	confirmed := "no"
	if trip.IsConfirmed {
		confirmed = "yes"
	}
	fmt.Fprintf(w, "%s %s.\n", shortDestination(trip.Destination), e.formatter().Label(trip.Range(e.loc)))
	fmt.Fprintf(w, "Trip ID:     %s\n", trip.ID)
	fmt.Fprintf(w, "Destination: %s\n", trip.Destination)
	fmt.Fprintf(w, "Confirmed:   %s\n", confirmed)
}

// shortDestination cuts long destinations to fit the one-line summary.
func shortDestination(dest string) string {
	dest = strings.TrimSpace(dest)
	runes := []rune(dest)
	if len(runes) > maxDestinationWidth {
		return string(runes[:maxDestinationWidth]) + "..."
	}
	return dest
}
