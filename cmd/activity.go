package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/calendar"
	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/model"
	"github.com/pehdsa/journey-native/internal/timecalc"
	"github.com/pehdsa/journey-native/internal/validate"
)

var (
	activityTitle string
	activityDate  string
	activityHour  int
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Plan the current trip's activities",
}

var activityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an activity to the current trip",
	Args:  cobra.NoArgs,
	RunE:  runActivityAdd,
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current trip's activities by day",
	Args:  cobra.NoArgs,
	RunE:  runActivityList,
}

func init() {
	activityAddCmd.Flags().StringVar(&activityTitle, "title", "", "What is planned")
	activityAddCmd.Flags().StringVar(&activityDate, "date", "", "Day of the activity (YYYY-MM-DD), within the trip")
	activityAddCmd.Flags().IntVar(&activityHour, "hour", 0, "Hour of the activity (0-23)")
	_ = activityAddCmd.MarkFlagRequired("title")
	_ = activityAddCmd.MarkFlagRequired("date")
	_ = activityAddCmd.MarkFlagRequired("hour")

	activityCmd.AddCommand(activityAddCmd)
	activityCmd.AddCommand(activityListCmd)
}

func resetActivityFlags() {
	activityTitle = ""
	activityDate = ""
	activityHour = 0
}

func runActivityAdd(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	if err := checkForm(validate.Activity(activityTitle, activityDate, activityHour)); err != nil {
		return err
	}
	day, err := e.parseDay(activityDate)
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
	tripDates := trip.Range(e.loc)
	if !calendar.BoundsOf(tripDates).Allows(day) {
		return exitcode.Usagef("%s is outside the trip (%s)", day, e.formatter().Label(tripDates))
	}

	occursAt := timecalc.AtHour(e.dayTime(day), activityHour)
	if _, err := client.CreateActivity(ctx, trip.ID, activityTitle, occursAt); err != nil {
		return exitcode.Fail("creating activity", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Activity %q added on %s at %s.\n", activityTitle, day, occursAt.Format("15:04"))
	return nil
}

func runActivityList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	client := e.client(ctx)

	id, err := e.currentTripID()
	if err != nil {
		return err
	}
	days, err := client.ListActivities(ctx, id)
	if err != nil {
		return exitcode.Fail("listing activities", err)
	}
	printActivities(cmd.OutOrStdout(), days, e.loc, now())
	return nil
}

// printActivities lists activities per day, checking off those already past.
func printActivities(w io.Writer, days []model.ActivityDay, loc *time.Location, at time.Time) {
	if len(days) == 0 {
		fmt.Fprintln(w, "No activities.")
		return
	}
	for _, d := range days {
		date := d.Date.In(loc)
		fmt.Fprintf(w, "Day %d, %s\n", date.Day(), date.Weekday())
		if len(d.Activities) == 0 {
			fmt.Fprintln(w, "  No activities registered for this date.")
			continue
		}
		for _, a := range d.Activities {
			mark := "[ ]"
			if a.OccursAt.Before(at) {
				mark = "[x]"
			}
			fmt.Fprintf(w, "  %s %s  %s\n", mark, a.OccursAt.In(loc).Format("15:04"), a.Title)
		}
	}
}
