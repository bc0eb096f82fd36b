package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/calendar"
	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/storage"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Pick the trip's start and end dates",
}

var datesPickCmd = &cobra.Command{
	Use:   "pick <YYYY-MM-DD>",
	Short: "Tap a calendar day: the first pick sets the start, the second the end",
	Long: `Each pick behaves like tapping a day on a calendar. The first pick sets
the start date, the second completes the range (the earlier day always
becomes the start), and a pick after a complete range starts over.`,
	Args: cobra.ExactArgs(1),
	RunE: runDatesPick,
}

var datesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the selected dates",
	Args:  cobra.NoArgs,
	RunE:  runDatesShow,
}

var datesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the selected dates",
	Args:  cobra.NoArgs,
	RunE:  runDatesClear,
}

func init() {
	datesCmd.AddCommand(datesPickCmd)
	datesCmd.AddCommand(datesShowCmd)
	datesCmd.AddCommand(datesClearCmd)
}

func runDatesPick(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	day, err := e.parseDay(args[0])
	if err != nil {
		return err
	}

	if err := e.checkNotPast(day); err != nil {
		return err
	}

	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}
	draft.Dates = calendar.SelectDay(draft.Dates, day)
	if err := storage.SaveDraft(e.base, draft); err != nil {
		return exitcode.Fail("saving draft", err)
	}

	printSelection(cmd.OutOrStdout(), draft.Dates, e.formatter())
	return nil
}

func runDatesShow(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}
	printSelection(cmd.OutOrStdout(), draft.Dates, e.formatter())
	return nil
}

func runDatesClear(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}
	draft.Dates = calendar.DateRange{}
	if err := storage.SaveDraft(e.base, draft); err != nil {
		return exitcode.Fail("saving draft", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Dates cleared.")
	return nil
}

// printSelection shows the range label followed by the highlighted days.
func printSelection(w io.Writer, r calendar.DateRange, f calendar.Formatter) {
	switch r.State() {
	case calendar.Empty:
		fmt.Fprintln(w, "No dates selected.")
		return
	case calendar.Half:
		fmt.Fprintf(w, "Start: %s. Pick the end date.\n", r.Start)
	default:
		fmt.Fprintf(w, "Selected: %s (%d days)\n", f.Label(r), r.Days())
	}

	marked := calendar.BuildMarkedDays(r)
	for _, date := range marked.Dates() {
		fmt.Fprintf(w, "  %s  %s\n", date, describeMarking(marked[date]))
	}
}

func describeMarking(m calendar.Marking) string {
	switch {
	case m.SingleDay:
		return "selected"
	case m.Start:
		return "start"
	case m.End:
		return "end"
	case m.InRange:
		return "in range"
	default:
		return ""
	}
}
