package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/calendar"
	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/model"
	"github.com/pehdsa/journey-native/internal/storage"
)

var planReset bool

var planCmd = &cobra.Command{
	Use:   "plan [destination]",
	Short: "Set the destination of the trip being planned, or show the draft",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planReset, "reset", false, "Discard the current draft first")
}

func resetPlanFlags() {
	planReset = false
}

func runPlan(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	if planReset {
		if err := storage.ClearDraft(e.base); err != nil {
			return exitcode.Fail("clearing draft", err)
		}
	}

	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}

	if len(args) == 1 {
		draft.Destination = strings.TrimSpace(args[0])
		if err := storage.SaveDraft(e.base, draft); err != nil {
			return exitcode.Fail("saving draft", err)
		}
	}

	printDraft(cmd.OutOrStdout(), draft, e.formatter())
	return nil
}

func printDraft(w io.Writer, draft model.Draft, f calendar.Formatter) {
	dest := draft.Destination
	if dest == "" {
		dest = "(not set)"
	}
	when := f.Label(draft.Dates)
	switch draft.Dates.State() {
	case calendar.Empty:
		when = "(not set)"
	case calendar.Half:
		when = fmt.Sprintf("from %s (end date missing)", draft.Dates.Start)
	}
	guests := "(none)"
	if n := len(draft.Guests); n > 0 {
		guests = fmt.Sprintf("%d guest(s)", n)
	}
	fmt.Fprintf(w, "Destination: %s\n", dest)
	fmt.Fprintf(w, "When:        %s\n", when)
	fmt.Fprintf(w, "Guests:      %s\n", guests)
}
