package cmd

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/logging"
)

var verbose bool

// now is replaced in tests.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "journey",
	Short: "journey – plan trips with friends from the terminal",
	Long: `journey is a command-line client for the trip planner API.
Pick a destination and dates, invite guests by email, then manage the
trip's activities, links and participants. Local state lives in ~/.journey/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), verbose)
	},
}

// Execute is the entry point called from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		var coded *exitcode.Error
		if !errors.As(err, &coded) && isCobraUsageError(err) {
			return exitcode.AsUsage(err)
		}
	}
	return err
}

// isCobraUsageError reports whether err came from cobra's argument or flag
// validation.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "arg(s)") ||
		strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "invalid argument") ||
		strings.HasPrefix(msg, "required flag")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API requests to stderr")
	rootCmd.SetErr(os.Stderr)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(guestsCmd)
	rootCmd.AddCommand(tripCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(participantCmd)
}
