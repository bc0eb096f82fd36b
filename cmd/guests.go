package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/storage"
	"github.com/pehdsa/journey-native/internal/validate"
)

var guestsCmd = &cobra.Command{
	Use:   "guests",
	Short: "Manage the guests invited to the trip being planned",
}

var guestsAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Invite a guest by email",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuestsAdd,
}

var guestsRemoveCmd = &cobra.Command{
	Use:   "remove <email>",
	Short: "Remove an invited guest",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuestsRemove,
}

var guestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invited guests",
	Args:  cobra.NoArgs,
	RunE:  runGuestsList,
}

func init() {
	guestsCmd.AddCommand(guestsAddCmd)
	guestsCmd.AddCommand(guestsRemoveCmd)
	guestsCmd.AddCommand(guestsListCmd)
}

func runGuestsAdd(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}

	email := strings.TrimSpace(args[0])
	if err := checkForm(validate.Guest(email, draft.Guests)); err != nil {
		return err
	}
	draft.Guests = append(draft.Guests, email)
	if err := storage.SaveDraft(e.base, draft); err != nil {
		return exitcode.Fail("saving draft", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invited %s (%d guest(s)).\n", email, len(draft.Guests))
	return nil
}

func runGuestsRemove(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}

	target := strings.TrimSpace(args[0])
	kept := draft.Guests[:0]
	for _, g := range draft.Guests {
		if !strings.EqualFold(g, target) {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(draft.Guests) {
		return exitcode.Usagef("%s is not invited", target)
	}
	draft.Guests = kept
	if err := storage.SaveDraft(e.base, draft); err != nil {
		return exitcode.Fail("saving draft", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", target)
	return nil
}

func runGuestsList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	draft, err := storage.LoadDraft(e.base)
	if err != nil {
		return exitcode.Fail("loading draft", err)
	}
	if len(draft.Guests) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No guests invited.")
		return nil
	}
	for _, g := range draft.Guests {
		fmt.Fprintln(cmd.OutOrStdout(), g)
	}
	return nil
}
