package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/validate"
)

var (
	participantName  string
	participantEmail string
)

var participantCmd = &cobra.Command{
	Use:   "participant",
	Short: "See who is coming and confirm attendance",
}

var participantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current trip's participants",
	Args:  cobra.NoArgs,
	RunE:  runParticipantList,
}

var participantInviteCmd = &cobra.Command{
	Use:   "invite <email>",
	Short: "Invite another guest to the current trip",
	Args:  cobra.ExactArgs(1),
	RunE:  runParticipantInvite,
}

var participantConfirmCmd = &cobra.Command{
	Use:   "confirm <participant-id>",
	Short: "Confirm attendance for a participant",
	Args:  cobra.ExactArgs(1),
	RunE:  runParticipantConfirm,
}

func init() {
	participantConfirmCmd.Flags().StringVar(&participantName, "name", "", "Your name")
	participantConfirmCmd.Flags().StringVar(&participantEmail, "email", "", "Your email")

	participantCmd.AddCommand(participantListCmd)
	participantCmd.AddCommand(participantInviteCmd)
	participantCmd.AddCommand(participantConfirmCmd)
}

func resetParticipantFlags() {
	participantName = ""
	participantEmail = ""
}

func runParticipantList(cmd *cobra.Command, args []string) error {
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
	participants, err := e.client(ctx).ListParticipants(ctx, id)
	if err != nil {
		return exitcode.Fail("listing participants", err)
	}

	out := cmd.OutOrStdout()
	for i, p := range participants {
		name := fmt.Sprintf("Guest %d", i+1)
		if p.Name != nil && *p.Name != "" {
			name = *p.Name
		}
		status := "pending"
		if p.IsConfirmed {
			status = "confirmed"
		}
		fmt.Fprintf(out, "%-20s %-30s %-10s %s\n", name, p.Email, status, p.ID)
	}
	return nil
}

func runParticipantInvite(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	email := strings.TrimSpace(args[0])
	if err := checkForm(validate.Email(email)); err != nil {
		return err
	}
	id, err := e.currentTripID()
	if err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	pid, err := e.client(ctx).InviteParticipant(ctx, id, email)
	if err != nil {
		return exitcode.Fail("inviting participant", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invited %s (participant %s).\n", email, pid)
	return nil
}

func runParticipantConfirm(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	if err := checkForm(validate.Confirmation(participantName, participantEmail)); err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	name, email := strings.TrimSpace(participantName), strings.TrimSpace(participantEmail)
	if err := e.client(ctx).ConfirmParticipant(ctx, args[0], name, email); err != nil {
		return exitcode.Fail("confirming attendance", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Attendance confirmed for %s.\n", name)
	return nil
}
