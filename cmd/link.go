package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/validate"
)

var (
	linkTitle string
	linkURL   string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage the current trip's important links",
}

var linkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Attach a link to the current trip",
	Args:  cobra.NoArgs,
	RunE:  runLinkAdd,
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current trip's links",
	Args:  cobra.NoArgs,
	RunE:  runLinkList,
}

func init() {
	linkAddCmd.Flags().StringVar(&linkTitle, "title", "", "Link title")
	linkAddCmd.Flags().StringVar(&linkURL, "url", "", "Link URL")
	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkListCmd)
}

func resetLinkFlags() {
	linkTitle = ""
	linkURL = ""
}

func runLinkAdd(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	if err := checkForm(validate.Link(linkTitle, linkURL)); err != nil {
		return err
	}
	id, err := e.currentTripID()
	if err != nil {
		return err
	}
	ctx, cancel := e.apiContext(cmd)
	defer cancel()
	title, url := strings.TrimSpace(linkTitle), strings.TrimSpace(linkURL)
	if _, err := e.client(ctx).CreateLink(ctx, id, title, url); err != nil {
		return exitcode.Fail("creating link", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Link %q added.\n", title)
	return nil
}

func runLinkList(cmd *cobra.Command, args []string) error {
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
	links, err := e.client(ctx).ListLinks(ctx, id)
	if err != nil {
		return exitcode.Fail("listing links", err)
	}
	if len(links) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No links added.")
		return nil
	}
	for _, l := range links {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", l.Title, l.URL)
	}
	return nil
}
