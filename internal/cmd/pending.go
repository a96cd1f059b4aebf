package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Review imported prospects awaiting a decision",
	Long: `Review prospects imported from the CRM that are waiting to be
claimed or rejected.

Subcommands:
  list    Show pending prospects
  claim   Claim a pending prospect as your own
  reject  Discard a pending prospect

Examples:
  prospectctl pending list
  prospectctl pending claim 7f3a2c
  prospectctl pending reject 7f3a2c`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var pendingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show pending prospects",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		pending, err := app.prospects.ListPending(cmd.Context())
		if err != nil {
			return err
		}

		if len(pending) == 0 {
			fmt.Println("No pending prospects.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tIMPORTED")
		for i := range pending {
			p := &pending[i]
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.CreatedUTC.Format("2006-01-02"))
		}
		w.Flush()

		fmt.Printf("\n%d pending prospects\n", len(pending))
		return nil
	},
}

var pendingClaimCmd = &cobra.Command{
	Use:   "claim <id>",
	Short: "Claim a pending prospect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		p, err := app.prospects.Claim(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Claimed %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var pendingRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Discard a pending prospect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		if err := app.prospects.RejectPending(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("Rejected %s\n", args[0])
		return nil
	},
}

func init() {
	pendingCmd.AddCommand(pendingListCmd)
	pendingCmd.AddCommand(pendingClaimCmd)
	pendingCmd.AddCommand(pendingRejectCmd)

	rootCmd.AddCommand(pendingCmd)
}
