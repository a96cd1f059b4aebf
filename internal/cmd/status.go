package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/health"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend and session status",
	Long: `Display the backend's liveness and the current session state.

Examples:
  prospectctl status
  prospectctl status --watch`,
	RunE: runStatus,
}

var statusWatch bool

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}

	checker := health.NewChecker(app.cfg.APIURL, app.logger)

	printResult := func(result *health.Result) {
		symbol := "✗"
		if result.Healthy() {
			symbol = "✓"
		}
		fmt.Printf("%s Backend %s: %s (%s)\n",
			symbol, app.cfg.APIURL, result.Status, result.Message)
	}

	if statusWatch {
		// Fixed-interval poll until interrupted; no backoff.
		checker.Watch(cmd.Context(), health.WatchInterval, printResult)
		return nil
	}

	printResult(checker.Check(cmd.Context()))

	if app.sessions.IsAuthenticated() {
		if user := app.sessions.CurrentUser(); user != nil {
			fmt.Printf("✓ Logged in as %s\n", user.Email)
		} else {
			fmt.Println("✓ Logged in")
		}
	} else {
		fmt.Println("✗ Not logged in")
	}
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "poll the backend on a fixed interval")

	rootCmd.AddCommand(statusCmd)
}
