package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/batch"
	"github.com/prospectly/prospectctl/internal/progress"
	"github.com/prospectly/prospectctl/internal/prospect"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run operations across many prospects",
	Long: `Run one server-side batch operation across many prospects.

The server processes every id in one call and reports per-item
outcomes; a mixed result is reported as partial.

Subcommands:
  research  Generate company research for each prospect
  email     Draft an outreach email for each prospect
  flow      Research first, then draft, in one chained run

Examples:
  prospectctl batch research a1 b2 c3 --provider Claude
  prospectctl batch email a1 b2 --type UseCollectedData
  prospectctl batch flow a1 b2 c3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var batchResearchCmd = &cobra.Command{
	Use:   "research <id>...",
	Short: "Generate research for many prospects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		providerFlag, _ := cmd.Flags().GetString("provider")

		return runBatch(app, "Researching", func() (*prospect.BatchResult, error) {
			return app.batches.RunSoftData(cmd.Context(), args, app.provider(providerFlag))
		})
	},
}

var batchEmailCmd = &cobra.Command{
	Use:   "email <id>...",
	Short: "Draft emails for many prospects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		draftType, _ := cmd.Flags().GetString("type")
		providerFlag, _ := cmd.Flags().GetString("provider")
		autoResearch, _ := cmd.Flags().GetBool("auto-research")

		return runBatch(app, "Drafting", func() (*prospect.BatchResult, error) {
			return app.batches.RunEmail(cmd.Context(), args,
				prospect.DraftType(draftType), autoResearch, app.provider(providerFlag))
		})
	},
}

var batchFlowCmd = &cobra.Command{
	Use:   "flow <id>...",
	Short: "Research then draft in one run",
	Long: `Run the complete flow: research every prospect, then draft an
email for each. The email stage runs only if the research stage
succeeds and skips its own auto-research step.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		draftType, _ := cmd.Flags().GetString("type")
		providerFlag, _ := cmd.Flags().GetString("provider")

		return runBatch(app, "Running complete flow", func() (*prospect.BatchResult, error) {
			return app.batches.RunCompleteFlow(cmd.Context(), args,
				prospect.DraftType(draftType), app.provider(providerFlag))
		})
	},
}

// runBatch wraps a batch invocation with a spinner and outcome summary.
func runBatch(app *app, label string, run func() (*prospect.BatchResult, error)) error {
	ind := progress.NewIndicator(progress.Config{
		Writer:      os.Stdout,
		Label:       label,
		ShowSpinner: true,
	})
	ind.Start()

	_, err := run()
	ind.Stop()
	if err != nil {
		return err
	}

	ind.PrintSummary(app.batches.Progress())

	if note := batch.SharedNotifier().Current(); note != nil && note.Outcome == batch.OutcomePartial {
		fmt.Println("\nSome items failed; re-run with the failed ids to retry.")
	}
	return nil
}

func init() {
	batchResearchCmd.Flags().String("provider", "", "research provider (OpenAI, Claude, Hybrid)")

	batchEmailCmd.Flags().String("type", "", "generation strategy (WebSearch or UseCollectedData)")
	batchEmailCmd.Flags().String("provider", "", "research provider for auto-research")
	batchEmailCmd.Flags().Bool("auto-research", true, "research prospects that have no soft data yet")

	batchFlowCmd.Flags().String("type", "", "generation strategy (WebSearch or UseCollectedData)")
	batchFlowCmd.Flags().String("provider", "", "research provider (OpenAI, Claude, Hybrid)")

	batchCmd.AddCommand(batchResearchCmd)
	batchCmd.AddCommand(batchEmailCmd)
	batchCmd.AddCommand(batchFlowCmd)

	rootCmd.AddCommand(batchCmd)
}
