package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "prospectctl",
	Short: "Terminal client for the Prospectly CRM",
	Long: `prospectctl is a terminal client for the Prospectly prospect backend.
It manages sales leads through their outreach lifecycle: listing and
filtering prospects, generating company research and email drafts,
running batched operations, and reviewing pending leads.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetDefaultLogger(log.Verbose())
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.prospectctl/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}
