package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/health"
	"github.com/prospectly/prospectctl/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive prospect browser",
	Long: `Open the full-screen prospect browser.

The browser starts on the login view when no session is stored, and on
the prospect list otherwise. The list supports incremental search,
status and contact filters, sorting, and multi-select batch actions.

Examples:
  prospectctl browse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		model := tui.New(
			app.sessions,
			app.prospects,
			app.batches,
			health.NewChecker(app.cfg.APIURL, app.logger),
		)

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
