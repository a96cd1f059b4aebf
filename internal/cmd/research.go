package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/prospect"
)

var researchCmd = &cobra.Command{
	Use:   "research <id>",
	Short: "Generate company research for a prospect",
	Long: `Generate soft company data (news, events, personalization hooks)
for one prospect.

The provider selects the research backend: OpenAI, Claude, or Hybrid.
Omitting the flag uses the configured default.

Examples:
  prospectctl research 7f3a2c
  prospectctl research 7f3a2c --provider Hybrid`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		providerFlag, _ := cmd.Flags().GetString("provider")

		data, err := app.prospects.GenerateSoftData(cmd.Context(), args[0], app.provider(providerFlag))
		if err != nil {
			return err
		}

		printSoftData(data)
		return nil
	},
}

func printSoftData(data *prospect.SoftCompanyData) {
	parsed := data.Parse()
	if parsed == nil {
		fmt.Println("No research data returned.")
		return
	}

	if len(parsed.Hooks) > 0 {
		fmt.Println("Personalization hooks:")
		for _, hook := range parsed.Hooks {
			fmt.Printf("  • %s\n", hook.Text)
		}
	}
	if len(parsed.News) > 0 {
		fmt.Println("News:")
		for _, item := range parsed.News {
			fmt.Printf("  • %s (%s)\n", item.Headline, item.Source)
		}
	}
	if len(parsed.Events) > 0 {
		fmt.Println("Events:")
		for _, event := range parsed.Events {
			fmt.Printf("  • %s\n", event.Title)
		}
	}
	if len(parsed.Sources) > 0 {
		fmt.Println("Sources:")
		for _, source := range parsed.Sources {
			fmt.Printf("  • %s\n", source)
		}
	}
}

func init() {
	researchCmd.Flags().String("provider", "", "research provider (OpenAI, Claude, Hybrid)")

	rootCmd.AddCommand(researchCmd)
}
