package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/prospect"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Draft and send outreach emails",
	Long: `Draft and send outreach emails for a prospect.

Subcommands:
  draft  Generate an email draft
  send   Send the stored draft

Examples:
  prospectctl email draft 7f3a2c --type UseCollectedData
  prospectctl email send 7f3a2c`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var emailDraftCmd = &cobra.Command{
	Use:   "draft <id>",
	Short: "Generate an email draft",
	Long: `Generate an email draft for one prospect and store it on the
prospect record.

The type selects the generation strategy: WebSearch drafts from a live
web search, UseCollectedData drafts from previously generated research.
Omitting the flag lets the backend pick.

Examples:
  prospectctl email draft 7f3a2c
  prospectctl email draft 7f3a2c --type WebSearch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		draftType, _ := cmd.Flags().GetString("type")

		draft, err := app.prospects.GenerateEmailDraft(cmd.Context(), args[0], prospect.DraftType(draftType))
		if err != nil {
			return err
		}

		fmt.Printf("Subject: %s\n\n%s\n", draft.MailTitle, draft.MailBodyPlain)
		return nil
	},
}

var emailSendCmd = &cobra.Command{
	Use:   "send <id>",
	Short: "Send the stored draft",
	Long: `Send the email draft stored on a prospect record.

Examples:
  prospectctl email send 7f3a2c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		result, err := app.prospects.SendEmail(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if result.Message != "" {
			fmt.Println(result.Message)
		} else if result.Success {
			fmt.Println("Email sent.")
		} else {
			fmt.Println("Email was not sent.")
		}
		return nil
	},
}

func init() {
	emailDraftCmd.Flags().String("type", "", "generation strategy (WebSearch or UseCollectedData)")

	emailCmd.AddCommand(emailDraftCmd)
	emailCmd.AddCommand(emailSendCmd)

	rootCmd.AddCommand(emailCmd)
}
