package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/settings"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Manage email generation prompts",
	Long: `Manage the stored email generation prompts. Exactly one prompt
is active at a time and is used for every generated draft.

Subcommands:
  list      Show all prompts
  active    Show the active prompt
  create    Store a new prompt
  update    Rewrite an existing prompt
  activate  Make one prompt the active one
  delete    Remove a prompt

Examples:
  prospectctl prompts list
  prospectctl prompts create --name "Short intro" --prompt "Write a three-sentence intro..."
  prospectctl prompts activate ep-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var promptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		prompts, err := app.settings.ListEmailPrompts(cmd.Context())
		if err != nil {
			return err
		}

		if len(prompts) == 0 {
			fmt.Println("No prompts stored.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tACTIVE")
		for _, p := range prompts {
			active := ""
			if p.IsActive {
				active = "✓"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, active)
		}
		w.Flush()
		return nil
	},
}

var promptsActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the prompt drafts are generated with",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		prompt, err := app.settings.ActiveEmailPrompt(cmd.Context())
		if err != nil {
			return err
		}
		if prompt == nil {
			fmt.Println("No prompt is active.")
			return nil
		}

		fmt.Printf("%s (%s)\n\n%s\n", prompt.Name, prompt.ID, prompt.Prompt)
		return nil
	},
}

var promptsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Store a new prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		req, err := promptRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		prompt, err := app.settings.CreateEmailPrompt(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Created prompt %s (%s)\n", prompt.Name, prompt.ID)
		return nil
	},
}

var promptsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rewrite an existing prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		req, err := promptRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		prompt, err := app.settings.UpdateEmailPrompt(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated prompt %s\n", prompt.ID)
		return nil
	},
}

var promptsActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Make one prompt the active one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		prompt, err := app.settings.ActivateEmailPrompt(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Activated prompt %s\n", prompt.Name)
		return nil
	},
}

var promptsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		if err := app.settings.DeleteEmailPrompt(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted prompt %s\n", args[0])
		return nil
	},
}

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show the sender company profile",
	Long: `Show the company profile woven into generated outreach emails.

Examples:
  prospectctl company`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		info, err := app.settings.GetCompanyInfo(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(info.Name)
		printOptional := func(label string, value *string) {
			if value != nil && *value != "" {
				fmt.Printf("%s %s\n", label, *value)
			}
		}
		printOptional("Industry:", info.Industry)
		printOptional("Website: ", info.Website)
		printOptional("Sender:  ", info.SenderName)
		printOptional("Title:   ", info.SenderTitle)
		printOptional("Email:   ", info.ContactEmail)
		if info.Description != nil && *info.Description != "" {
			fmt.Printf("\n%s\n", *info.Description)
		}
		return nil
	},
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the sender company profile",
	Long: `Update the company profile woven into generated outreach emails.
Only the fields passed as flags change; everything else keeps its
current value.

Examples:
  prospectctl company update --name "Acme AB" --industry "Logistics"
  prospectctl company update --sender "Anna Svensson" --title "Head of Sales"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		info, err := app.settings.GetCompanyInfo(cmd.Context())
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			info.Name, _ = flags.GetString("name")
		}
		overlay := func(flag string, field **string) {
			if flags.Changed(flag) {
				value, _ := flags.GetString(flag)
				*field = &value
			}
		}
		overlay("description", &info.Description)
		overlay("website", &info.Website)
		overlay("industry", &info.Industry)
		overlay("value-offer", &info.ValueOffer)
		overlay("sender", &info.SenderName)
		overlay("title", &info.SenderTitle)
		overlay("email", &info.ContactEmail)

		updated, err := app.settings.UpdateCompanyInfo(cmd.Context(), *info)
		if err != nil {
			return err
		}

		fmt.Printf("Updated company profile for %s\n", updated.Name)
		return nil
	},
}

func promptRequestFromFlags(cmd *cobra.Command) (settings.EmailPromptRequest, error) {
	name, _ := cmd.Flags().GetString("name")
	prompt, _ := cmd.Flags().GetString("prompt")

	if name == "" || prompt == "" {
		return settings.EmailPromptRequest{}, errors.New(errors.ErrCodeConfigInvalid,
			"--name and --prompt are required")
	}
	return settings.EmailPromptRequest{Name: name, Prompt: prompt}, nil
}

func init() {
	promptsCreateCmd.Flags().String("name", "", "prompt name")
	promptsCreateCmd.Flags().String("prompt", "", "prompt text")
	promptsUpdateCmd.Flags().String("name", "", "prompt name")
	promptsUpdateCmd.Flags().String("prompt", "", "prompt text")

	companyUpdateCmd.Flags().String("name", "", "company name")
	companyUpdateCmd.Flags().String("description", "", "company description")
	companyUpdateCmd.Flags().String("website", "", "company website")
	companyUpdateCmd.Flags().String("industry", "", "company industry")
	companyUpdateCmd.Flags().String("value-offer", "", "value proposition used in drafts")
	companyUpdateCmd.Flags().String("sender", "", "sender name")
	companyUpdateCmd.Flags().String("title", "", "sender title")
	companyUpdateCmd.Flags().String("email", "", "contact email")
	companyCmd.AddCommand(companyUpdateCmd)

	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsActiveCmd)
	promptsCmd.AddCommand(promptsCreateCmd)
	promptsCmd.AddCommand(promptsUpdateCmd)
	promptsCmd.AddCommand(promptsActivateCmd)
	promptsCmd.AddCommand(promptsDeleteCmd)

	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(companyCmd)
}
