package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/prospect"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one prospect",
	Long: `Show one prospect with its contact methods, status, and any
generated research and email draft.

Examples:
  prospectctl get 7f3a2c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		p, err := app.prospects.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printProspect(p)
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a prospect",
	Long: `Create a prospect. The server assigns the id.

Examples:
  prospectctl create --name "Acme AB" --email sales@acme.se --website https://acme.se`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return errors.New(errors.ErrCodeConfigInvalid, "--name is required")
		}

		req := prospect.CreateRequest{Name: name}
		req.EmailAddresses, _ = cmd.Flags().GetStringSlice("email")
		req.Websites, _ = cmd.Flags().GetStringSlice("website")
		req.PhoneNumbers, _ = cmd.Flags().GetStringSlice("phone")
		if notes, _ := cmd.Flags().GetString("notes"); notes != "" {
			req.Notes = &notes
		}

		p, err := app.prospects.Create(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Created prospect %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a prospect",
	Long: `Update a prospect. Only the supplied flags change; everything
else keeps its current value.

Examples:
  prospectctl update 7f3a2c --status Emailed
  prospectctl update 7f3a2c --name "Acme Industries AB" --notes "Met at fair"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		req, err := buildUpdateRequest(cmd)
		if err != nil {
			return err
		}

		p, err := app.prospects.Update(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		fmt.Printf("Updated prospect %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prospect",
	Long: `Delete a prospect. Deletion is terminal; nothing is retained.

Examples:
  prospectctl delete 7f3a2c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := app.requireAuth(); err != nil {
			return err
		}

		if err := app.prospects.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted prospect %s\n", args[0])
		return nil
	},
}

func buildUpdateRequest(cmd *cobra.Command) (prospect.UpdateRequest, error) {
	var req prospect.UpdateRequest

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("notes") {
		notes, _ := cmd.Flags().GetString("notes")
		req.Notes = &notes
	}
	if cmd.Flags().Changed("email") {
		req.EmailAddresses, _ = cmd.Flags().GetStringSlice("email")
	}
	if cmd.Flags().Changed("website") {
		req.Websites, _ = cmd.Flags().GetStringSlice("website")
	}
	if cmd.Flags().Changed("phone") {
		req.PhoneNumbers, _ = cmd.Flags().GetStringSlice("phone")
	}
	if cmd.Flags().Changed("status") {
		raw, _ := cmd.Flags().GetString("status")
		status, ok := prospect.ParseStatus(raw)
		if !ok {
			return req, errors.New(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("unknown status: %s", raw)).
				WithSuggestion("Use one of: New, Researched, Drafted, Emailed, Responded, Archived")
		}
		req.Status = &status
	}

	return req, nil
}

func printProspect(p *prospect.Prospect) {
	fmt.Printf("%s  (%s)\n", p.Name, p.ID)
	fmt.Printf("Status:  %s\n", p.Status)
	fmt.Printf("Created: %s\n", p.CreatedUTC.Format("2006-01-02 15:04"))

	if email := p.PrimaryEmail(); email != "" {
		fmt.Printf("Email:   %s\n", email)
	}
	if site := p.PrimaryWebsite(); site != "" {
		fmt.Printf("Website: %s\n", site)
	}
	for _, phone := range p.PhoneNumbers {
		if phone.Number != nil && *phone.Number != "" {
			fmt.Printf("Phone:   %s\n", *phone.Number)
		}
	}
	if p.Notes != nil && *p.Notes != "" {
		fmt.Printf("\nNotes:\n%s\n", *p.Notes)
	}

	if data := p.SoftCompanyData; data != nil {
		parsed := data.Parse()
		fmt.Printf("\nResearch (%d days old", data.AgeDays())
		if data.IsStale(prospect.DefaultStaleAfter) {
			fmt.Print(", stale")
		}
		fmt.Println("):")
		for _, hook := range parsed.Hooks {
			fmt.Printf("  • %s\n", hook.Text)
		}
		for _, item := range parsed.News {
			fmt.Printf("  • %s\n", item.Headline)
		}
	}

	if p.MailTitle != nil && *p.MailTitle != "" {
		fmt.Printf("\nDraft: %s\n", *p.MailTitle)
		if p.MailBodyPlain != nil {
			fmt.Println(*p.MailBodyPlain)
		}
	}
}

func init() {
	createCmd.Flags().String("name", "", "prospect name (required)")
	createCmd.Flags().StringSlice("email", nil, "email address (repeatable)")
	createCmd.Flags().StringSlice("website", nil, "website URL (repeatable)")
	createCmd.Flags().StringSlice("phone", nil, "phone number (repeatable)")
	createCmd.Flags().String("notes", "", "free-form notes")

	updateCmd.Flags().String("name", "", "prospect name")
	updateCmd.Flags().StringSlice("email", nil, "email address (repeatable, replaces the list)")
	updateCmd.Flags().StringSlice("website", nil, "website URL (repeatable, replaces the list)")
	updateCmd.Flags().StringSlice("phone", nil, "phone number (repeatable, replaces the list)")
	updateCmd.Flags().String("notes", "", "free-form notes")
	updateCmd.Flags().String("status", "", "lifecycle status")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}
