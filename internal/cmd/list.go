package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/collection"
	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/prospect"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prospects",
	Long: `List prospects with optional filtering and sorting.

The search text matches case-insensitively against the name and every
email and website. Filters compose as a logical AND.

Examples:
  # All prospects
  prospectctl list

  # New prospects with an email address, newest first
  prospectctl list --status New --has-email --sort created --desc

  # Search across name, emails, and websites
  prospectctl list --search acme`,
	RunE: runList,
}

var (
	listSearch     string
	listStatus     string
	listHasEmail   bool
	listNoEmail    bool
	listHasContact bool
	listNoContact  bool
	listSortField  string
	listDesc       bool
	listFormat     string
)

func runList(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := app.requireAuth(); err != nil {
		return err
	}

	filter, err := buildListFilter()
	if err != nil {
		return err
	}

	source, err := app.prospects.List(cmd.Context())
	if err != nil {
		return err
	}

	sortState := collection.SortState{Field: collection.SortField(listSortField)}
	if listDesc {
		sortState.Direction = collection.Descending
	}

	visible := collection.Apply(source, filter, sortState)
	stats := collection.ComputeStats(source, visible, filter)

	if listFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}
	if listFormat != "text" {
		return errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("unknown format: %s", listFormat)).
			WithSuggestion("Use --format text or --format json")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tEMAIL\tCREATED")
	for i := range visible {
		p := &visible[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Status, p.PrimaryEmail(), p.CreatedUTC.Format("2006-01-02"))
	}
	w.Flush()

	if stats.IsFiltered {
		fmt.Printf("\nShowing %d of %d prospects\n", stats.Showing, stats.Total)
	} else {
		fmt.Printf("\n%d prospects\n", stats.Total)
	}
	return nil
}

func buildListFilter() (collection.FilterState, error) {
	filter := collection.FilterState{Search: listSearch}

	if listStatus != "" {
		status, ok := prospect.ParseStatus(listStatus)
		if !ok {
			return filter, errors.New(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("unknown status: %s", listStatus)).
				WithSuggestion("Use one of: New, Researched, Drafted, Emailed, Responded, Archived")
		}
		filter.Status = &status
	}

	switch {
	case listHasEmail && listNoEmail:
		return filter, errors.New(errors.ErrCodeConfigInvalid,
			"--has-email and --no-email are mutually exclusive")
	case listHasEmail:
		filter.HasEmail = collection.TriYes
	case listNoEmail:
		filter.HasEmail = collection.TriNo
	}

	switch {
	case listHasContact && listNoContact:
		return filter, errors.New(errors.ErrCodeConfigInvalid,
			"--has-contact and --no-contact are mutually exclusive")
	case listHasContact:
		filter.HasContact = collection.TriYes
	case listNoContact:
		filter.HasContact = collection.TriNo
	}

	return filter, nil
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "search text")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	listCmd.Flags().BoolVar(&listHasEmail, "has-email", false, "only prospects with an email address")
	listCmd.Flags().BoolVar(&listNoEmail, "no-email", false, "only prospects without an email address")
	listCmd.Flags().BoolVar(&listHasContact, "has-contact", false, "only prospects with any contact method")
	listCmd.Flags().BoolVar(&listNoContact, "no-contact", false, "only prospects without any contact method")
	listCmd.Flags().StringVar(&listSortField, "sort", "name", "sort field (name, email, status, created)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format (text, json)")

	rootCmd.AddCommand(listCmd)
}
