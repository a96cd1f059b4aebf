package cmd

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/collection"
	"github.com/prospectly/prospectctl/internal/prospect"
)

func resetListFlags() {
	listSearch = ""
	listStatus = ""
	listHasEmail = false
	listNoEmail = false
	listHasContact = false
	listNoContact = false
}

func TestBuildListFilter(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		check   func(t *testing.T, f collection.FilterState)
		wantErr bool
	}{
		{
			name:  "no flags",
			setup: func() {},
			check: func(t *testing.T, f collection.FilterState) {
				if f.Active() {
					t.Error("empty flags should produce an inactive filter")
				}
			},
		},
		{
			name:  "search and status",
			setup: func() { listSearch = "acme"; listStatus = "New" },
			check: func(t *testing.T, f collection.FilterState) {
				if f.Search != "acme" {
					t.Errorf("Search = %q", f.Search)
				}
				if f.Status == nil || *f.Status != prospect.StatusNew {
					t.Error("status filter not applied")
				}
			},
		},
		{
			name:  "has-email maps to yes",
			setup: func() { listHasEmail = true },
			check: func(t *testing.T, f collection.FilterState) {
				if f.HasEmail != collection.TriYes {
					t.Errorf("HasEmail = %v", f.HasEmail)
				}
			},
		},
		{
			name:  "no-contact maps to no",
			setup: func() { listNoContact = true },
			check: func(t *testing.T, f collection.FilterState) {
				if f.HasContact != collection.TriNo {
					t.Errorf("HasContact = %v", f.HasContact)
				}
			},
		},
		{
			name:    "unknown status",
			setup:   func() { listStatus = "Frozen" },
			wantErr: true,
		},
		{
			name:    "email flags are mutually exclusive",
			setup:   func() { listHasEmail = true; listNoEmail = true },
			wantErr: true,
		},
		{
			name:    "contact flags are mutually exclusive",
			setup:   func() { listHasContact = true; listNoContact = true },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetListFlags()
			defer resetListFlags()
			tt.setup()

			filter, err := buildListFilter()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildListFilter() error: %v", err)
			}
			tt.check(t, filter)
		})
	}
}

func newUpdateTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "update"}
	cmd.Flags().String("name", "", "")
	cmd.Flags().StringSlice("email", nil, "")
	cmd.Flags().StringSlice("website", nil, "")
	cmd.Flags().StringSlice("phone", nil, "")
	cmd.Flags().String("notes", "", "")
	cmd.Flags().String("status", "", "")
	return cmd
}

func TestBuildUpdateRequestOnlyIncludesChangedFlags(t *testing.T) {
	cmd := newUpdateTestCmd()
	if err := cmd.Flags().Set("name", "Acme Industries"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("status", "Emailed"); err != nil {
		t.Fatal(err)
	}

	req, err := buildUpdateRequest(cmd)
	if err != nil {
		t.Fatalf("buildUpdateRequest() error: %v", err)
	}

	if req.Name == nil || *req.Name != "Acme Industries" {
		t.Error("changed name should be carried")
	}
	if req.Status == nil || *req.Status != prospect.StatusEmailed {
		t.Error("changed status should be carried")
	}
	if req.Notes != nil || req.EmailAddresses != nil || req.Websites != nil || req.PhoneNumbers != nil {
		t.Error("untouched flags must stay absent so the server keeps current values")
	}
}

func TestBuildUpdateRequestRejectsUnknownStatus(t *testing.T) {
	cmd := newUpdateTestCmd()
	if err := cmd.Flags().Set("status", "Frozen"); err != nil {
		t.Fatal(err)
	}

	if _, err := buildUpdateRequest(cmd); err == nil {
		t.Error("unknown status should be rejected")
	}
}

func TestPromptRequestFromFlagsRequiresBothFields(t *testing.T) {
	cmd := &cobra.Command{Use: "create"}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("prompt", "", "")

	if _, err := promptRequestFromFlags(cmd); err == nil {
		t.Error("missing flags should be rejected")
	}

	if err := cmd.Flags().Set("name", "Short intro"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("prompt", "Write a short intro"); err != nil {
		t.Fatal(err)
	}

	req, err := promptRequestFromFlags(cmd)
	if err != nil {
		t.Fatalf("promptRequestFromFlags() error: %v", err)
	}
	if req.Name != "Short intro" || req.Prompt != "Write a short intro" {
		t.Errorf("req = %+v", req)
	}
}

func TestRootRegistersCommands(t *testing.T) {
	expected := []string{
		"auth", "list", "get", "create", "update", "delete",
		"email", "chat", "research", "batch", "pending",
		"prompts", "company", "status", "browse", "version", "completion",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}
