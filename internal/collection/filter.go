// Package collection holds the pure list-presentation logic for the
// prospect table: filtering, sorting, selection, and derived stats.
// Everything here is synchronous and recomputed on read; callers own
// the source list.
package collection

import (
	"strings"

	"github.com/prospectly/prospectctl/internal/prospect"
)

// TriState is a three-valued filter toggle.
type TriState int

const (
	// TriAny disables the filter.
	TriAny TriState = iota
	// TriYes keeps only entities where the condition holds.
	TriYes
	// TriNo keeps only entities where the condition does not hold.
	TriNo
)

// matches reports whether the condition value passes the toggle.
func (t TriState) matches(condition bool) bool {
	switch t {
	case TriYes:
		return condition
	case TriNo:
		return !condition
	default:
		return true
	}
}

// FilterState is the predicate configuration for the prospect list.
// The zero value matches everything.
type FilterState struct {
	// Search is matched case-insensitively as a substring against the
	// name and every email and website sub-field.
	Search string

	// Status restricts to one status; nil means any.
	Status *prospect.Status

	// HasEmail keys on the presence of at least one email address.
	HasEmail TriState

	// HasContact keys on the presence of any contact method at all:
	// email, phone, or website.
	HasContact TriState
}

// Active reports whether any filter deviates from the zero value.
func (f FilterState) Active() bool {
	return f.Search != "" || f.Status != nil || f.HasEmail != TriAny || f.HasContact != TriAny
}

// Match evaluates the full predicate. The stages compose as a logical
// AND: search text, status, then the two contact toggles.
func (f FilterState) Match(p *prospect.Prospect) bool {
	if !f.matchSearch(p) {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if !f.HasEmail.matches(p.HasEmail()) {
		return false
	}
	return f.HasContact.matches(p.HasContact())
}

func (f FilterState) matchSearch(p *prospect.Prospect) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	if needle == "" {
		return true
	}

	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	for _, email := range p.EmailAddresses {
		if email.Address != nil && strings.Contains(strings.ToLower(*email.Address), needle) {
			return true
		}
	}
	for _, site := range p.Websites {
		if site.URL != nil && strings.Contains(strings.ToLower(*site.URL), needle) {
			return true
		}
	}
	return false
}

// Filter returns the entities matching the predicate, preserving
// source order. The source slice is never mutated.
func Filter(source []prospect.Prospect, f FilterState) []prospect.Prospect {
	out := make([]prospect.Prospect, 0, len(source))
	for i := range source {
		if f.Match(&source[i]) {
			out = append(out, source[i])
		}
	}
	return out
}

// Stats summarizes the effect of the active filter.
type Stats struct {
	Total      int
	Filtered   int
	IsFiltered bool
	Showing    int
}

// ComputeStats derives the list stats from the source and visible lists.
func ComputeStats(source, visible []prospect.Prospect, f FilterState) Stats {
	return Stats{
		Total:      len(source),
		Filtered:   len(visible),
		IsFiltered: f.Active(),
		Showing:    len(visible),
	}
}
