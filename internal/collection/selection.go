package collection

import "github.com/prospectly/prospectctl/internal/prospect"

// Selection is a set of prospect ids scoped to the visible list.
// Ids of entities that later fall out of the source list are kept
// until the next SelectAll or Clear; batch callers tolerate them.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips one id's membership. Toggling twice restores the
// prior state.
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// IsSelected reports membership.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// SelectAll replaces the selection with exactly the visible ids.
func (s *Selection) SelectAll(visible []prospect.Prospect) {
	s.ids = make(map[string]struct{}, len(visible))
	for i := range visible {
		s.ids[visible[i].ID] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Count returns the number of selected ids.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in visible-list order, followed by any
// selected ids no longer visible, in unspecified order.
func (s *Selection) IDs(visible []prospect.Prospect) []string {
	out := make([]string, 0, len(s.ids))
	seen := make(map[string]struct{}, len(s.ids))
	for i := range visible {
		id := visible[i].ID
		if _, ok := s.ids[id]; ok {
			out = append(out, id)
			seen[id] = struct{}{}
		}
	}
	for id := range s.ids {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// AllSelected reports whether every visible entity is selected.
// An empty visible list never counts as all-selected.
func (s *Selection) AllSelected(visible []prospect.Prospect) bool {
	if len(visible) == 0 {
		return false
	}
	for i := range visible {
		if !s.IsSelected(visible[i].ID) {
			return false
		}
	}
	return true
}

// SomeSelected reports whether at least one visible entity is selected
// but not all of them. Drives the indeterminate checkbox state.
func (s *Selection) SomeSelected(visible []prospect.Prospect) bool {
	any := false
	all := len(visible) > 0
	for i := range visible {
		if s.IsSelected(visible[i].ID) {
			any = true
		} else {
			all = false
		}
	}
	return any && !all
}
