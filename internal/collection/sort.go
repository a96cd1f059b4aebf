package collection

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/prospectly/prospectctl/internal/prospect"
)

// SortField identifies a sortable column.
type SortField string

const (
	SortByName    SortField = "name"
	SortByEmail   SortField = "email"
	SortByStatus  SortField = "status"
	SortByCreated SortField = "created"
)

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortState is the total-order key for the prospect list.
type SortState struct {
	Field     SortField
	Direction Direction
}

// comparator orders two prospects; negative means a before b.
type comparator func(c *collate.Collator, a, b *prospect.Prospect) int

// comparators maps each sortable field to its typed comparison.
// Missing values compare as the empty string or zero instant.
var comparators = map[SortField]comparator{
	SortByName: func(c *collate.Collator, a, b *prospect.Prospect) int {
		return c.CompareString(a.Name, b.Name)
	},
	SortByEmail: func(c *collate.Collator, a, b *prospect.Prospect) int {
		return c.CompareString(a.PrimaryEmail(), b.PrimaryEmail())
	},
	SortByStatus: func(_ *collate.Collator, a, b *prospect.Prospect) int {
		switch {
		case a.Status < b.Status:
			return -1
		case a.Status > b.Status:
			return 1
		default:
			return 0
		}
	},
	SortByCreated: func(_ *collate.Collator, a, b *prospect.Prospect) int {
		switch {
		case a.CreatedUTC.Before(b.CreatedUTC):
			return -1
		case a.CreatedUTC.After(b.CreatedUTC):
			return 1
		default:
			return 0
		}
	},
}

// Sort returns a sorted copy of the list. The sort is stable, so equal
// elements keep their filtered order. An unknown field leaves the order
// unchanged.
func Sort(list []prospect.Prospect, s SortState) []prospect.Prospect {
	out := make([]prospect.Prospect, len(list))
	copy(out, list)

	cmp, ok := comparators[s.Field]
	if !ok {
		return out
	}

	// The collator buffers internally, so one per call.
	coll := collate.New(language.Und, collate.IgnoreCase)

	sort.SliceStable(out, func(i, j int) bool {
		r := cmp(coll, &out[i], &out[j])
		if s.Direction == Descending {
			return r > 0
		}
		return r < 0
	})

	return out
}

// Apply runs the filter then sort stages over the source list.
func Apply(source []prospect.Prospect, f FilterState, s SortState) []prospect.Prospect {
	return Sort(Filter(source, f), s)
}
