package collection

import "testing"

func TestToggleIsAnInvolution(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("p-1")
	if !sel.IsSelected("p-1") || sel.Count() != 1 {
		t.Fatal("first toggle should select")
	}

	sel.Toggle("p-1")
	if sel.IsSelected("p-1") || sel.Count() != 0 {
		t.Fatal("second toggle should restore the prior state")
	}
}

func TestSelectAllThenClear(t *testing.T) {
	visible := sampleProspects()
	sel := NewSelection()

	sel.SelectAll(visible)
	if sel.Count() != len(visible) {
		t.Fatalf("SelectAll selected %d of %d", sel.Count(), len(visible))
	}
	if !sel.AllSelected(visible) {
		t.Error("AllSelected should hold after SelectAll")
	}

	sel.Clear()
	if sel.Count() != 0 {
		t.Error("Clear should empty the selection")
	}
	if sel.AllSelected(visible) {
		t.Error("AllSelected must not hold for an empty selection")
	}
}

func TestSelectAllCapturesOnlyVisible(t *testing.T) {
	source := sampleProspects()
	visible := Filter(source, FilterState{HasEmail: TriYes})

	sel := NewSelection()
	sel.Toggle("p-4")
	sel.SelectAll(visible)

	if sel.Count() != 1 || !sel.IsSelected("p-1") {
		t.Errorf("SelectAll should replace with the visible ids, got %v", sel.IDs(source))
	}
	if sel.IsSelected("p-4") {
		t.Error("previously selected invisible id should be dropped")
	}
}

func TestSomeSelectedDrivesIndeterminateState(t *testing.T) {
	visible := sampleProspects()
	sel := NewSelection()

	if sel.SomeSelected(visible) {
		t.Error("empty selection is not partial")
	}

	sel.Toggle("p-2")
	if !sel.SomeSelected(visible) {
		t.Error("one of four selected is partial")
	}
	if sel.AllSelected(visible) {
		t.Error("one of four is not all")
	}

	sel.SelectAll(visible)
	if sel.SomeSelected(visible) {
		t.Error("fully selected is not partial")
	}
}

func TestAllSelectedOnEmptyVisibleList(t *testing.T) {
	sel := NewSelection()
	if sel.AllSelected(nil) {
		t.Error("empty visible list never counts as all-selected")
	}
}

func TestIDsFollowVisibleOrder(t *testing.T) {
	source := sampleProspects()
	sorted := Sort(source, SortState{Field: SortByCreated, Direction: Ascending})

	sel := NewSelection()
	sel.Toggle("p-1")
	sel.Toggle("p-4")

	got := sel.IDs(sorted)
	if len(got) != 2 || got[0] != "p-4" || got[1] != "p-1" {
		t.Errorf("IDs() = %v, want visible order [p-4 p-1]", got)
	}
}

func TestIDsKeepsStaleSelections(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("gone")
	sel.Toggle("p-1")

	got := sel.IDs(sampleProspects())
	if len(got) != 2 || got[0] != "p-1" || got[1] != "gone" {
		t.Errorf("IDs() = %v, want visible ids first then stale ones", got)
	}
}
