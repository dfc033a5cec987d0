package catalog_filter

import "testing"

func TestToggleIsIdempotent(t *testing.T) {
	s := SelectionState{}
	s.Toggle(groupColor.ID, red.ID, true)
	s.Toggle(groupColor.ID, red.ID, true)

	if got := s.Values(groupColor.ID); len(got) != 1 {
		t.Fatalf("double toggle on: got %d values, want 1", len(got))
	}

	s.Toggle(groupColor.ID, red.ID, false)
	s.Toggle(groupColor.ID, red.ID, false)
	if len(s) != 0 {
		t.Fatalf("group should be dropped once empty, got %v", s)
	}
	if len(s.ActiveGroups()) != 0 {
		t.Fatal("empty group must not be active")
	}
}

func TestToggleOffUnknownGroup(t *testing.T) {
	s := SelectionState{}
	s.Toggle(groupSize.ID, small.ID, false)
	if len(s) != 0 {
		t.Fatalf("expected empty selection, got %v", s)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		raw  string
		want SortKey
	}{
		{"", SortLatest},
		{"latest", SortLatest},
		{"price_asc", SortPriceAsc},
		{" price_desc ", SortPriceDesc},
		{"name_asc", SortNameAsc},
		{"name_desc", SortNameDesc},
		{"cheapest", SortLatest},
	}
	for _, tt := range tests {
		if got := ParseSortKey(tt.raw); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFilterStateCloneIsDeep(t *testing.T) {
	state := NewFilterState()
	state.Categories.Add("audio")
	state.Selection.Toggle(groupColor.ID, red.ID, true)

	clone := state.Clone()
	clone.Categories.Add("laptops")
	clone.Selection.Toggle(groupColor.ID, blue.ID, true)

	if state.Categories.Has("laptops") {
		t.Fatal("clone shares the category set")
	}
	if state.Selection.Has(groupColor.ID, blue.ID) {
		t.Fatal("clone shares the selection")
	}
}

func TestNewStringSetDropsBlanks(t *testing.T) {
	set := NewStringSet(" audio ", "", "  ", "laptops", "audio")
	got := set.Sorted()
	if len(got) != 2 || got[0] != "audio" || got[1] != "laptops" {
		t.Fatalf("unexpected set %v", got)
	}
}
