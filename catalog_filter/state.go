package catalog_filter

import (
	"bytes"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SortKey is one of the shop orderings.
type SortKey string

const (
	SortLatest    SortKey = "latest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

// ParseSortKey maps unknown or empty input to SortLatest.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.TrimSpace(raw)); key {
	case SortLatest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return key
	default:
		return SortLatest
	}
}

// StringSet is an unordered set of slugs.
type StringSet map[string]struct{}

// NewStringSet trims items and drops empty ones.
func NewStringSet(items ...string) StringSet {
	set := make(StringSet, len(items))
	for _, item := range items {
		set.Add(item)
	}
	return set
}

func (s StringSet) Add(item string) {
	if item = strings.TrimSpace(item); item != "" {
		s[item] = struct{}{}
	}
}

func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

func (s StringSet) Clone() StringSet {
	out := make(StringSet, len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// SelectionState maps an option group id to its selected option value ids.
type SelectionState map[uuid.UUID]map[uuid.UUID]struct{}

// Toggle adds or removes one value. A group left without values is dropped,
// so it no longer counts as active.
func (s SelectionState) Toggle(groupID, valueID uuid.UUID, on bool) {
	values := s[groupID]
	if on {
		if values == nil {
			values = make(map[uuid.UUID]struct{})
			s[groupID] = values
		}
		values[valueID] = struct{}{}
		return
	}
	if values == nil {
		return
	}
	delete(values, valueID)
	if len(values) == 0 {
		delete(s, groupID)
	}
}

func (s SelectionState) Has(groupID, valueID uuid.UUID) bool {
	_, ok := s[groupID][valueID]
	return ok
}

// ActiveGroups returns the groups with at least one selected value, in id order.
func (s SelectionState) ActiveGroups() []uuid.UUID {
	groups := make([]uuid.UUID, 0, len(s))
	for groupID, values := range s {
		if len(values) > 0 {
			groups = append(groups, groupID)
		}
	}
	sortIDs(groups)
	return groups
}

// Values returns the selected values of one group, in id order.
func (s SelectionState) Values(groupID uuid.UUID) []uuid.UUID {
	values := make([]uuid.UUID, 0, len(s[groupID]))
	for valueID := range s[groupID] {
		values = append(values, valueID)
	}
	sortIDs(values)
	return values
}

func (s SelectionState) Clone() SelectionState {
	out := make(SelectionState, len(s))
	for groupID, values := range s {
		if len(values) == 0 {
			continue
		}
		copied := make(map[uuid.UUID]struct{}, len(values))
		for valueID := range values {
			copied[valueID] = struct{}{}
		}
		out[groupID] = copied
	}
	return out
}

// FilterState is the whole shop filter: sidebar selections, search, sort and
// facet selections. It lives in the URL and in the owning Session only.
type FilterState struct {
	Search     string
	Categories StringSet
	Brands     StringSet
	Sort       SortKey
	Selection  SelectionState
}

func NewFilterState() FilterState {
	return FilterState{
		Categories: StringSet{},
		Brands:     StringSet{},
		Sort:       SortLatest,
		Selection:  SelectionState{},
	}
}

// Clone returns a deep copy with every collection non-nil.
func (f FilterState) Clone() FilterState {
	out := FilterState{
		Search:     f.Search,
		Categories: f.Categories.Clone(),
		Brands:     f.Brands.Clone(),
		Sort:       f.Sort,
		Selection:  f.Selection.Clone(),
	}
	if out.Sort == "" {
		out.Sort = SortLatest
	}
	return out
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
}
