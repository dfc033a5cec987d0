package catalog_filter

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Query parameter names of the shareable shop URL.
const (
	ParamSearch      = "q"
	ParamSort        = "sort"
	ParamCategories  = "cats"
	ParamBrands      = "brands"
	ParamLegacyBrand = "brand"

	// ParamOption carries facet selections on API calls only; it is never part
	// of the canonical query.
	ParamOption = "opt"
)

// ParseURLState reads q, sort, cats and brands. brands wins over the singular
// brand param used by links from the home page.
func ParseURLState(values url.Values) FilterState {
	state := NewFilterState()
	state.Search = strings.TrimSpace(values.Get(ParamSearch))
	state.Sort = ParseSortKey(values.Get(ParamSort))
	state.Categories = NewStringSet(splitList(values.Get(ParamCategories))...)

	if brands := strings.TrimSpace(values.Get(ParamBrands)); brands != "" {
		state.Brands = NewStringSet(splitList(brands)...)
	} else {
		state.Brands = NewStringSet(values.Get(ParamLegacyBrand))
	}
	return state
}

// EncodeURLState writes the durable part of state. Empty params are omitted,
// and brand is also written when exactly one brand is selected.
func EncodeURLState(state FilterState) url.Values {
	values := url.Values{}
	if search := strings.TrimSpace(state.Search); search != "" {
		values.Set(ParamSearch, search)
	}
	if sort := ParseSortKey(string(state.Sort)); sort != SortLatest {
		values.Set(ParamSort, string(sort))
	}
	if len(state.Categories) > 0 {
		values.Set(ParamCategories, strings.Join(state.Categories.Sorted(), ","))
	}
	if len(state.Brands) > 0 {
		brands := state.Brands.Sorted()
		values.Set(ParamBrands, strings.Join(brands, ","))
		if len(brands) == 1 {
			values.Set(ParamLegacyBrand, brands[0])
		}
	}
	return values
}

// ParseSelection reads repeated "<groupID>:<valueID>" pairs. Malformed
// entries are skipped.
func ParseSelection(raw []string) SelectionState {
	selection := SelectionState{}
	for _, item := range raw {
		for _, pair := range splitList(item) {
			groupPart, valuePart, ok := strings.Cut(pair, ":")
			if !ok {
				continue
			}
			groupID, err := uuid.Parse(strings.TrimSpace(groupPart))
			if err != nil {
				continue
			}
			valueID, err := uuid.Parse(strings.TrimSpace(valuePart))
			if err != nil {
				continue
			}
			selection.Toggle(groupID, valueID, true)
		}
	}
	return selection
}

// EncodeSelection is the inverse of ParseSelection, in id order.
func EncodeSelection(selection SelectionState) []string {
	out := []string{}
	for _, groupID := range selection.ActiveGroups() {
		for _, valueID := range selection.Values(groupID) {
			out = append(out, groupID.String()+":"+valueID.String())
		}
	}
	return out
}

func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
