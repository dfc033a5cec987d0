package models

// FilterOption is one checkbox in the category or brand sidebar
type FilterOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"` // slug
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// FacetGroup is one option-group dimension shown in the "specs" sidebar
type FacetGroup struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	InputType string       `json:"input_type"`
	Values    []FacetValue `json:"values"`
}

type FacetValue struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	ColorHex *string `json:"color_hex,omitempty"`
	Count    int     `json:"count"`
	Selected bool    `json:"selected"`
}

// ActiveFilter is a removable pill above the product grid.
type ActiveFilter struct {
	Kind    string `json:"kind"` // category | brand | facet
	Label   string `json:"label"`
	Slug    string `json:"slug,omitempty"`
	GroupID string `json:"group_id,omitempty"`
	ValueID string `json:"value_id,omitempty"`
}

// ShopFacets is the sidebar-only payload.
type ShopFacets struct {
	Categories      []FilterOption `json:"categories"`
	CategoriesTotal int            `json:"categories_total"`
	Brands          []FilterOption `json:"brands"`
	BrandsTotal     int            `json:"brands_total"`
	Facets          []FacetGroup   `json:"facets"`
	FacetsDegraded  bool           `json:"facets_degraded,omitempty"`
}
