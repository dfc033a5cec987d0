package catalog_filter

import (
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"golang.org/x/text/language"
)

// Result is the renderable outcome of one filter state.
type Result struct {
	State          FilterState
	Base           []models.Product // categories + brands + search
	Products       []models.Product // Base narrowed by facets, sorted
	Counts         Counts
	Categories     []models.Category
	Brands         []models.Brand
	Facets         []Facet
	Graph          *OptionGraph
	FacetsDegraded bool
}

// ApplyFilter is a pure function of its inputs: nothing is fetched and the
// catalog is not modified.
func ApplyFilter(state FilterState, catalog *Catalog, facets *VariantFacets) Result {
	state = state.Clone()
	if facets == nil || facets.Graph == nil {
		facets = EmptyVariantFacets()
	}

	base := BaseProducts(state, catalog)
	matcher := NewProductMatcher(state.Selection, facets)
	filtered := matcher.Filter(base)

	locale := language.Und
	categories, brands := []models.Category{}, []models.Brand{}
	if catalog != nil {
		locale = catalog.Locale
		categories, brands = catalog.Categories, catalog.Brands
	}
	SortProducts(filtered, state.Sort, locale)

	return Result{
		State:      state,
		Base:       base,
		Products:   filtered,
		Counts:     ProjectCounts(state, catalog, base, matcher),
		Categories: categories,
		Brands:     brands,
		Facets:     facets.Graph.Facets,
		Graph:      facets.Graph,
	}
}
