package catalog_filter

import (
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
)

// ProductMatcher evaluates one SelectionState against the variant graph.
// AND across groups, OR within a group; a product matches when at least one
// of its variants satisfies every active group.
type ProductMatcher struct {
	selection SelectionState
	active    []uuid.UUID
	graph     *OptionGraph
	byProduct map[uuid.UUID][]uuid.UUID // product id -> variant ids
}

func NewProductMatcher(selection SelectionState, facets *VariantFacets) *ProductMatcher {
	if facets == nil {
		facets = EmptyVariantFacets()
	}
	m := &ProductMatcher{
		selection: selection,
		active:    selection.ActiveGroups(),
		graph:     facets.Graph,
		byProduct: make(map[uuid.UUID][]uuid.UUID),
	}
	for _, v := range facets.Variants {
		m.byProduct[v.ProductID] = append(m.byProduct[v.ProductID], v.ID)
	}
	return m
}

// Matches reports whether productID satisfies the selection.
func (m *ProductMatcher) Matches(productID uuid.UUID) bool {
	if len(m.active) == 0 {
		return true
	}
	for _, variantID := range m.byProduct[productID] {
		if m.variantSatisfies(variantID, uuid.Nil) {
			return true
		}
	}
	return false
}

// Filter keeps the matching products, preserving order.
func (m *ProductMatcher) Filter(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if m.Matches(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// variantSatisfies checks every active group except skip. A variant with no
// assignment for an active group fails it.
func (m *ProductMatcher) variantSatisfies(variantID, skip uuid.UUID) bool {
	for _, groupID := range m.active {
		if groupID == skip {
			continue
		}
		valueID, ok := m.graph.Assigned(variantID, groupID)
		if !ok || !m.selection.Has(groupID, valueID) {
			return false
		}
	}
	return true
}

// ValueCounts counts, per facet value, the base products that would match if
// that value's group were narrowed to just this value. The other active
// groups stay applied.
func (m *ProductMatcher) ValueCounts(base []models.Product) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	if m.graph == nil {
		return counts
	}
	for _, f := range m.graph.Facets {
		groupID := f.Group.ID
		for _, p := range base {
			seen := make(map[uuid.UUID]struct{})
			for _, variantID := range m.byProduct[p.ID] {
				valueID, ok := m.graph.Assigned(variantID, groupID)
				if !ok {
					continue
				}
				if _, dup := seen[valueID]; dup {
					continue
				}
				if m.variantSatisfies(variantID, groupID) {
					seen[valueID] = struct{}{}
					counts[valueID]++
				}
			}
		}
	}
	return counts
}
