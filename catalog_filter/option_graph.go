package catalog_filter

import (
	"sort"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
)

// Facet is one option group with the values used by in-scope variants.
type Facet struct {
	Group  models.OptionGroup
	Values []models.OptionValue
}

// OptionGraph is the assembled product -> variant -> option value graph.
type OptionGraph struct {
	Facets            []Facet
	VariantSelections map[uuid.UUID]map[uuid.UUID]uuid.UUID // variant -> group -> value

	groups map[uuid.UUID]int // group id -> index in Facets
	values map[uuid.UUID]models.OptionValue
}

func NewOptionGraph() *OptionGraph {
	return &OptionGraph{
		Facets:            []Facet{},
		VariantSelections: map[uuid.UUID]map[uuid.UUID]uuid.UUID{},
		groups:            map[uuid.UUID]int{},
		values:            map[uuid.UUID]models.OptionValue{},
	}
}

// BuildOptionGraph joins pivot rows with option value rows (group embedded).
// Groups keep the order in which their first value appears; values are sorted
// by their sort column, ties keeping input order.
func BuildOptionGraph(pivots []models.VariantOptionValue, values []models.OptionValue) *OptionGraph {
	g := NewOptionGraph()

	for _, ov := range values {
		groupID := ov.GroupID()
		if groupID == uuid.Nil {
			continue
		}
		if _, dup := g.values[ov.ID]; dup {
			continue
		}
		idx, ok := g.groups[groupID]
		if !ok {
			group := models.OptionGroup{ID: groupID}
			if ov.OptionGroup != nil {
				group = *ov.OptionGroup
				group.ID = groupID
			}
			g.Facets = append(g.Facets, Facet{Group: group})
			idx = len(g.Facets) - 1
			g.groups[groupID] = idx
		}
		g.Facets[idx].Values = append(g.Facets[idx].Values, ov)
		g.values[ov.ID] = ov
	}

	for _, row := range pivots {
		ov, ok := g.values[row.OptionValueID]
		if !ok {
			continue
		}
		assigned := g.VariantSelections[row.VariantID]
		if assigned == nil {
			assigned = make(map[uuid.UUID]uuid.UUID)
			g.VariantSelections[row.VariantID] = assigned
		}
		assigned[ov.GroupID()] = ov.ID
	}

	kept := g.Facets[:0]
	for _, f := range g.Facets {
		if len(f.Values) == 0 {
			continue
		}
		sort.SliceStable(f.Values, func(i, j int) bool { return f.Values[i].Sort < f.Values[j].Sort })
		kept = append(kept, f)
	}
	g.Facets = kept
	g.groups = make(map[uuid.UUID]int, len(kept))
	for i, f := range g.Facets {
		g.groups[f.Group.ID] = i
	}
	return g
}

// Group looks up a facet group by id.
func (g *OptionGraph) Group(groupID uuid.UUID) (models.OptionGroup, bool) {
	if g == nil {
		return models.OptionGroup{}, false
	}
	idx, ok := g.groups[groupID]
	if !ok {
		return models.OptionGroup{}, false
	}
	return g.Facets[idx].Group, true
}

// Value looks up an option value by id.
func (g *OptionGraph) Value(valueID uuid.UUID) (models.OptionValue, bool) {
	if g == nil {
		return models.OptionValue{}, false
	}
	ov, ok := g.values[valueID]
	return ov, ok
}

// HasValue reports whether valueID is a facet value of groupID.
func (g *OptionGraph) HasValue(groupID, valueID uuid.UUID) bool {
	ov, ok := g.Value(valueID)
	return ok && ov.GroupID() == groupID
}

// Assigned returns the value a variant carries for a group.
func (g *OptionGraph) Assigned(variantID, groupID uuid.UUID) (uuid.UUID, bool) {
	if g == nil {
		return uuid.Nil, false
	}
	valueID, ok := g.VariantSelections[variantID][groupID]
	return valueID, ok
}
