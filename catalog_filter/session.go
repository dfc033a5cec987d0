package catalog_filter

import (
	"context"
	"log"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Session owns one FilterState and the data derived from it (catalog, option
// graph). The page shell creates it on load and drops it on navigation.
//
// Fetching transitions are stamped with a generation; a fetch that completes
// after a newer transition began is discarded with ErrStaleResult.
type Session struct {
	repo     Repository
	tenantID uuid.UUID

	mu         sync.Mutex
	state      FilterState
	catalog    *Catalog
	facets     *VariantFacets
	facetsErr  error
	generation uint64
}

func NewSession(repo Repository, tenantID uuid.UUID, initial FilterState) *Session {
	return &Session{
		repo:     repo,
		tenantID: tenantID,
		state:    initial.Clone(),
		facets:   EmptyVariantFacets(),
	}
}

// Load fetches the catalog for the current search and builds the facets.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	gen := s.bump()
	search := s.state.Search
	s.mu.Unlock()
	return s.reload(ctx, gen, search, false)
}

// SetCategories replaces the category selection, clears facet selections and
// rebuilds the option graph.
func (s *Session) SetCategories(ctx context.Context, slugs []string) error {
	return s.rebaseWith(ctx, func(state *FilterState) {
		state.Categories = NewStringSet(slugs...)
	})
}

// SetBrands replaces the brand selection, clears facet selections and rebuilds
// the option graph.
func (s *Session) SetBrands(ctx context.Context, slugs []string) error {
	return s.rebaseWith(ctx, func(state *FilterState) {
		state.Brands = NewStringSet(slugs...)
	})
}

// ClearAll drops category, brand and facet selections.
func (s *Session) ClearAll(ctx context.Context) error {
	return s.rebaseWith(ctx, func(state *FilterState) {
		state.Categories = StringSet{}
		state.Brands = StringSet{}
	})
}

// SetSearch re-fetches the catalog for text and rebuilds everything.
func (s *Session) SetSearch(ctx context.Context, text string) error {
	s.mu.Lock()
	gen := s.bump()
	s.mu.Unlock()
	return s.reload(ctx, gen, strings.TrimSpace(text), true)
}

// ToggleFacetValue only touches the selection; the graph is kept.
func (s *Session) ToggleFacetValue(groupID, valueID uuid.UUID, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Selection == nil {
		s.state.Selection = SelectionState{}
	}
	s.state.Selection.Toggle(groupID, valueID, on)
}

// SetSort only changes the ordering of the already filtered set.
func (s *Session) SetSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sort = ParseSortKey(string(key))
}

// HasFacetValue reports whether the current graph offers valueID in groupID.
func (s *Session) HasFacetValue(groupID, valueID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facets.Graph.HasValue(groupID, valueID)
}

// State returns a copy of the current filter state.
func (s *Session) State() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Query is the canonical URL query for the current state.
func (s *Session) Query() url.Values {
	return EncodeURLState(s.State())
}

// FacetsErr is the error of the last failed facet build, if any.
func (s *Session) FacetsErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facetsErr
}

// Result recomputes the filtered, sorted and counted view.
func (s *Session) Result() Result {
	s.mu.Lock()
	state := s.state.Clone()
	catalog := s.catalog
	facets := s.facets
	degraded := s.facetsErr != nil
	s.mu.Unlock()

	result := ApplyFilter(state, catalog, facets)
	result.FacetsDegraded = degraded
	return result
}

func (s *Session) bump() uint64 {
	s.generation++
	return s.generation
}

func (s *Session) rebaseWith(ctx context.Context, mutate func(*FilterState)) error {
	s.mu.Lock()
	if s.catalog == nil {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	mutate(&s.state)
	s.state.Selection = SelectionState{}
	gen := s.bump()
	state := s.state.Clone()
	catalog := s.catalog
	s.mu.Unlock()
	return s.rebuildFacets(ctx, gen, state, catalog)
}

// reload commits search together with the fetched catalog. A failed fetch
// leaves the state and the last good catalog untouched.
func (s *Session) reload(ctx context.Context, gen uint64, search string, resetSelection bool) error {
	catalog, err := s.repo.FetchCatalog(ctx, s.tenantID, search)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return ErrStaleResult
	}
	if err != nil {
		s.mu.Unlock()
		return wrapRepositoryError("fetch catalog", err)
	}
	s.catalog = catalog
	s.state.Search = search
	if resetSelection {
		s.state.Selection = SelectionState{}
	}
	state := s.state.Clone()
	s.mu.Unlock()

	return s.rebuildFacets(ctx, gen, state, catalog)
}

// rebuildFacets degrades to zero facets when the variant pipeline fails; the
// base product list is kept.
func (s *Session) rebuildFacets(ctx context.Context, gen uint64, state FilterState, catalog *Catalog) error {
	base := BaseProducts(state, catalog)
	facets, err := FetchVariantFacets(ctx, s.repo, s.tenantID, ProductIDsOf(base))

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrStaleResult
	}
	if err != nil {
		log.Printf("⚠️ Facets unavailable for store %s, showing products without facets: %v", s.tenantID, err)
		s.facets = EmptyVariantFacets()
		s.facetsErr = err
		return nil
	}
	s.facets = facets
	s.facetsErr = nil
	return nil
}
