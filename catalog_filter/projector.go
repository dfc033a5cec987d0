package catalog_filter

import (
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
)

// Counts are the sidebar counters. Each dimension is counted with the other
// dimensions applied but not itself.
type Counts struct {
	Categories      map[uuid.UUID]int
	CategoriesTotal int
	Brands          map[uuid.UUID]int
	BrandsTotal     int
	FacetValues     map[uuid.UUID]int
}

// BaseProducts applies the category and brand selections to the catalog.
// Search is already applied by the repository fetch.
func BaseProducts(state FilterState, catalog *Catalog) []models.Product {
	if catalog == nil {
		return []models.Product{}
	}
	out := filterByCategories(catalog.Products, catalog.Categories, state.Categories)
	return filterByBrands(out, catalog.Brands, state.Brands)
}

func filterByCategories(products []models.Product, categories []models.Category, slugs StringSet) []models.Product {
	if len(slugs) == 0 {
		return products
	}
	ids := make(map[uuid.UUID]struct{})
	for _, c := range categories {
		if slugs.Has(c.Slug) {
			ids[c.ID] = struct{}{}
		}
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == nil {
			continue
		}
		if _, ok := ids[*p.CategoryID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func filterByBrands(products []models.Product, brands []models.Brand, slugs StringSet) []models.Product {
	if len(slugs) == 0 {
		return products
	}
	ids := make(map[uuid.UUID]struct{})
	for _, b := range brands {
		if slugs.Has(b.Slug) {
			ids[b.ID] = struct{}{}
		}
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.BrandID == nil {
			continue
		}
		if _, ok := ids[*p.BrandID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ProjectCounts computes category, brand and facet value counters.
func ProjectCounts(state FilterState, catalog *Catalog, base []models.Product, matcher *ProductMatcher) Counts {
	counts := Counts{
		Categories:  map[uuid.UUID]int{},
		Brands:      map[uuid.UUID]int{},
		FacetValues: map[uuid.UUID]int{},
	}
	if catalog == nil {
		return counts
	}

	forCategories := filterByBrands(catalog.Products, catalog.Brands, state.Brands)
	counts.CategoriesTotal = len(forCategories)
	for _, p := range forCategories {
		if p.CategoryID != nil {
			counts.Categories[*p.CategoryID]++
		}
	}

	forBrands := filterByCategories(catalog.Products, catalog.Categories, state.Categories)
	counts.BrandsTotal = len(forBrands)
	for _, p := range forBrands {
		if p.BrandID != nil {
			counts.Brands[*p.BrandID]++
		}
	}

	if matcher != nil {
		counts.FacetValues = matcher.ValueCounts(base)
	}
	return counts
}
