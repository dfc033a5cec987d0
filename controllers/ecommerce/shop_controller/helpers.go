package shop_controller

import (
	"encoding/json"
	"log"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/services"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/utils"
	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────
// Presenters: engine result -> API payloads
// ─────────────────────────────────────────────────────────────

func buildProductCards(products []models.Product, currency string) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, models.ProductCard{
			ID:         p.ID.String(),
			Name:       p.Name,
			Slug:       p.Slug,
			ShortDesc:  p.ShortDesc,
			Price:      utils.PricePtr(p.BasePrice),
			PriceLabel: utils.PriceLabel(p.BasePrice, currency),
			Image:      p.PrimaryImage(),
			CategoryID: idString(p.CategoryID),
			BrandID:    idString(p.BrandID),
			CreatedAt:  p.CreatedAt,
		})
	}
	return cards
}

func buildShopFacets(result catalog_filter.Result) models.ShopFacets {
	facets := models.ShopFacets{
		Categories:      make([]models.FilterOption, 0, len(result.Categories)),
		CategoriesTotal: result.Counts.CategoriesTotal,
		Brands:          make([]models.FilterOption, 0, len(result.Brands)),
		BrandsTotal:     result.Counts.BrandsTotal,
		Facets:          buildFacetGroups(result.Facets, result.Counts.FacetValues, result.State.Selection),
		FacetsDegraded:  result.FacetsDegraded,
	}

	for _, cat := range result.Categories {
		facets.Categories = append(facets.Categories, models.FilterOption{
			ID:       cat.ID.String(),
			Label:    cat.Name,
			Value:    cat.Slug,
			Count:    result.Counts.Categories[cat.ID],
			Selected: result.State.Categories.Has(cat.Slug),
		})
	}
	for _, brand := range result.Brands {
		facets.Brands = append(facets.Brands, models.FilterOption{
			ID:       brand.ID.String(),
			Label:    brand.Name,
			Value:    brand.Slug,
			Count:    result.Counts.Brands[brand.ID],
			Selected: result.State.Brands.Has(brand.Slug),
		})
	}
	return facets
}

// buildFacetGroups keeps the graph's group and value order. counts may be nil.
func buildFacetGroups(facets []catalog_filter.Facet, counts map[uuid.UUID]int, selection catalog_filter.SelectionState) []models.FacetGroup {
	groups := make([]models.FacetGroup, 0, len(facets))
	for _, f := range facets {
		group := models.FacetGroup{
			ID:        f.Group.ID.String(),
			Name:      f.Group.Name,
			Slug:      f.Group.Slug,
			InputType: f.Group.InputType,
			Values:    make([]models.FacetValue, 0, len(f.Values)),
		}
		if group.InputType == "" {
			group.InputType = models.InputTypeSelect
		}
		for _, v := range f.Values {
			group.Values = append(group.Values, models.FacetValue{
				ID:       v.ID.String(),
				Label:    v.Label,
				Value:    v.Value,
				ColorHex: v.ColorHex,
				Count:    counts[v.ID],
				Selected: selection.Has(f.Group.ID, v.ID),
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// buildActiveFilters lists removable pills: categories, brands, then facet
// values as "Group: Value". Slugs that match nothing are skipped.
func buildActiveFilters(result catalog_filter.Result) []models.ActiveFilter {
	pills := []models.ActiveFilter{}

	for _, cat := range result.Categories {
		if result.State.Categories.Has(cat.Slug) {
			pills = append(pills, models.ActiveFilter{Kind: "category", Label: cat.Name, Slug: cat.Slug})
		}
	}
	for _, brand := range result.Brands {
		if result.State.Brands.Has(brand.Slug) {
			pills = append(pills, models.ActiveFilter{Kind: "brand", Label: brand.Name, Slug: brand.Slug})
		}
	}
	for _, f := range result.Facets {
		for _, v := range f.Values {
			if !result.State.Selection.Has(f.Group.ID, v.ID) {
				continue
			}
			name := f.Group.Name
			if name == "" {
				name = "Filtro"
			}
			pills = append(pills, models.ActiveFilter{
				Kind:    "facet",
				Label:   name + ": " + v.Label,
				GroupID: f.Group.ID.String(),
				ValueID: v.ID.String(),
			})
		}
	}
	return pills
}

// buildStorefrontProduct assembles the detail payload. facets may be empty
// when the variant fetch failed.
func buildStorefrontProduct(detail *services.ProductDetail, facets *catalog_filter.VariantFacets, currency string) models.StorefrontProduct {
	p := detail.Product

	specs := map[string]any{}
	if len(p.Specs) > 0 {
		if err := json.Unmarshal(p.Specs, &specs); err != nil {
			log.Printf("⚠️ Invalid specs JSON on product %s: %v", p.ID, err)
			specs = map[string]any{}
		}
	}

	media := p.SortedMedia()
	if len(media) == 0 {
		media = []models.ProductMedia{{ProductID: p.ID, URL: models.PlaceholderImage, Alt: p.Name}}
	}

	out := models.StorefrontProduct{
		ID:          p.ID.String(),
		Name:        p.Name,
		Slug:        p.Slug,
		ShortDesc:   p.ShortDesc,
		Description: p.Description,
		Specs:       specs,
		Price:       utils.PricePtr(p.BasePrice),
		PriceLabel:  utils.PriceLabel(p.BasePrice, currency),
		Media:       media,
		Variants:    []models.StorefrontVariant{},
		OptionSets:  []models.FacetGroup{},
		CreatedAt:   p.CreatedAt,
	}
	if detail.Category != nil {
		out.Category = &models.FilterOption{ID: detail.Category.ID.String(), Label: detail.Category.Name, Value: detail.Category.Slug}
	}
	if detail.Brand != nil {
		out.Brand = &models.FilterOption{ID: detail.Brand.ID.String(), Label: detail.Brand.Name, Value: detail.Brand.Slug}
	}

	if facets == nil || facets.Graph == nil {
		return out
	}

	variantCounts := map[uuid.UUID]int{}
	for _, v := range facets.Variants {
		price := v.Price
		if !price.Valid {
			price = p.BasePrice
		}
		sv := models.StorefrontVariant{
			ID:         v.ID.String(),
			SKU:        v.SKU,
			Price:      utils.PricePtr(price),
			PriceLabel: utils.PriceLabel(price, currency),
			Stock:      v.Stock,
			Options:    map[string]string{},
			Labels:     []string{},
		}
		for _, f := range facets.Graph.Facets {
			valueID, ok := facets.Graph.Assigned(v.ID, f.Group.ID)
			if !ok {
				continue
			}
			variantCounts[valueID]++
			sv.Options[f.Group.ID.String()] = valueID.String()
			if ov, ok := facets.Graph.Value(valueID); ok {
				sv.Labels = append(sv.Labels, ov.Label)
			}
		}
		out.Variants = append(out.Variants, sv)
	}
	out.OptionSets = buildFacetGroups(facets.Graph.Facets, variantCounts, catalog_filter.SelectionState{})
	return out
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
