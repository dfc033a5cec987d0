// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS (shop listing + product detail)
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopResult is everything the shop page renders for one filter state
type ShopResult struct {
	Products       []ProductCard  `json:"products"`
	Total          int            `json:"total"`      // fully filtered
	BaseTotal      int            `json:"base_total"` // categories + brands + search only
	Sort           string         `json:"sort"`
	Search         string         `json:"search,omitempty"`
	ActiveFilters  []ActiveFilter `json:"active_filters"`
	CanonicalQuery string         `json:"canonical_query"`
	ShopFacets
}

// ProductCard is the thin product representation used by the grid
type ProductCard struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	ShortDesc  string           `json:"short_desc,omitempty"`
	Price      *decimal.Decimal `json:"price"`
	PriceLabel string           `json:"price_label"`
	Image      string           `json:"image"`
	CategoryID string           `json:"category_id,omitempty"`
	BrandID    string           `json:"brand_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// StorefrontProduct is the product detail page payload
type StorefrontProduct struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	ShortDesc   string              `json:"short_desc,omitempty"`
	Description string              `json:"description,omitempty"`
	Specs       map[string]any      `json:"specs"`
	Price       *decimal.Decimal    `json:"price"`
	PriceLabel  string              `json:"price_label"`
	Category    *FilterOption       `json:"category,omitempty"`
	Brand       *FilterOption       `json:"brand,omitempty"`
	Media       []ProductMedia      `json:"media"`
	Variants    []StorefrontVariant `json:"variants"`
	OptionSets  []FacetGroup        `json:"option_sets"`
	CreatedAt   time.Time           `json:"created_at"`
}

// StorefrontVariant carries the variant's option assignment keyed by group id
type StorefrontVariant struct {
	ID         string            `json:"id"`
	SKU        string            `json:"sku,omitempty"`
	Price      *decimal.Decimal  `json:"price"`
	PriceLabel string            `json:"price_label"`
	Stock      int               `json:"stock"`
	Options    map[string]string `json:"options"` // group id -> option value id
	Labels     []string          `json:"labels"`
}
