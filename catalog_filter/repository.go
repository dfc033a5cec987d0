package catalog_filter

import (
	"context"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Typed id sets, one per stage of the variant facet pipeline.
type (
	ProductIDs     []uuid.UUID
	VariantIDs     []uuid.UUID
	OptionValueIDs []uuid.UUID
)

// Catalog is the tenant's searchable product set plus its sidebars.
type Catalog struct {
	Products   []models.Product
	Categories []models.Category
	Brands     []models.Brand
	Locale     language.Tag
}

// ProductRef is the category/brand reference pair of one active product.
type ProductRef struct {
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
}

// Repository is the tenant-scoped data store the engine reads from.
type Repository interface {
	// FetchCatalog returns active products (matching search on name or slug
	// when non-empty) and the active categories and brands in use.
	FetchCatalog(ctx context.Context, tenantID uuid.UUID, search string) (*Catalog, error)
	FetchVariants(ctx context.Context, tenantID uuid.UUID, productIDs ProductIDs) ([]models.Variant, error)
	FetchVariantOptionPivot(ctx context.Context, variantIDs VariantIDs) ([]models.VariantOptionValue, error)
	FetchOptionValues(ctx context.Context, valueIDs OptionValueIDs) ([]models.OptionValue, error)
}

// VariantFacets is the variant set of the base products and its option graph.
type VariantFacets struct {
	Variants []models.Variant
	Graph    *OptionGraph
}

// EmptyVariantFacets has no variants and no facets.
func EmptyVariantFacets() *VariantFacets {
	return &VariantFacets{Graph: NewOptionGraph()}
}

// FetchVariantFacets runs variants -> pivot -> option values. Each stage is
// only issued when the previous one produced ids.
func FetchVariantFacets(ctx context.Context, repo Repository, tenantID uuid.UUID, productIDs ProductIDs) (*VariantFacets, error) {
	result := EmptyVariantFacets()
	if len(productIDs) == 0 {
		return result, nil
	}

	variants, err := repo.FetchVariants(ctx, tenantID, productIDs)
	if err != nil {
		return nil, wrapRepositoryError("fetch variants", err)
	}
	result.Variants = variants

	variantIDs := make(VariantIDs, 0, len(variants))
	for _, v := range variants {
		variantIDs = append(variantIDs, v.ID)
	}
	if len(variantIDs) == 0 {
		return result, nil
	}

	pivots, err := repo.FetchVariantOptionPivot(ctx, variantIDs)
	if err != nil {
		return nil, wrapRepositoryError("fetch variant option pivot", err)
	}

	valueIDs := distinctValueIDs(pivots)
	if len(valueIDs) == 0 {
		return result, nil
	}

	values, err := repo.FetchOptionValues(ctx, valueIDs)
	if err != nil {
		return nil, wrapRepositoryError("fetch option values", err)
	}

	result.Graph = BuildOptionGraph(pivots, values)
	return result, nil
}

func distinctValueIDs(pivots []models.VariantOptionValue) OptionValueIDs {
	seen := make(map[uuid.UUID]struct{}, len(pivots))
	ids := make(OptionValueIDs, 0, len(pivots))
	for _, row := range pivots {
		if _, ok := seen[row.OptionValueID]; ok {
			continue
		}
		seen[row.OptionValueID] = struct{}{}
		ids = append(ids, row.OptionValueID)
	}
	return ids
}

// ProductIDsOf lists the ids of products in order.
func ProductIDsOf(products []models.Product) ProductIDs {
	ids := make(ProductIDs, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// KeepUsedCategories drops categories no active product references.
func KeepUsedCategories(categories []models.Category, refs []ProductRef) []models.Category {
	used := make(map[uuid.UUID]struct{}, len(refs))
	for _, ref := range refs {
		if ref.CategoryID != nil {
			used[*ref.CategoryID] = struct{}{}
		}
	}
	out := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := used[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// KeepUsedBrands drops brands no active product references.
func KeepUsedBrands(brands []models.Brand, refs []ProductRef) []models.Brand {
	used := make(map[uuid.UUID]struct{}, len(refs))
	for _, ref := range refs {
		if ref.BrandID != nil {
			used[*ref.BrandID] = struct{}{}
		}
	}
	out := make([]models.Brand, 0, len(brands))
	for _, b := range brands {
		if _, ok := used[b.ID]; ok {
			out = append(out, b)
		}
	}
	return out
}
