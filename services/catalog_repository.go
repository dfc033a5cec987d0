package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// DefaultFetchLimit caps the product rows read per catalog fetch.
const DefaultFetchLimit = 500

var ErrProductNotFound = errors.New("product not found")

// CatalogRepository reads the storefront catalog through GORM. Every method is
// scoped to one store.
type CatalogRepository struct {
	db    *gorm.DB
	limit int
}

var _ catalog_filter.Repository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a repository; a non-positive limit means DefaultFetchLimit.
func NewCatalogRepository(db *gorm.DB, limit int) *CatalogRepository {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	return &CatalogRepository{db: db, limit: limit}
}

// FetchCatalog reads products, categories, brands and the store locale in
// parallel. Categories and brands are kept only when an active product of the
// store references them, whatever the search.
func (r *CatalogRepository) FetchCatalog(ctx context.Context, tenantID uuid.UUID, search string) (*catalog_filter.Catalog, error) {
	var (
		products   []models.Product
		categories []models.Category
		brands     []models.Brand
		refs       []catalog_filter.ProductRef
		store      models.Store
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := r.db.WithContext(gctx).
			Where("store_id = ? AND active = ?", tenantID, true)
		if search = strings.TrimSpace(search); search != "" {
			pattern := "%" + escapeLike(search) + "%"
			query = query.Where("(name ILIKE ? OR slug ILIKE ?)", pattern, pattern)
		}
		err := query.
			Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort ASC") }).
			Order("created_at DESC").
			Limit(r.limit).
			Find(&products).Error
		if err != nil {
			return &catalog_filter.RepositoryError{Op: "fetch products", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.WithContext(gctx).
			Model(&models.Product{}).
			Select("category_id, brand_id").
			Where("store_id = ? AND active = ?", tenantID, true).
			Find(&refs).Error
		if err != nil {
			return &catalog_filter.RepositoryError{Op: "fetch product references", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.WithContext(gctx).
			Where("store_id = ? AND active = ?", tenantID, true).
			Order("sort ASC, name ASC").
			Find(&categories).Error
		if err != nil {
			return &catalog_filter.RepositoryError{Op: "fetch categories", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.WithContext(gctx).
			Where("store_id = ? AND active = ?", tenantID, true).
			Order("name ASC").
			Find(&brands).Error
		if err != nil {
			return &catalog_filter.RepositoryError{Op: "fetch brands", Err: err}
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.WithContext(gctx).
			Model(&models.Store{}).
			Select("locale").
			Where("id = ?", tenantID).
			Limit(1).
			Find(&store).Error
		if err != nil {
			return &catalog_filter.RepositoryError{Op: "fetch store locale", Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if products == nil {
		products = []models.Product{}
	}
	return &catalog_filter.Catalog{
		Products:   products,
		Categories: catalog_filter.KeepUsedCategories(categories, refs),
		Brands:     catalog_filter.KeepUsedBrands(brands, refs),
		Locale:     parseLocale(store.Locale),
	}, nil
}

func (r *CatalogRepository) FetchVariants(ctx context.Context, tenantID uuid.UUID, productIDs catalog_filter.ProductIDs) ([]models.Variant, error) {
	variants := []models.Variant{}
	if len(productIDs) == 0 {
		return variants, nil
	}
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id IN ? AND active = ?", tenantID, []uuid.UUID(productIDs), true).
		Order("created_at ASC").
		Find(&variants).Error
	if err != nil {
		return nil, &catalog_filter.RepositoryError{Op: "fetch variants", Err: err}
	}
	return variants, nil
}

func (r *CatalogRepository) FetchVariantOptionPivot(ctx context.Context, variantIDs catalog_filter.VariantIDs) ([]models.VariantOptionValue, error) {
	pivots := []models.VariantOptionValue{}
	if len(variantIDs) == 0 {
		return pivots, nil
	}
	err := r.db.WithContext(ctx).
		Where("variant_id IN ?", []uuid.UUID(variantIDs)).
		Find(&pivots).Error
	if err != nil {
		return nil, &catalog_filter.RepositoryError{Op: "fetch variant option pivot", Err: err}
	}
	return pivots, nil
}

// FetchOptionValues returns the values with their group preloaded.
func (r *CatalogRepository) FetchOptionValues(ctx context.Context, valueIDs catalog_filter.OptionValueIDs) ([]models.OptionValue, error) {
	values := []models.OptionValue{}
	if len(valueIDs) == 0 {
		return values, nil
	}
	err := r.db.WithContext(ctx).
		Preload("OptionGroup").
		Where("id IN ?", []uuid.UUID(valueIDs)).
		Order("sort ASC").
		Find(&values).Error
	if err != nil {
		return nil, &catalog_filter.RepositoryError{Op: "fetch option values", Err: err}
	}
	return values, nil
}

// ProductDetail is one product with its sidebar references resolved.
type ProductDetail struct {
	Product  models.Product
	Category *models.Category
	Brand    *models.Brand
}

// FindProductBySlug returns an active product of the store. Unknown or
// inactive slugs return ErrProductNotFound.
func (r *CatalogRepository) FindProductBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*ProductDetail, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort ASC") }).
		Where("store_id = ? AND slug = ? AND active = ?", tenantID, slug, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, &catalog_filter.RepositoryError{Op: "fetch product", Err: err}
	}

	detail := &ProductDetail{Product: product}
	if product.CategoryID != nil {
		var category models.Category
		err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", *product.CategoryID, tenantID).Limit(1).Find(&category).Error
		if err != nil {
			return nil, &catalog_filter.RepositoryError{Op: "fetch product category", Err: err}
		}
		if category.ID != uuid.Nil {
			detail.Category = &category
		}
	}
	if product.BrandID != nil {
		var brand models.Brand
		err := r.db.WithContext(ctx).Where("id = ? AND store_id = ?", *product.BrandID, tenantID).Limit(1).Find(&brand).Error
		if err != nil {
			return nil, &catalog_filter.RepositoryError{Op: "fetch product brand", Err: err}
		}
		if brand.ID != uuid.Nil {
			detail.Brand = &brand
		}
	}
	return detail, nil
}

// escapeLike escapes the LIKE wildcards so search text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func parseLocale(raw string) language.Tag {
	if raw == "" {
		return catalog_filter.DefaultLocale
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return catalog_filter.DefaultLocale
	}
	return tag
}
