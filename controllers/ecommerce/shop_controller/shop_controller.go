package shop_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/config"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreLookup resolves the :store path segment to a tenant.
type StoreLookup interface {
	Resolve(ctx context.Context, slug string) (models.Store, error)
}

// ProductFinder loads one product for the detail page.
type ProductFinder interface {
	FindProductBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*services.ProductDetail, error)
}

var (
	stores        StoreLookup
	catalogRepo   catalog_filter.Repository
	productFinder ProductFinder
)

var (
	shopResultSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shop_catalog",
		Name:      "filter_result_products",
		Help:      "Products left after applying a shop filter state.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	facetsDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shop_catalog",
		Name:      "facets_degraded_total",
		Help:      "Shop responses served without facets after a variant fetch failure.",
	})
)

// Init wires the storefront handlers to their data sources.
func Init(storeLookup StoreLookup, repo catalog_filter.Repository, products ProductFinder) {
	stores = storeLookup
	catalogRepo = repo
	productFinder = products
	registerValidators()
}

// resolveStore writes the error response itself and reports false on failure.
func resolveStore(ctx context.Context, c *gin.Context) (models.Store, bool) {
	store, err := stores.Resolve(ctx, c.Param("store"))
	if err != nil {
		respondError(c, err)
		return models.Store{}, false
	}
	return store, true
}

// loadSession runs the catalog and facet fetches for state. Facet selections
// the fetched graph does not offer are dropped.
func loadSession(ctx context.Context, store models.Store, state catalog_filter.FilterState) (*catalog_filter.Session, error) {
	session := catalog_filter.NewSession(catalogRepo, store.ID, state)
	if err := session.Load(ctx); err != nil {
		return nil, err
	}

	for groupID, values := range state.Selection {
		for valueID := range values {
			if !session.HasFacetValue(groupID, valueID) {
				session.ToggleFacetValue(groupID, valueID, false)
			}
		}
	}

	if err := session.FacetsErr(); err != nil {
		facetsDegraded.Inc()
	}
	return session, nil
}

func respondError(c *gin.Context, err error) {
	var repoErr *catalog_filter.RepositoryError
	switch {
	case errors.Is(err, services.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Store not found"))
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
	case errors.As(err, &repoErr):
		log.Printf("❌ Catalog fetch failed (%s): %v", repoErr.Op, repoErr.Err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Catalog temporarily unavailable"))
	default:
		log.Printf("❌ Storefront request failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
	}
}

// requestContext bounds every storefront request with the database timeout.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return config.WithParentTimeout(c.Request.Context())
}
