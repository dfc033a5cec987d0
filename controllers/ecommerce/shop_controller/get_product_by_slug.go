package shop_controller

import (
	"log"
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/gin-gonic/gin"
)

// GetProductBySlug godoc
// @Summary Get product details
// @Description Returns an active product with ordered media, variants and their option labels.
// @Tags Storefront - Products
// @Produce json
// @Param store path string true "Store slug"
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProduct}
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/{store}/products/{slug} [get]
func GetProductBySlug(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	store, ok := resolveStore(ctx, c)
	if !ok {
		return
	}

	detail, err := productFinder.FindProductBySlug(ctx, store.ID, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	facets, err := catalog_filter.FetchVariantFacets(ctx, catalogRepo, store.ID, catalog_filter.ProductIDs{detail.Product.ID})
	if err != nil {
		log.Printf("⚠️ Variants unavailable for product %s: %v", detail.Product.ID, err)
		facets = catalog_filter.EmptyVariantFacets()
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", buildStorefrontProduct(detail, facets, store.Currency)))
}
