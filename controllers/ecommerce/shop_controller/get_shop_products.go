package shop_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/gin-gonic/gin"
)

// GetShopProducts godoc
// @Summary Filter the shop catalog
// @Description Applies search, category, brand and facet selections to the store catalog and returns the sorted products with sidebar counts and facets. Facet values are ANDed across groups and ORed within a group.
// @Tags Storefront - Shop
// @Produce json
// @Param store path string true "Store slug"
// @Param q query string false "Search on product name or slug"
// @Param sort query string false "Sort key" Enums(latest, price_asc, price_desc, name_asc, name_desc) default(latest)
// @Param cats query string false "Comma separated category slugs"
// @Param brands query string false "Comma separated brand slugs"
// @Param brand query string false "Single brand slug, used when brands is empty"
// @Param opt query []string false "Facet selection <groupID>:<valueID> (repeatable)"
// @Param page query int false "Page number, only with limit" default(1)
// @Param limit query int false "Items per page (1-100); all products when omitted"
// @Success 200 {object} models.ApiResponse{data=models.ShopResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/{store}/shop [get]
func GetShopProducts(c *gin.Context) {
	q, state, fields := bindShopQuery(c)
	if fields != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, fields))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	store, ok := resolveStore(ctx, c)
	if !ok {
		return
	}

	session, err := loadSession(ctx, store, state)
	if err != nil {
		respondError(c, err)
		return
	}

	result := session.Result()
	shopResultSize.Observe(float64(len(result.Products)))

	total := len(result.Products)
	start, end := pageWindow(total, q.Page, q.Limit)

	data := models.ShopResult{
		Products:       buildProductCards(result.Products[start:end], store.Currency),
		Total:          total,
		BaseTotal:      len(result.Base),
		Sort:           string(result.State.Sort),
		Search:         result.State.Search,
		ActiveFilters:  buildActiveFilters(result),
		CanonicalQuery: catalog_filter.EncodeURLState(result.State).Encode(),
		ShopFacets:     buildShopFacets(result),
	}

	if q.Limit == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", data))
		return
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	meta := &models.Pagination{
		Page:       page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: (total + q.Limit - 1) / q.Limit,
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", data, meta))
}
