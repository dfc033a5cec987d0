package shop_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/gin-gonic/gin"
)

// GetShopFacets godoc
// @Summary Get the shop sidebars
// @Description Returns the category and brand lists with counts and the option facets for the current filter state, without the product grid.
// @Tags Storefront - Shop
// @Produce json
// @Param store path string true "Store slug"
// @Param q query string false "Search on product name or slug"
// @Param cats query string false "Comma separated category slugs"
// @Param brands query string false "Comma separated brand slugs"
// @Param brand query string false "Single brand slug, used when brands is empty"
// @Param opt query []string false "Facet selection <groupID>:<valueID> (repeatable)"
// @Success 200 {object} models.ApiResponse{data=models.ShopFacets}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/{store}/shop/facets [get]
func GetShopFacets(c *gin.Context) {
	_, state, fields := bindShopQuery(c)
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facets fetched successfully", buildShopFacets(session.Result())))
}
