package ecommerce_routes

import (
	"time"

	shop "github.com/Modeva-Ecommerce/modeva-shop-catalog/controllers/ecommerce/shop_controller"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// SetupStorefrontRoutes registers the public shop routes under /store/:store.
// A nil redis client disables rate limiting.
func SetupStorefrontRoutes(router *gin.RouterGroup, limiter *redis.Client) {
	store := router.Group("/store/:store")
	store.Use(middleware.RateLimiter(limiter, 120, time.Minute))

	// Shop listing
	shopGroup := store.Group("/shop")
	{
		shopGroup.GET("", shop.GetShopProducts)      // Filtered products + sidebars
		shopGroup.GET("/facets", shop.GetShopFacets) // Sidebars only
	}

	// Product routes
	store.GET("/products/:slug", shop.GetProductBySlug)
}
