// @title Modeva Shop Catalog API
// @version 1.0
// @description Storefront catalog filtering: search, category and brand sidebars, option facets and sorting per store.
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/config"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/controllers/ecommerce/shop_controller"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/docs"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/middleware"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.LoadAppConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	if err := config.ConnectRedis(ctx); err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer config.CloseRedis()

	// ✅ Wire the catalog: GORM repository behind the Redis catalog cache
	repo := services.NewCatalogRepository(config.CatalogGorm, cfg.FetchLimit)
	cached := services.NewCachedRepository(repo, services.NewRedisCatalogCache(config.RedisClient), cfg.CacheTTL)
	shop_controller.Init(services.NewStoreResolver(config.CatalogDB), cached, repo)
	log.Printf("✅ Catalog wired (fetch limit %d, cache ttl %s)", cfg.FetchLimit, cfg.CacheTTL)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.Metrics())

	router.GET("/healthz", healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes
	api := router.Group("/api/v1")
	ecommerce_routes.SetupStorefrontRoutes(api, config.RedisClient)

	// Links without a store segment go to the default store's shop
	api.GET("/shop", func(c *gin.Context) {
		target := "/api/v1/store/" + cfg.DefaultStore + "/shop"
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}
		c.Redirect(http.StatusFound, target)
	})

	// Swagger docs
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Server is running on http://localhost:%s (default store %s)", cfg.Port, cfg.DefaultStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️ Shutting down")

	shutdownCtx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
}

// healthz pings the catalog database and Redis.
func healthz(c *gin.Context) {
	ctx, cancel := config.WithParentTimeout(c.Request.Context())
	defer cancel()

	status := gin.H{"database": "ok", "redis": "ok"}
	healthy := true
	if err := config.CatalogDB.Ping(ctx); err != nil {
		status["database"] = err.Error()
		healthy = false
	}
	if err := config.RedisClient.Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, models.ApiResponse{Message: "Unhealthy", Error: true, Data: status})
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Healthy", status))
}
