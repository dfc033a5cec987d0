package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// CatalogDB serves the raw store lookups and the health check.
	CatalogDB *pgxpool.Pool

	// CatalogGorm serves the catalog repository, migrations and the seed tool.
	CatalogGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

// catalogURL prefers CATALOG_DB_URL (Neon) and falls back to a local database.
func catalogURL() string {
	if url := os.Getenv("CATALOG_DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ CATALOG_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/modeva_shop_catalog?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
}

func initPgx() {
	var err error
	CatalogDB, err = pgxpool.New(context.Background(), catalogURL())
	if err != nil {
		log.Fatalf("❌ Unable to connect to catalog database: %v", err)
	}

	if err = CatalogDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Catalog database ping failed: %v", err)
	}

	log.Println("✅ Catalog database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	CatalogGorm, err = gorm.Open(postgres.Open(catalogURL()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to catalog database with GORM: %v", err)
	}
	if sqlDB, err := CatalogGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(4)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Catalog database connected (GORM)")
}

func CloseDB() {
	if CatalogDB != nil {
		CatalogDB.Close()
		log.Println("✅ Catalog database connection closed (pgx)")
	}

	if CatalogGorm != nil {
		sqlDB, _ := CatalogGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Catalog database connection closed (GORM)")
		}
	}
}

const queryTimeout = 10 * time.Second

// WithTimeout returns a context with a 10s timeout (Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return WithParentTimeout(context.Background())
}

// WithParentTimeout is WithTimeout bound to a request context.
func WithParentTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, queryTimeout)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
