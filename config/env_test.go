package config

import (
	"testing"
	"time"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DEFAULT_STORE", "CORS_ORIGINS", "CATALOG_FETCH_LIMIT", "CATALOG_CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := LoadAppConfig()
	if cfg.Port != "8081" || cfg.FetchLimit != 500 || cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 default origins, got %v", cfg.CORSOrigins)
	}
	if cfg.IsProduction() {
		t.Fatal("default env must not be production")
	}
}

func TestLoadAppConfigOverrides(t *testing.T) {
	t.Setenv("CATALOG_FETCH_LIMIT", "120")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", " https://shop.example.com , ,https://admin.example.com")
	t.Setenv("APP_ENV", "production")

	cfg := LoadAppConfig()
	if cfg.FetchLimit != 120 || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://shop.example.com" {
		t.Fatalf("origins = %v", cfg.CORSOrigins)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production")
	}
}

func TestLoadAppConfigBadNumbers(t *testing.T) {
	t.Setenv("CATALOG_FETCH_LIMIT", "-3")
	t.Setenv("CATALOG_CACHE_TTL", "soon")

	cfg := LoadAppConfig()
	if cfg.FetchLimit != 500 || cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("bad values must fall back to defaults: %+v", cfg)
	}
}
