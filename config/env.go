package config

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// AppConfig is the process configuration read from the environment.
type AppConfig struct {
	Port         string
	Env          string
	DefaultStore string
	CORSOrigins  []string
	FetchLimit   int
	CacheTTL     time.Duration
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// LoadAppConfig reads PORT, APP_ENV, DEFAULT_STORE, CORS_ORIGINS,
// CATALOG_FETCH_LIMIT and CATALOG_CACHE_TTL. Bad numbers fall back to the
// defaults with a warning.
func LoadAppConfig() AppConfig {
	cfg := AppConfig{
		Port:         getEnv("PORT", "8081"),
		Env:          getEnv("APP_ENV", "development"),
		DefaultStore: getEnv("DEFAULT_STORE", "tech-boutique"),
		CORSOrigins:  splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		FetchLimit:   500,
		CacheTTL:     2 * time.Minute,
	}

	if raw := getEnv("CATALOG_FETCH_LIMIT", ""); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			log.Printf("⚠️ invalid CATALOG_FETCH_LIMIT %q, using %d", raw, cfg.FetchLimit)
		} else {
			cfg.FetchLimit = limit
		}
	}

	if raw := getEnv("CATALOG_CACHE_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl < 0 {
			log.Printf("⚠️ invalid CATALOG_CACHE_TTL %q, using %s", raw, cfg.CacheTTL)
		} else {
			cfg.CacheTTL = ttl
		}
	}

	return cfg
}

func splitOrigins(raw string) []string {
	var out []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
