package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/catalog_filter"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CatalogCache is the byte store behind CachedRepository. Get returns
// redis.Nil on a miss.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCatalogCache stores catalogs in Redis.
type RedisCatalogCache struct {
	client *redis.Client
}

func NewRedisCatalogCache(client *redis.Client) *RedisCatalogCache {
	return &RedisCatalogCache{client: client}
}

func (c *RedisCatalogCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *RedisCatalogCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// CachedRepository caches FetchCatalog per store and search text. The variant
// facet stages go straight to the wrapped repository.
type CachedRepository struct {
	catalog_filter.Repository
	cache CatalogCache
	ttl   time.Duration
}

// NewCachedRepository wraps repo; a zero ttl disables caching.
func NewCachedRepository(repo catalog_filter.Repository, cache CatalogCache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{Repository: repo, cache: cache, ttl: ttl}
}

// FetchCatalog serves from the cache when possible. Cache failures are logged
// and never fail the request.
func (r *CachedRepository) FetchCatalog(ctx context.Context, tenantID uuid.UUID, search string) (*catalog_filter.Catalog, error) {
	if r.cache == nil || r.ttl <= 0 {
		return r.Repository.FetchCatalog(ctx, tenantID, search)
	}

	key := CatalogCacheKey(tenantID, search)
	raw, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var catalog catalog_filter.Catalog
		if err := json.Unmarshal(raw, &catalog); err == nil {
			return &catalog, nil
		}
		log.Printf("⚠️ Corrupt catalog cache entry %s, refetching", key)
	case !errors.Is(err, redis.Nil):
		log.Printf("⚠️ Catalog cache read failed for %s: %v", key, err)
	}

	catalog, err := r.Repository.FetchCatalog(ctx, tenantID, search)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(catalog); err != nil {
		log.Printf("⚠️ Catalog cache encode failed for %s: %v", key, err)
	} else if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
		log.Printf("⚠️ Catalog cache write failed for %s: %v", key, err)
	}
	return catalog, nil
}

// CatalogCacheKey is "catalog:<store id>:<search hash>". Search is matched
// case-insensitively, so the key is too.
func CatalogCacheKey(tenantID uuid.UUID, search string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(search))))
	return "catalog:" + tenantID.String() + ":" + hex.EncodeToString(sum[:8])
}
