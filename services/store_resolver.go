package services

import (
	"context"
	"errors"
	"strings"

	store_cache "github.com/Modeva-Ecommerce/modeva-shop-catalog/cache"
	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/jackc/pgx/v5"
)

var ErrStoreNotFound = errors.New("store not found")

// RowQuerier is the part of pgxpool.Pool the resolver needs.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StoreResolver maps a store slug from the URL to the tenant.
type StoreResolver struct {
	db RowQuerier
}

func NewStoreResolver(db RowQuerier) *StoreResolver {
	return &StoreResolver{db: db}
}

const resolveStoreQuery = `
	SELECT id, slug, name, currency, locale, active, created_at
	FROM stores
	WHERE lower(slug) = $1 AND active = true
`

// Resolve returns the active store with slug, ignoring case. Results are
// cached for store_cache.TTL.
func (r *StoreResolver) Resolve(ctx context.Context, slug string) (models.Store, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return models.Store{}, ErrStoreNotFound
	}
	if store, ok := store_cache.Get(slug); ok {
		return store, nil
	}

	var store models.Store
	err := r.db.QueryRow(ctx, resolveStoreQuery, slug).Scan(
		&store.ID,
		&store.Slug,
		&store.Name,
		&store.Currency,
		&store.Locale,
		&store.Active,
		&store.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Store{}, ErrStoreNotFound
	}
	if err != nil {
		return models.Store{}, err
	}

	store_cache.Set(store)
	return store, nil
}
