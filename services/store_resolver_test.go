package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	store_cache "github.com/Modeva-Ecommerce/modeva-shop-catalog/cache"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch ptr := d.(type) {
		case *uuid.UUID:
			*ptr = r.values[i].(uuid.UUID)
		case *string:
			*ptr = r.values[i].(string)
		case *bool:
			*ptr = r.values[i].(bool)
		case *time.Time:
			*ptr = r.values[i].(time.Time)
		}
	}
	return nil
}

type fakeQuerier struct {
	row   fakeRow
	calls int
	slugs []string
	sql   string
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.calls++
	q.sql = sql
	q.slugs = append(q.slugs, args[0].(string))
	return q.row
}

func TestStoreResolverCachesHits(t *testing.T) {
	store_cache.InvalidateAll()
	id := uuid.New()
	db := &fakeQuerier{row: fakeRow{values: []any{id, "tech-boutique", "Tech Boutique", "BOB", "es", true, time.Now()}}}
	resolver := NewStoreResolver(db)

	for i := 0; i < 2; i++ {
		store, err := resolver.Resolve(context.Background(), " Tech-Boutique ")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if store.ID != id || store.Currency != "BOB" {
			t.Fatalf("unexpected store %+v", store)
		}
	}
	if db.calls != 1 || db.slugs[0] != "tech-boutique" {
		t.Fatalf("expected one normalised lookup, got %d %v", db.calls, db.slugs)
	}
}

func TestStoreResolverMixedCaseSlug(t *testing.T) {
	store_cache.InvalidateAll()
	id := uuid.New()
	db := &fakeQuerier{row: fakeRow{values: []any{id, "Tech-Boutique", "Tech Boutique", "BOB", "es", true, time.Now()}}}
	resolver := NewStoreResolver(db)

	for _, slug := range []string{"tech-boutique", "TECH-BOUTIQUE", "Tech-Boutique"} {
		store, err := resolver.Resolve(context.Background(), slug)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", slug, err)
		}
		if store.ID != id {
			t.Fatalf("Resolve(%q) returned %+v", slug, store)
		}
	}
	if db.calls != 1 {
		t.Fatalf("expected the stored slug to be cached case-insensitively, got %d queries", db.calls)
	}
	if !strings.Contains(db.sql, "lower(slug) = $1") {
		t.Fatalf("lookup must compare lowercased slugs: %s", db.sql)
	}
}

func TestStoreResolverNotFound(t *testing.T) {
	store_cache.InvalidateAll()
	resolver := NewStoreResolver(&fakeQuerier{row: fakeRow{err: pgx.ErrNoRows}})

	if _, err := resolver.Resolve(context.Background(), "ghost"); !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), "  "); !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("blank slug: expected ErrStoreNotFound, got %v", err)
	}
}

func TestStoreResolverBackendError(t *testing.T) {
	store_cache.InvalidateAll()
	boom := errors.New("too many connections")
	resolver := NewStoreResolver(&fakeQuerier{row: fakeRow{err: boom}})

	if _, err := resolver.Resolve(context.Background(), "tech-boutique"); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
