package store_cache

import (
	"testing"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
	"github.com/google/uuid"
)

func TestSetGetInvalidate(t *testing.T) {
	InvalidateAll()
	store := models.Store{ID: uuid.New(), Slug: "tech-boutique", Name: "Tech Boutique"}

	if _, ok := Get(store.Slug); ok {
		t.Fatal("empty cache must miss")
	}

	Set(store)
	got, ok := Get(store.Slug)
	if !ok || got.ID != store.ID {
		t.Fatalf("expected hit for %s, got %+v", store.Slug, got)
	}

	Invalidate(store.Slug)
	if _, ok := Get(store.Slug); ok {
		t.Fatal("invalidated entry must miss")
	}
}

func TestSlugsIgnoreCase(t *testing.T) {
	InvalidateAll()
	store := models.Store{ID: uuid.New(), Slug: "Tech-Boutique"}
	Set(store)

	for _, slug := range []string{"tech-boutique", " TECH-BOUTIQUE ", "Tech-Boutique"} {
		if got, ok := Get(slug); !ok || got.ID != store.ID {
			t.Fatalf("Get(%q) missed", slug)
		}
	}

	Invalidate("tech-boutique")
	if _, ok := Get("Tech-Boutique"); ok {
		t.Fatal("invalidation must ignore case")
	}
}
