package store_cache

import (
	"strings"
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/modeva-shop-catalog/models"
)

const TTL = 5 * time.Minute

// ── Store by slug cache ──────────────────────────────────────────────────────
// Stores are read on every storefront request and change rarely.

type storeEntry struct {
	store     models.Store
	fetchedAt time.Time
}

var (
	storeMu sync.RWMutex
	stores  = map[string]storeEntry{}
)

// Slugs are matched case-insensitively.
func key(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func Get(slug string) (models.Store, bool) {
	storeMu.RLock()
	defer storeMu.RUnlock()
	entry, ok := stores[key(slug)]
	if ok && time.Since(entry.fetchedAt) < TTL {
		return entry.store, true
	}
	return models.Store{}, false
}

func Set(store models.Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	stores[key(store.Slug)] = storeEntry{store: store, fetchedAt: time.Now()}
}

// ── Invalidate (call when a store is renamed or deactivated) ─────────────────

func Invalidate(slug string) {
	storeMu.Lock()
	delete(stores, key(slug))
	storeMu.Unlock()
}

func InvalidateAll() {
	storeMu.Lock()
	stores = map[string]storeEntry{}
	storeMu.Unlock()
}
