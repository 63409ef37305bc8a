package metadata_cache

import (
	"sync"
	"time"

	"github.com/Adarshk-afk/Bitehub/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The storefront sidebar asks for categories/brands/features/price bounds on
// every page view; the facet scan over the full catalog only needs to run
// once per TTL window.

type metadataEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func Get() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return nil, false
}

func Set(data *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call when the catalog source changes) ────────────────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
