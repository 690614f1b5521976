package category_cache

import (
	"sync"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
)

const TTL = 5 * time.Minute

// Tree holds the category tree (subcategories preloaded) together with the
// active product count per category id. The zero value is not usable; use New.
type Tree struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	categories    []models.Category
	productCounts map[string]int64
	fetchedAt     time.Time
	loaded        bool
}

func New(ttl time.Duration) *Tree {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Tree{ttl: ttl, now: time.Now}
}

// Get returns the cached tree while it is younger than the TTL.
func (t *Tree) Get() ([]models.Category, map[string]int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.loaded || t.now().Sub(t.fetchedAt) >= t.ttl {
		return nil, nil, false
	}
	return t.categories, t.productCounts, true
}

func (t *Tree) Set(categories []models.Category, productCounts map[string]int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.categories = categories
	t.productCounts = productCounts
	t.fetchedAt = t.now()
	t.loaded = true
}

// Invalidate drops the tree. Call on any category or subcategory write.
func (t *Tree) Invalidate() {
	t.mu.Lock()
	t.categories, t.productCounts, t.loaded = nil, nil, false
	t.mu.Unlock()
}
