package blogpost

import (
	"sync"
	"time"
)

// categoryCache memoizes the merged category listing with a TTL. The store
// listing itself stays uncached; this sits in front of it for the HTTP
// surface, where the category set changes rarely and is read on every
// compose-form load.
type categoryCache struct {
	mu      sync.RWMutex
	names   []string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

func newCategoryCache(s *Store, ttl time.Duration) *categoryCache {
	return &categoryCache{store: s, ttl: ttl}
}

func (c *categoryCache) valid() bool {
	return c.names != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *categoryCache) Invalidate() {
	c.mu.Lock()
	c.names = nil
	c.mu.Unlock()
}

// List returns the cached category names, reloading from the store when the
// entry is stale. It tries a read lock first; only takes a write lock when
// a reload is needed.
func (c *categoryCache) List() ([]string, error) {
	c.mu.RLock()
	if c.valid() {
		names := c.names
		c.mu.RUnlock()
		return names, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.names, nil
	}
	names, err := c.store.ListCategories()
	if err != nil {
		return nil, err
	}
	c.names = names
	c.fetched = time.Now()
	return c.names, nil
}
