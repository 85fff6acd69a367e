package importer

import (
	"context"
	"sync"
	"time"

	"asset-reconciler/core/container"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one parsed manifest.
type cacheEntry struct {
	container *container.Container
	built     time.Time
}

// CachedImporter decorates an Importer with a TTL cache.
type CachedImporter struct {
	next    Importer
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
	now     func() time.Time
}

// NewCachedImporter wraps next. A zero ttl disables caching.
func NewCachedImporter(next Importer, ttl time.Duration) *CachedImporter {
	return &CachedImporter{
		next:    next,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

func (c *CachedImporter) expired(e *cacheEntry) bool {
	return c.now().Sub(e.built) > c.ttl
}

// Import returns a private copy of the cached container for path, importing
// it first when absent or expired.
func (c *CachedImporter) Import(ctx context.Context, path string) (*container.Container, error) {
	if c.ttl == 0 {
		return c.next.Import(ctx, path)
	}

	// Fast path: fresh entry
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && !c.expired(entry) {
		return fresh(entry.container), nil
	}

	// Slow path: collapse concurrent imports of the same path
	result, err, _ := c.sf.Do(path, func() (interface{}, error) {
		c.mu.RLock()
		entry, ok := c.entries[path]
		c.mu.RUnlock()
		if ok && !c.expired(entry) {
			return entry.container, nil
		}

		imported, err := c.next.Import(ctx, path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[path] = &cacheEntry{container: imported, built: c.now()}
		c.mu.Unlock()
		return imported, nil
	})
	if err != nil {
		return nil, err
	}

	return fresh(result.(*container.Container)), nil
}

// Invalidate drops the cached entry for path.
func (c *CachedImporter) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// fresh deep-copies c and assigns new ids so no two calls share a staging
// container.
func fresh(c *container.Container) *container.Container {
	out := c.Clone()
	out.ID = container.NewID()
	for i := range out.Elements {
		out.Elements[i].ID = container.NewID()
	}
	return out
}
