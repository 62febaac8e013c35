// README: Coordinate cache abstraction with an in-process implementation.
package geocode

import (
	"context"
	"sync"

	"farecast/internal/types"
)

// Cache stores resolved coordinates for the lifetime of the process (or
// longer, for shared backends). Entries are never evicted. Concurrent
// writers for the same key are acceptable: both compute the same coordinate,
// so last-writer-wins is idempotent.
type Cache interface {
	Get(ctx context.Context, key string) (types.Coordinate, bool)
	Put(ctx context.Context, key string, coord types.Coordinate)
}

// MemoryCache is the default process-wide cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]types.Coordinate
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]types.Coordinate)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (types.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coord, ok := c.entries[key]
	return coord, ok
}

func (c *MemoryCache) Put(_ context.Context, key string, coord types.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = coord
}
