package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// MemoryCache is a bounded in-memory cache. Every entry costs 1, so the
// capacity is a number of entries. Writes are applied before Set returns,
// and a later Get in the same goroutine observes them unless the admission
// policy rejected the entry.
type MemoryCache struct {
	c *ristretto.Cache[string, []byte]
}

// NewMemoryCache creates a cache holding up to size entries.
func NewMemoryCache(size int) (Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters:        int64(size) * 10,
		MaxCost:            int64(size),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}
	return &MemoryCache{c: c}, nil
}

// Get retrieves a value from the cache.
func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := m.c.Get(key)
	return data, ok, nil
}

// Set stores a value in the cache.
func (m *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	m.c.SetWithTTL(key, data, 1, ttl)
	m.c.Wait()
	return nil
}

// Delete removes a value from the cache.
func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.c.Del(key)
	return nil
}

// Close stops the cache's background goroutines.
func (m *MemoryCache) Close() error {
	m.c.Close()
	return nil
}

var _ Cache = (*MemoryCache)(nil)
