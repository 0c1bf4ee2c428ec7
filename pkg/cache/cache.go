// Package cache memoizes per-graph analysis results for the lifetime of a
// process.
//
// A stream of candidate graphs, typically the output of a vertex-extension
// tool, often repeats the same graph. The pipeline keys each result by the
// graph's compact encoding and the line rule, so a repeated graph is analyzed
// once.
//
// # Implementations
//
//   - [MemoryCache]: bounded in-memory cache backed by ristretto
//   - [NullCache]: stores nothing (caching disabled)
//
// Nothing is written to disk.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the value for key. ok is false on a miss.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error

	// Close releases resources. The cache must not be used afterwards.
	Close() error
}

// TTLAnalysis is the lifetime of a memoized analysis. Results never go
// stale within a run, so entries only leave the cache by eviction.
const TTLAnalysis time.Duration = 0

// DefaultSize is the default number of memoized results.
const DefaultSize = 1 << 16
