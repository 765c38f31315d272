// Package cache stores rendered artifacts keyed by snapshot digest.
//
// Rendering a connectivity graph through graphviz is the only expensive
// operation in polygrid, and its output is a pure function of the snapshot and
// the render options. Keys are built by a [Keyer] from the snapshot digest
// ([Hash] of the canonical record) and the options, so equal boards share one
// entry regardless of which session or file produced them.
//
// Backends: [FileCache] for the CLI, [MemoryCache] for the HTTP server and
// [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/polygrid/pkg/observability"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// GetOrCompute returns the cached entry for key, or calls fn and stores its
// result. keyType labels the entry for observability hooks.
func GetOrCompute(ctx context.Context, c Cache, keyType, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	data, err := fn()
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	return data, nil
}
