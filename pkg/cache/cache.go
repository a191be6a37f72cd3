// Package cache stores rendered card artifacts.
//
// Rendering a card is deterministic in its inputs (size, seed, rip settings,
// colors, format), so the bytes of a rendered PNG or SVG can be reused across
// CLI invocations. Keys are produced by a [Keyer] from those inputs; values are
// opaque byte slices with an optional TTL.
//
// Two backends are provided:
//   - [FileCache]: JSON entries under a directory (the CLI uses ~/.cache/damagedcard)
//   - [NullCache]: never stores anything (--no-cache)
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries.
const (
	// TTLArtifact is how long rendered artifacts stay valid.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLGeometry is how long generated geometry stays valid.
	TTLGeometry = 30 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
