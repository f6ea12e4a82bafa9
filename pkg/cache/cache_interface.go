package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the content cache layer.
// Implementations can be swapped (Redis, in-memory for tests).
type Cache interface {
	// Get loads the value stored at key and unmarshals it into dest.
	// Returns (found bool, error):
	// - found = true: cache hit, dest populated
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL (0 = no expiry)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern (e.g. "portfolio:*")
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks the connection
	Ping(ctx context.Context) error
}
