// Package cache provides the key-value store with per-key expiry that backs
// OTP codes, counters, cooldown flags and the cached SMS provider token.
package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-key TTL.
// Each operation is atomic on its own key; no multi-key transactions are offered.
type Store interface {
	// Get returns the value and whether the key was present
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Incr increments the counter, creating it at 1 when absent, and resets its TTL to ttl
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// IncrWindow increments a fixed-window counter. The window starts with the first
	// increment and is not extended by later ones. Returns the count and the time left.
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}
