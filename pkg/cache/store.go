package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is not present. A miss is an
// expected outcome, not a failure; callers must branch on it explicitly.
var ErrCacheMiss = errors.New("cache miss")

// Store is a key-value cache with JSON-encoded values. Two implementations
// exist: an in-process memory store (the default) and a Redis-backed store.
// Entries are immutable once written and re-writes are idempotent, so no
// transactional guarantees are offered.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeletePattern removes every key matching a glob-style pattern
	// (e.g. "virasat:events:detail:*").
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, key string) bool

	// Health check
	Ping(ctx context.Context) error
}
