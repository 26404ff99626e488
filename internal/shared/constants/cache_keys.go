package constants

import (
	"fmt"
	"time"
)

// Cache keys and TTL values for the Virasat service.
// Pattern: virasat:{module}:{operation}:{identifier}

const CACHE_PREFIX = "virasat"

// Event cache keys
const (
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:id:" // + event-id
)

// Invalidation patterns
const (
	PATTERN_EVENT_DETAIL_ALL = CACHE_KEY_EVENT_DETAIL + "*"
)

// The catalog never changes at runtime, so entries only need a TTL when the
// store is shared Redis that outlives the process.
const (
	TTL_EVENT_DETAIL = 12 * time.Hour
	TTL_NONE         = time.Duration(0) // no expiry (memory store)
)

// BuildEventDetailKey builds the cache key for a single event.
func BuildEventDetailKey(id int) string {
	return fmt.Sprintf("%s%d", CACHE_KEY_EVENT_DETAIL, id)
}
