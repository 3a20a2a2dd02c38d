// Package cache provides a small read-through cache used by the menu listing.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is satisfied by the Redis client and by the in-memory implementation
// used in tests. A miss is reported as an empty string, not an error.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	GenerateKey(operation, key string) string
}

func keyFor(serviceName, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
