package cache

import (
	"context"
	"time"
)

// Cache is a byte-value store with per-key expiry. ttl <= 0 keeps the key
// until it is deleted.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
