package cache

import (
	"context"
	"io"
	"time"
)

// Cache holds JSON-encoded page data. A missing or undecodable entry reads as
// a miss. A ttl <= 0 falls back to the backend's default expiry.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error

	// Generation reads a counter that never expires; a missing counter is 0.
	Generation(ctx context.Context, key string) (int64, error)
	// Bump increments the counter and returns its new value.
	Bump(ctx context.Context, key string) (int64, error)

	io.Closer
}
