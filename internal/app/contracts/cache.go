package contracts

import (
	"context"
	"time"
)

// CacheService is an explicit injected cache with TTL semantics. A miss is
// reported as (false, nil), never as an error.
type CacheService interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
