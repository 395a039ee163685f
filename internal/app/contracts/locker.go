package contracts

import (
	"context"
	"time"
)

// LockerService hands out redis-backed locks. TryLock mints an owner token;
// Unlock and Refresh only act when the caller presents that token.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
