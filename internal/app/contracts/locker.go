package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	// IsHeld reports whether lockValue still owns the lock; used as the
	// stale-response guard before merging a late scheduler reply.
	IsHeld(ctx context.Context, key, lockValue string) (bool, error)
}
