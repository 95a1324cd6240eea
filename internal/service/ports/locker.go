package ports

import (
	"context"
	"time"
)

// Locker is a distributed mutual-exclusion primitive keyed by name.
type Locker interface {
	// Acquire blocks up to wait for the lock and returns the release token.
	// Failure to acquire within the window is an error (lock.ErrNotAcquired);
	// callers must not enter the guarded section without a token.
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (string, error)
	// Release frees the lock if it still holds token. Best-effort.
	Release(ctx context.Context, key, token string) bool
}
