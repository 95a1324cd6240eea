package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotAcquired is returned when the lock could not be obtained within the
// caller's wait window. Callers are expected to fail closed and surface a
// retryable error instead of entering the critical section unguarded.
var ErrNotAcquired = errors.New("lock not acquired")

const defaultPollInterval = 100 * time.Millisecond

// releaseScript deletes the key only if it still holds the caller's token.
// GET+DEL as two round trips would race against TTL expiry plus reacquisition
// by another holder; the script runs atomically server-side.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
else
    return 0
end
`)

// RedisLocker is a mutual-exclusion primitive backed by a shared Redis
// instance. A lock is a key holding a random token with a TTL; release is a
// token-matched delete, so an expired holder cannot free a newer holder's
// lock.
type RedisLocker struct {
	client       *redis.Client
	pollInterval time.Duration
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		client:       client,
		pollInterval: defaultPollInterval,
	}
}

// Acquire polls SET NX EX until the lock is obtained or wait elapses.
// Backend errors are treated as a failed attempt: polling continues and the
// wait window is the only thing that ends it, so a flaky backend degrades to
// ErrNotAcquired rather than an error the caller might misread as fatal.
// On success the unique token needed to release the lock is returned.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (string, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err == nil && ok {
			return token, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !time.Now().Add(l.pollInterval).Before(deadline) {
			return "", ErrNotAcquired
		}

		select {
		case <-time.After(l.pollInterval):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// Release frees the lock if it still holds token. Errors are swallowed and
// reported as false: releasing is best-effort, the TTL is the safety net.
func (l *RedisLocker) Release(ctx context.Context, key, token string) bool {
	res, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		return false
	}
	return res == 1
}
