package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLocker(client)
	l.pollInterval = 10 * time.Millisecond
	return l, mr
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	l, mr := newLocker(t)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "registration:1:100", time.Minute, time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := mr.Get("registration:1:100")
	require.NoError(t, err)
	assert.Equal(t, token, stored)

	assert.True(t, l.Release(ctx, "registration:1:100", token))
	assert.False(t, mr.Exists("registration:1:100"))
}

func TestRedisLocker_Acquire_HeldKeyTimesOut(t *testing.T) {
	l, _ := newLocker(t)
	ctx := context.Background()

	_, err := l.Acquire(ctx, "k", time.Minute, time.Second)
	require.NoError(t, err)

	start := time.Now()
	_, err = l.Acquire(ctx, "k", time.Minute, 50*time.Millisecond)
	require.ErrorIs(t, err, ErrNotAcquired)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRedisLocker_Acquire_AfterRelease(t *testing.T) {
	l, _ := newLocker(t)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "k", time.Minute, time.Second)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := l.Acquire(ctx, "k", time.Minute, time.Second)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	l.Release(ctx, "k", token)

	require.NoError(t, <-done)
}

func TestRedisLocker_Acquire_AfterTTLExpiry(t *testing.T) {
	l, mr := newLocker(t)
	ctx := context.Background()

	_, err := l.Acquire(ctx, "k", 30*time.Millisecond, time.Second)
	require.NoError(t, err)

	// miniredis needs an explicit clock advance for TTLs.
	mr.FastForward(50 * time.Millisecond)

	token2, err := l.Acquire(ctx, "k", time.Minute, time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, token2)
}

func TestRedisLocker_Release_StaleTokenIsNoOp(t *testing.T) {
	l, mr := newLocker(t)
	ctx := context.Background()

	tokenA, err := l.Acquire(ctx, "k", time.Minute, time.Second)
	require.NoError(t, err)

	// Simulate TTL expiry plus reacquisition by another holder.
	require.NoError(t, mr.Set("k", "token-B"))

	assert.False(t, l.Release(ctx, "k", tokenA))

	stored, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "token-B", stored)
}

func TestRedisLocker_Acquire_ContextCancelled(t *testing.T) {
	l, _ := newLocker(t)

	_, err := l.Acquire(context.Background(), "k", time.Minute, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = l.Acquire(ctx, "k", time.Minute, time.Second)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRedisLocker_Acquire_BackendDown(t *testing.T) {
	l, mr := newLocker(t)
	mr.Close()

	_, err := l.Acquire(context.Background(), "k", time.Minute, 50*time.Millisecond)
	require.ErrorIs(t, err, ErrNotAcquired)

	// Release on a dead backend is swallowed.
	assert.False(t, l.Release(context.Background(), "k", "t"))
}
