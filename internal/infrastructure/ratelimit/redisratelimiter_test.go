package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiter_WindowSlides(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return start }

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(ctx, "k", 2, time.Minute)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := limiter.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return start.Add(2 * time.Minute) }
	allowed, err = limiter.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_DifferentKeys(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(ctx, "key1", 2, time.Minute)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(ctx, "key1", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "key1 should be rate limited")

	allowed, err = limiter.Allow(ctx, "key2", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "key2 should not be affected")
}

func TestRedisRateLimiter_UsedAndReset(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	used, err := limiter.Used(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, used)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "k", 10, time.Minute)
		require.NoError(t, err)
	}

	used, err = limiter.Used(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 3, used)

	require.NoError(t, limiter.Reset(ctx, "k"))
	used, err = limiter.Used(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Zero(t, used)
}

func TestRedisRateLimiter_ZeroLimitAdmits(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	allowed, err := limiter.Allow(context.Background(), "k", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
