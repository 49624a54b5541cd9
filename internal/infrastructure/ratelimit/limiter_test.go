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

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	t.Run("burst then refuse", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			ok, err := l.Allow(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, _ := l.Allow(ctx, "1.2.3.4")
		assert.False(t, ok)

		ok, _ = l.Allow(ctx, "5.6.7.8")
		assert.True(t, ok, "other clients have their own bucket")
	})

	t.Run("refills over the window", func(t *testing.T) {
		now = now.Add(30 * time.Second)
		ok, _ := l.Allow(ctx, "1.2.3.4")
		assert.True(t, ok)
	})

	t.Run("cleanup drops idle clients", func(t *testing.T) {
		now = now.Add(4 * time.Minute)
		assert.Equal(t, 2, l.Cleanup())
		assert.Empty(t, l.clients)
	})
}

func TestRedisLimiter(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	l := NewRedisLimiter(rdb, "quotes", 2, time.Minute)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("quotes:1.2.3.4"))

	mr.FastForward(time.Minute + time.Second)
	ok, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("counter without a ttl gets one", func(t *testing.T) {
		require.NoError(t, mr.Set("quotes:5.6.7.8", "7"))
		ok, err := l.Allow(ctx, "5.6.7.8")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, time.Minute, mr.TTL("quotes:5.6.7.8"))

		mr.FastForward(time.Minute + time.Second)
		ok, err = l.Allow(ctx, "5.6.7.8")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("store down", func(t *testing.T) {
		mr.Close()
		_, err := l.Allow(ctx, "1.2.3.4")
		assert.Error(t, err)
	})
}
