package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	t.Run("Miss", func(t *testing.T) {
		_, ok, err := c.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
		got, ok, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("v"), got)

		require.NoError(t, c.Delete(ctx, "k"))
		_, ok, _ = c.Get(ctx, "k")
		assert.False(t, ok)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "ttl", []byte("v"), time.Minute))
		_, ok, _ := c.Get(ctx, "ttl")
		assert.True(t, ok)

		now = now.Add(time.Minute)
		_, ok, _ = c.Get(ctx, "ttl")
		assert.False(t, ok)
	})

	t.Run("CopiesValues", func(t *testing.T) {
		buf := []byte("abc")
		require.NoError(t, c.Set(ctx, "copy", buf, 0))
		buf[0] = 'x'
		got, _, _ := c.Get(ctx, "copy")
		assert.Equal(t, []byte("abc"), got)
	})
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()

	rdb, err := NewRedisClient(ctx, url)
	require.NoError(t, err)
	defer rdb.Close()
	c := NewRedisCache(rdb)

	key := "feedbackservice:test:" + time.Now().Format(time.RFC3339Nano)
	require.NoError(t, c.Set(ctx, key, []byte("v"), time.Minute))
	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, c.Delete(ctx, key))
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
