package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v"))
	val, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	c := NewMemoryCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v"))
	now = now.Add(30 * time.Second)
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("LEASEBUY_TEST_REDIS")
	if addr == "" {
		t.Skip("LEASEBUY_TEST_REDIS not set")
	}
	ctx := context.Background()
	c := NewRedisCache(addr, time.Minute)
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	key := "test-" + time.Now().Format("150405.000000")
	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, "payload"))
	val, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "payload", val)
}
