package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	c := NewRedisCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}), time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	return c, srv
}

func TestRedisCache_Key(t *testing.T) {
	c, _ := newCache(t)

	key, err := c.Key(t.Context(), "average_vwap:-:-:")
	assert.NoError(t, err)
	assert.Equal(t, "stockquery:0:average_vwap:-:-:", key)

	assert.NoError(t, c.Invalidate(t.Context()))

	key, err = c.Key(t.Context(), "average_vwap:-:-:")
	assert.NoError(t, err)
	assert.Equal(t, "stockquery:1:average_vwap:-:-:", key)
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := newCache(t)

	var dst float64
	found, err := c.Get(t.Context(), "stockquery:0:average_close:2024-01-01:2024-12-31:X", &dst)

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_SetThenGet(t *testing.T) {
	c, srv := newCache(t)

	key, err := c.Key(t.Context(), "average_vwap:-:-:")
	assert.NoError(t, err)
	assert.NoError(t, c.Set(t.Context(), key, 115.3))

	var dst float64
	found, err := c.Get(t.Context(), key, &dst)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 115.3, dst)
	assert.Equal(t, time.Minute, srv.TTL(key))
}

func TestRedisCache_Invalidate(t *testing.T) {
	c, srv := newCache(t)

	old, err := c.Key(t.Context(), "k")
	assert.NoError(t, err)
	assert.NoError(t, c.Set(t.Context(), old, "old"))
	assert.NoError(t, c.Invalidate(t.Context()))

	current, err := c.Key(t.Context(), "k")
	assert.NoError(t, err)

	var dst string
	found, err := c.Get(t.Context(), current, &dst)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, c.Set(t.Context(), current, "new"))
	found, err = c.Get(t.Context(), current, &dst)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "new", dst)
	assert.True(t, srv.Exists("stockquery:1:k"))
}

func TestRedisCache_InvalidateBetweenGetAndSet(t *testing.T) {
	c, _ := newCache(t)

	key, err := c.Key(t.Context(), "average_close:-:-:X")
	assert.NoError(t, err)

	var dst float64
	found, err := c.Get(t.Context(), key, &dst)
	assert.NoError(t, err)
	assert.False(t, found)

	// an ingest finishes while the query is still reading the store
	assert.NoError(t, c.Invalidate(t.Context()))
	assert.NoError(t, c.Set(t.Context(), key, 10.0))

	next, err := c.Key(t.Context(), "average_close:-:-:X")
	assert.NoError(t, err)
	found, err = c.Get(t.Context(), next, &dst)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_CorruptValue(t *testing.T) {
	c, srv := newCache(t)
	assert.NoError(t, srv.Set("stockquery:0:k", "not json"))

	var dst float64
	found, err := c.Get(t.Context(), "stockquery:0:k", &dst)

	assert.False(t, found)
	assert.ErrorContains(t, err, "decode cached value error")
}

func TestRedisCache_ServerError(t *testing.T) {
	c, srv := newCache(t)
	assert.NoError(t, c.Set(t.Context(), "stockquery:0:k", 1))
	srv.SetError("ERR injected failure")

	_, err := c.Key(t.Context(), "k")
	assert.ErrorContains(t, err, "redis generation error")
	assert.ErrorContains(t, c.Set(t.Context(), "stockquery:0:k", 1), "redis set error")
	assert.ErrorContains(t, c.Invalidate(t.Context()), "redis incr error")
}
