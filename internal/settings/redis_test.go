package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "settings"), mr
}

func TestRedisStore_GetFound(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.HSet("settings", InstagramPostCountKey, "12")

	got, err := store.Get(context.Background(), InstagramPostCountKey)
	require.NoError(t, err)
	assert.Equal(t, "12", *got.Value)
}

func TestRedisStore_GetNotFound(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Get(context.Background(), MenuShowPriceKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_WrongTypeIsStoreError(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("settings", "not-a-hash"))

	_, err := store.Get(context.Background(), MenuShowPriceKey)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestRedisStore_ConnectionErrorIsStoreError(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), MenuShowPriceKey)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Error(t, store.Ping(context.Background()))
}

func TestRedisStore_UpsertAndList(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, MenuShowPriceKey, "true"))
	require.NoError(t, store.Upsert(ctx, InstagramPostCountKey, "5"))
	require.NoError(t, store.Upsert(ctx, InstagramPostCountKey, "9"))

	assert.Equal(t, "9", mr.HGet("settings", InstagramPostCountKey))

	rows, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, InstagramPostCountKey, rows[0].Key)
	assert.Equal(t, "9", *rows[0].Value)
	assert.Equal(t, MenuShowPriceKey, rows[1].Key)
}
