package tokenstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kit/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr
}

func newRedisStore(t *testing.T) *Redis {
	mr := setupMiniRedis(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, log.NewNopLogger())
}

func TestRedisRoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "opaque-token"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)
}

func TestRedisGetWithoutSave(t *testing.T) {
	store := newRedisStore(t)

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, ErrNoToken)
}

func TestRedisClear(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "opaque-token"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Clear(ctx))
}

func TestRedisRejectsEmptyToken(t *testing.T) {
	store := newRedisStore(t)
	require.ErrorIs(t, store.Save(context.Background(), ""), ErrEmptyToken)
}
