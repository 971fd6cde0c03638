package tokenstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "opaque-token"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	require.NoError(t, store.Save(ctx, "replacement"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "replacement", token)
}

func TestMemoryGetWithoutSave(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, ErrNoToken)
}

func TestMemoryClear(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "opaque-token"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	// Clearing an already-empty store is fine.
	require.NoError(t, store.Clear(ctx))
}

func TestMemoryRejectsEmptyToken(t *testing.T) {
	store := NewMemory()
	require.ErrorIs(t, store.Save(context.Background(), ""), ErrEmptyToken)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, "t")
			_, _ = store.Get(ctx)
			_ = store.Clear(ctx)
		}()
	}
	wg.Wait()
}
