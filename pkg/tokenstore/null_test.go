package tokenstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullStoreNeverHoldsAToken(t *testing.T) {
	store := NewNull()
	ctx := context.Background()

	_, err := store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Save(ctx, "discarded"))

	_, err = store.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Clear(ctx))
}

func TestNullStoreRejectsEmptyToken(t *testing.T) {
	store := NewNull()
	require.ErrorIs(t, store.Save(context.Background(), ""), ErrEmptyToken)
}
