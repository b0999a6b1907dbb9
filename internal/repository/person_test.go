package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPersonStoreSeedsDefaults(t *testing.T) {
	store := NewMemoryPersonStore()
	ctx := context.Background()

	ids, err := store.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids)

	for _, id := range []int{1, 2, 3, 4, 5} {
		ok, err := store.Exists(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok, "id %d should exist", id)
	}

	ok, err := store.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryPersonStoreCustomSeed(t *testing.T) {
	store := NewMemoryPersonStore(7, 9)
	ctx := context.Background()

	ids, err := store.IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 9}, ids)
}

func TestMemoryPersonStoreDelete(t *testing.T) {
	store := NewMemoryPersonStore()
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, 3))

	ok, err := store.Exists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	err = store.Delete(ctx, 3)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}
