package comparison

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "[1,2]"))
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[1,2]", value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "comparison:items:a", "[1]"))
	require.NoError(t, store.Set(ctx, "comparison:items:b", "[2]"))

	a, _, _ := store.Get(ctx, "comparison:items:a")
	b, _, _ := store.Get(ctx, "comparison:items:b")
	assert.Equal(t, "[1]", a)
	assert.Equal(t, "[2]", b)
}
