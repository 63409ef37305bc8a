package comparison

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_AddRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), "comparison:items:test", nil)
	m.Restore(ctx)

	for id := 1; id <= Capacity; id++ {
		assert.True(t, m.Add(ctx, id))
	}

	// Fifth product bounces off; the original four stay untouched.
	assert.False(t, m.Add(ctx, 5))
	assert.Equal(t, []int{1, 2, 3, 4}, m.IDs())
}

func TestManager_AddDeduplicates(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), "comparison:items:test", nil)
	m.Restore(ctx)

	assert.True(t, m.Add(ctx, 7))
	assert.False(t, m.Add(ctx, 7))
	assert.Equal(t, []int{7}, m.IDs())
}

func TestManager_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), "comparison:items:test", nil)
	m.Restore(ctx)

	m.Add(ctx, 1)
	m.Add(ctx, 2)
	m.Add(ctx, 3)

	assert.True(t, m.Remove(ctx, 2))
	assert.False(t, m.Remove(ctx, 2))
	assert.Equal(t, []int{1, 3}, m.IDs())

	m.Clear(ctx)
	assert.Empty(t, m.IDs())
}

// Clearing persists the empty selection; a reload must not bring the seed
// back.
func TestManager_ClearSurvivesRestoreWithSeed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := NewManager(store, "comparison:items:test", []int{1, 2})
	m.Restore(ctx)
	assert.Equal(t, []int{1, 2}, m.IDs())

	m.Clear(ctx)

	blob, ok, err := store.Get(ctx, "comparison:items:test")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[]", blob)

	reloaded := NewManager(store, "comparison:items:test", []int{1, 2})
	reloaded.Restore(ctx)
	assert.Empty(t, reloaded.IDs())
}

func TestManager_WriteThroughPersistence(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := NewManager(store, "comparison:items:test", nil)
	m.Restore(ctx)
	m.Add(ctx, 3)
	m.Add(ctx, 1)

	// Every mutation lands in the store immediately.
	blob, ok, err := store.Get(ctx, "comparison:items:test")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[3,1]", blob)

	// A fresh manager over the same store restores order verbatim.
	reloaded := NewManager(store, "comparison:items:test", nil)
	reloaded.Restore(ctx)
	assert.Equal(t, []int{3, 1}, reloaded.IDs())
}

func TestManager_RestoreCorruptBlobFallsBack(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "comparison:items:test", "{not json"))

	t.Run("empty default", func(t *testing.T) {
		m := NewManager(store, "comparison:items:test", nil)
		m.Restore(ctx)
		assert.Empty(t, m.IDs())
	})

	t.Run("seeded default", func(t *testing.T) {
		m := NewManager(store, "comparison:items:test", []int{1, 2})
		m.Restore(ctx)
		assert.Equal(t, []int{1, 2}, m.IDs())
	})
}

func TestManager_RestoreClampsInvariants(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Duplicates and over-capacity entries from an older writer.
	require.NoError(t, store.Set(ctx, "comparison:items:test", "[1,1,2,3,4,5,6]"))

	m := NewManager(store, "comparison:items:test", nil)
	m.Restore(ctx)
	assert.Equal(t, []int{1, 2, 3, 4}, m.IDs())
}

func TestManager_RestoreMissingKeyUsesSeed(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), "comparison:items:test", []int{9})
	m.Restore(ctx)
	assert.Equal(t, []int{9}, m.IDs())
}
