package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, "restaurants", "res-1", map[string]any{"name": "Sakura Diner"})
	require.NoError(t, err)
	assert.Equal(t, "res-1", created.ID)

	doc, err := store.Get(ctx, "restaurants", "res-1")
	require.NoError(t, err)
	assert.Equal(t, "Sakura Diner", doc.Fields["name"])

	_, err = store.Create(ctx, "restaurants", "res-1", map[string]any{"name": "Other"})
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, store.Delete(ctx, "restaurants", "res-1"))
	assert.ErrorIs(t, store.Delete(ctx, "restaurants", "res-1"), ErrNotFound)
	_, err = store.Get(ctx, "restaurants", "res-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GeneratesUniqueIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Create(ctx, "notifications", "", map[string]any{"message": "a"})
	require.NoError(t, err)
	second, err := store.Create(ctx, "notifications", "", map[string]any{"message": "b"})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMemoryStore_Update(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "user_submissions", "sub-1", map[string]any{"status": "pending", "name": "Sakura"})
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, "user_submissions", "sub-1", map[string]any{"status": "contacted"}))
	doc, err := store.Get(ctx, "user_submissions", "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "contacted", doc.Fields["status"])
	assert.Equal(t, "Sakura", doc.Fields["name"])

	assert.ErrorIs(t, store.Update(ctx, "user_submissions", "missing", map[string]any{"status": "contacted"}), ErrNotFound)
}

func TestMemoryStore_ListNewestFirstWithFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, "restaurants", id, map[string]any{"status": "live", "name": id})
		require.NoError(t, err)
	}
	_, err := store.Create(ctx, "restaurants", "d", map[string]any{"status": "removed"})
	require.NoError(t, err)

	documents, err := store.List(ctx, "restaurants", map[string]any{"status": "live"}, 2)
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "c", documents[0].ID)
	assert.Equal(t, "b", documents[1].ID)
}

func TestMemoryStore_Count(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, status := range []string{"live", "live", "removed"} {
		_, err := store.Create(ctx, "restaurants", NewID(), map[string]any{"status": status})
		require.NoError(t, err)
	}

	total, err := store.Count(ctx, "restaurants", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	live, err := store.Count(ctx, "restaurants", map[string]any{"status": "live"})
	require.NoError(t, err)
	assert.Equal(t, 2, live)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "restaurants", "res-1", map[string]any{"name": "Sakura"})
	require.NoError(t, err)

	doc, err := store.Get(ctx, "restaurants", "res-1")
	require.NoError(t, err)
	doc.Fields["name"] = "Mutated"

	fresh, err := store.Get(ctx, "restaurants", "res-1")
	require.NoError(t, err)
	assert.Equal(t, "Sakura", fresh.Fields["name"])
}
