package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
)

type swatch struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

func newSwatches(t *testing.T) (*store.Collection[swatch], *store.MemoryKV) {
	t.Helper()
	kv := store.NewMemoryKV()
	return store.NewCollection(kv, "swatches", func(s *swatch) string { return s.ID }, nil), kv
}

func TestCollection_SaveAllWritesEmptyArray(t *testing.T) {
	c, kv := newSwatches(t)

	require.NoError(t, c.SaveAll(context.Background(), nil))
	assert.Equal(t, "[]", string(kv.Snapshot()["swatches"]))
}

func TestCollection_AddThenFind(t *testing.T) {
	c, _ := newSwatches(t)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, swatch{ID: "a", Color: "red"}))
	require.NoError(t, c.Add(ctx, swatch{ID: "b", Color: "blue"}))

	got, err := c.Find(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "blue", got.Color)

	_, err = c.Find(ctx, "c")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCollection_UpdateFirstMatchOnly(t *testing.T) {
	c, _ := newSwatches(t)
	ctx := context.Background()

	require.NoError(t, c.SaveAll(ctx, []swatch{
		{ID: "a", Color: "red"},
		{ID: "a", Color: "green"},
	}))

	require.NoError(t, c.Update(ctx, "a", swatch{ID: "a", Color: "black"}))

	all, err := c.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []swatch{{ID: "a", Color: "black"}, {ID: "a", Color: "green"}}, all)
}

func TestCollection_NoopMutationsSkipWrite(t *testing.T) {
	c, kv := newSwatches(t)
	ctx := context.Background()
	require.NoError(t, c.Add(ctx, swatch{ID: "a", Color: "red"}))

	// Any write would fail; no-ops must not reach the backend.
	kv.FailWrites = func(string) error { return errDiskFull }

	assert.NoError(t, c.Update(ctx, "missing", swatch{ID: "missing"}))
	assert.NoError(t, c.Delete(ctx, "missing"))
}

func TestCollection_Contains(t *testing.T) {
	c, _ := newSwatches(t)
	entities := []swatch{{ID: "a"}, {ID: "b"}}

	assert.True(t, c.Contains(entities, "b"))
	assert.False(t, c.Contains(entities, "z"))
	assert.Equal(t, "swatches", c.Key())
}
