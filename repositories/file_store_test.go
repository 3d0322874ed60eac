package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "carts.json"))

	_, err := store.Get(ctx, "foodstore_cart:1")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, store.Set(ctx, "foodstore_cart:1", `[{"quantity":2}]`))

	value, err := store.Get(ctx, "foodstore_cart:1")
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":2}]`, value)

	require.NoError(t, store.Delete(ctx, "foodstore_cart:1"))
	_, err = store.Get(ctx, "foodstore_cart:1")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestFileStoreDeleteMissingKeyIsNoop(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "carts.json"))
	assert.NoError(t, store.Delete(context.Background(), "nope"))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "carts.json")

	first := NewFileStore(path)
	require.NoError(t, first.Set(ctx, "foodstore_cart:1", "persisted"))

	second := NewFileStore(path)
	value, err := second.Get(ctx, "foodstore_cart:1")
	require.NoError(t, err)
	assert.Equal(t, "persisted", value)
}

func TestFileStoreKeepsIndependentSlots(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "carts.json"))

	require.NoError(t, store.Set(ctx, "foodstore_cart:1", "one"))
	require.NoError(t, store.Set(ctx, "foodstore_cart:2", "two"))
	require.NoError(t, store.Delete(ctx, "foodstore_cart:1"))

	value, err := store.Get(ctx, "foodstore_cart:2")
	require.NoError(t, err)
	assert.Equal(t, "two", value)
}

func TestFileStoreCorruptFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "carts.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	store := NewFileStore(path)
	_, err := store.Get(ctx, "foodstore_cart:1")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	// A write replaces the corrupt file with a valid one.
	require.NoError(t, store.Set(ctx, "foodstore_cart:1", "fresh"))
	value, err := store.Get(ctx, "foodstore_cart:1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestFileStoreCreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data", "carts.json")

	store := NewFileStore(path)
	require.NoError(t, store.Set(ctx, "k", "v"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
