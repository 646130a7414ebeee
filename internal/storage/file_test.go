package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) *FileStorage {
		t.Helper()
		store, err := NewFileStorage(afero.NewMemMapFs(), "/data", "storefront")
		require.NoError(t, err)
		return store
	}

	t.Run("missing key is absent, not an error", func(t *testing.T) {
		store := newStore(t)

		_, ok, err := store.Get(ctx, "cart")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "cart", []byte(`[{"product_id":"1"}]`)))

		data, ok, err := store.Get(ctx, "cart")
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `[{"product_id":"1"}]`, string(data))
	})

	t.Run("keys are namespaced independently", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "cart", []byte("a")))
		require.NoError(t, store.Set(ctx, "session", []byte("b")))

		data, ok, err := store.Get(ctx, "session")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("b"), data)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "cart", []byte("a")))
		require.NoError(t, store.Delete(ctx, "cart"))

		_, ok, err := store.Get(ctx, "cart")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleting a missing key is a no-op", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Delete(ctx, "nothing"))
	})
}
