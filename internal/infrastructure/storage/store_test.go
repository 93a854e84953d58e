package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	t.Run("missing key returns nil without error", func(t *testing.T) {
		data, err := store.Get("absent")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("set then get returns the value", func(t *testing.T) {
		require.NoError(t, store.Set("greeting", []byte(`{"hello":"world"}`)))

		data, err := store.Get("greeting")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hello":"world"}`, string(data))
	})

	t.Run("set replaces the whole value", func(t *testing.T) {
		require.NoError(t, store.Set("greeting", []byte(`{"hello":"again"}`)))

		data, err := store.Get("greeting")
		require.NoError(t, err)
		assert.JSONEq(t, `{"hello":"again"}`, string(data))
	})

	t.Run("remove deletes the key", func(t *testing.T) {
		require.NoError(t, store.Remove("greeting"))

		data, err := store.Get("greeting")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("removing an absent key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Remove("greeting"))
	})
}

func TestStoreRejectsPathEscapes(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		_, err := store.Get(key)
		assert.Error(t, err, "key %q", key)
	}
}

func TestStoreNotifiesOnExternalChange(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	defer store.Close()

	changed := make(chan struct{}, 4)
	store.Subscribe("shared", func() { changed <- struct{}{} })

	// Simulate another process rewriting the key's file.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shared.json"), []byte(`{"v":1}`), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification for an external write")
	}
}

func TestStoreSuppressesOwnWrites(t *testing.T) {
	store := newTestStore(t)

	changed := make(chan struct{}, 4)
	store.Subscribe("own", func() { changed <- struct{}{} })

	require.NoError(t, store.Set("own", []byte(`{"v":1}`)))

	select {
	case <-changed:
		t.Fatal("did not expect a notification for the store's own write")
	case <-time.After(500 * time.Millisecond):
	}
}
