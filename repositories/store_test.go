package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// SetupTestStore initializes a temporary in-memory Badger instance.
func SetupTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBadgerStore(db, slog.Default())
}

func TestBadgerStore_GetSetDelete(t *testing.T) {
	req := require.New(t)
	store := SetupTestStore(t)

	_, found, err := store.Get("project-area:ai")
	req.NoError(err)
	req.False(found)

	req.NoError(store.Set("project-area:ai", []byte(`{"id":"ai"}`)))

	value, found, err := store.Get("project-area:ai")
	req.NoError(err)
	req.True(found)
	req.JSONEq(`{"id":"ai"}`, string(value))

	req.NoError(store.Delete("project-area:ai"))
	_, found, err = store.Get("project-area:ai")
	req.NoError(err)
	req.False(found)
}

func TestBadgerStore_DeleteMissingKeySucceeds(t *testing.T) {
	store := SetupTestStore(t)
	require.NoError(t, store.Delete("subpoint:ai:404"))
}

func TestBadgerStore_ScanByPrefix(t *testing.T) {
	req := require.New(t)
	store := SetupTestStore(t)

	req.NoError(store.Set("subpoint:ai:1", []byte(`{}`)))
	req.NoError(store.Set("subpoint:ai:2", []byte(`{}`)))
	req.NoError(store.Set("subpoint:interfaz:3", []byte(`{}`)))
	req.NoError(store.Set("comment:ai:4", []byte(`{}`)))

	entries, err := store.ScanByPrefix("subpoint:ai:")
	req.NoError(err)
	req.Len(entries, 2)

	entries, err = store.ScanByPrefix("subpoint:")
	req.NoError(err)
	req.Len(entries, 3)

	entries, err = store.ScanByPrefix("user:")
	req.NoError(err)
	req.Empty(entries)
}
