package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "kondo_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLocalStoreEmptyCollection(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	rows, err := store.Select(ctx, TableCondomini)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestLocalStoreInsertAssignsSequentialIDs(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	first, err := store.Insert(ctx, TableCondomini, Record{"nome": "Condominio A"})
	require.NoError(t, err)
	id, ok := RecordID(first)
	require.True(t, ok)
	require.Equal(t, 1, id)

	second, err := store.Insert(ctx, TableCondomini, Record{"nome": "Condominio B"})
	require.NoError(t, err)
	id, ok = RecordID(second)
	require.True(t, ok)
	require.Equal(t, 2, id)
}

func TestLocalStoreInsertIgnoresClientID(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	created, err := store.Insert(ctx, TableAnagrafiche, Record{"id": 99, "nome": "Mario"})
	require.NoError(t, err)
	id, ok := RecordID(created)
	require.True(t, ok)
	require.Equal(t, 1, id)
}

func TestLocalStoreIDsNotReusedAfterDelete(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, TableCondomini, Record{"nome": "A"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, TableCondomini, Record{"nome": "B"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, TableCondomini, 1))

	rows, err := store.Select(ctx, TableCondomini)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id, _ := RecordID(rows[0])
	require.Equal(t, 2, id)

	third, err := store.Insert(ctx, TableCondomini, Record{"nome": "C"})
	require.NoError(t, err)
	id, _ = RecordID(third)
	require.Equal(t, 3, id)
}

func TestLocalStoreUpdateMergesFields(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, TableCondomini, Record{"nome": "A", "city": "Milano"})
	require.NoError(t, err)

	updated, err := store.Update(ctx, TableCondomini, 1, Record{"city": "Torino"})
	require.NoError(t, err)
	require.Equal(t, "Torino", updated["city"])
	require.Equal(t, "A", updated["nome"])

	rows, err := store.Select(ctx, TableCondomini)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Torino", rows[0]["city"])
}

func TestLocalStoreUpdateCannotChangeID(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, TableCondomini, Record{"nome": "A"})
	require.NoError(t, err)

	updated, err := store.Update(ctx, TableCondomini, 1, Record{"id": 42, "nome": "B"})
	require.NoError(t, err)
	id, _ := RecordID(updated)
	require.Equal(t, 1, id)
	require.Equal(t, "B", updated["nome"])
}

func TestLocalStoreUpdateMissingID(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, TableCondomini, 7, Record{"nome": "ghost"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStoreDeleteAbsentIDSucceeds(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, TableCondomini, 123))
}

func TestLocalStoreCollectionsAreIsolated(t *testing.T) {
	store := newTestLocalStore(t)
	ctx := context.Background()

	_, err := store.Insert(ctx, TableCondomini, Record{"nome": "A"})
	require.NoError(t, err)
	_, err = store.Insert(ctx, TableAnagrafiche, Record{"nome": "Mario"})
	require.NoError(t, err)

	// Each collection keeps its own id sequence.
	second, err := store.Insert(ctx, TableAnagrafiche, Record{"nome": "Giulia"})
	require.NoError(t, err)
	id, _ := RecordID(second)
	require.Equal(t, 2, id)

	condomini, err := store.Select(ctx, TableCondomini)
	require.NoError(t, err)
	require.Len(t, condomini, 1)
}
