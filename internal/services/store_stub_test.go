package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baleight/AmministrazioneCondomini/internal/storage"
	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// requireAppErrorMessage unwraps the AppError and checks its public
// message; Error() reports the wrapped sentinel instead.
func requireAppErrorMessage(t *testing.T, err error, substr string) {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Contains(t, appErr.Message, substr)
}

// stubStore is an in-memory storage.Store so service tests run against
// real repositories without sqlite or network.
type stubStore struct {
	tables map[string][]storage.Record
}

func newStubStore() *stubStore {
	return &stubStore{tables: map[string][]storage.Record{}}
}

func (m *stubStore) Select(_ context.Context, table string) ([]storage.Record, error) {
	return m.tables[table], nil
}

func (m *stubStore) Insert(_ context.Context, table string, rec storage.Record) (storage.Record, error) {
	created := make(storage.Record, len(rec)+1)
	for k, v := range rec {
		if k == "id" {
			continue
		}
		created[k] = v
	}
	created["id"] = storage.NextID(m.tables[table])
	m.tables[table] = append(m.tables[table], created)
	return created, nil
}

func (m *stubStore) Update(_ context.Context, table string, id int, fields storage.Record) (storage.Record, error) {
	for _, row := range m.tables[table] {
		if rowID, ok := storage.RecordID(row); ok && rowID == id {
			for k, v := range fields {
				if k != "id" {
					row[k] = v
				}
			}
			return row, nil
		}
	}
	return nil, fmt.Errorf("%w: %s id %d", storage.ErrNotFound, table, id)
}

func (m *stubStore) Delete(_ context.Context, table string, id int) error {
	rows := m.tables[table]
	kept := rows[:0]
	for _, row := range rows {
		if rowID, ok := storage.RecordID(row); ok && rowID == id {
			continue
		}
		kept = append(kept, row)
	}
	m.tables[table] = kept
	return nil
}
