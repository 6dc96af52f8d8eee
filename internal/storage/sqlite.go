package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

const keyPrefix = "kondo_"

// LocalStore persists each collection as one serialized JSON array
// under a namespaced key in a single SQLite table. It mirrors the
// sheet backend's semantics without any network dependency and is the
// default when no sheet endpoint is configured.
type LocalStore struct {
	db *sql.DB

	// Collection blobs are read-modify-write; one writer at a time.
	mu sync.Mutex
}

func NewLocalStore(path string) (*LocalStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			collection TEXT PRIMARY KEY,
			payload    TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init local store: %w", err)
	}
	return &LocalStore{db: db}, nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) Select(ctx context.Context, table string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, table)
}

func (s *LocalStore) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, table)
	if err != nil {
		return nil, err
	}

	created := make(Record, len(rec)+1)
	for k, v := range rec {
		if k == "id" {
			continue
		}
		created[k] = v
	}
	created["id"] = NextID(rows)

	if err := s.save(ctx, table, append(rows, created)); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *LocalStore) Update(ctx context.Context, table string, id int, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, table)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowID, ok := RecordID(row)
		if !ok || rowID != id {
			continue
		}
		for k, v := range fields {
			if k == "id" {
				continue
			}
			row[k] = v
		}
		rows[i] = row
		if err := s.save(ctx, table, rows); err != nil {
			return nil, err
		}
		return row, nil
	}
	return nil, fmt.Errorf("%w: %s id %d", ErrNotFound, table, id)
}

func (s *LocalStore) Delete(ctx context.Context, table string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, table)
	if err != nil {
		return err
	}

	kept := rows[:0]
	for _, row := range rows {
		if rowID, ok := RecordID(row); ok && rowID == id {
			continue
		}
		kept = append(kept, row)
	}
	// Absent ids delete successfully; both backends share that policy.
	return s.save(ctx, table, kept)
}

// load fetches a collection, seeding an empty array on first access.
func (s *LocalStore) load(ctx context.Context, table string) ([]Record, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM kv WHERE collection = ?`, keyPrefix+table,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		if err := s.save(ctx, table, nil); err != nil {
			return nil, err
		}
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	var rows []Record
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: collection %s: %v", ErrMalformedResponse, table, err)
	}
	if rows == nil {
		rows = []Record{}
	}
	return rows, nil
}

func (s *LocalStore) save(ctx context.Context, table string, rows []Record) error {
	if rows == nil {
		rows = []Record{}
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", table, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (collection, payload) VALUES (?, ?)
		ON CONFLICT(collection) DO UPDATE SET payload = excluded.payload
	`, keyPrefix+table, string(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	return nil
}
