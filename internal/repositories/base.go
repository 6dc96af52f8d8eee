package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

/* ───────────── record codec ───────────── */

// toRecord flattens a typed entity into the store's field-map shape via
// its json tags.
func toRecord(v any) (storage.Record, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(buf))
	dec.UseNumber()
	var rec storage.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func fromRecord[T any](rec storage.Record) (T, error) {
	var out T
	buf, err := json.Marshal(rec)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(buf, &out); err != nil {
		return out, fmt.Errorf("%w: %v", storage.ErrMalformedResponse, err)
	}
	return out, nil
}

/* ───────────── generic base ───────────── */

// baseRepo implements the uniform CRUD surface each entity repository
// exposes. Lookups scan the full collection; that is the store's native
// access pattern (one blob per collection, no indexes).
type baseRepo[T any] struct {
	store storage.Store
	table string
}

func (r *baseRepo[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.store.Select(ctx, r.table)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := fromRecord[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// GetByID returns (nil, nil) when the id is absent so callers can
// distinguish "missing" from a backend failure.
func (r *baseRepo[T]) GetByID(ctx context.Context, id int) (*T, error) {
	rows, err := r.store.Select(ctx, r.table)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if rowID, ok := storage.RecordID(row); ok && rowID == id {
			v, err := fromRecord[T](row)
			if err != nil {
				return nil, err
			}
			return &v, nil
		}
	}
	return nil, nil
}

func (r *baseRepo[T]) Create(ctx context.Context, v *T) (*T, error) {
	rec, err := toRecord(v)
	if err != nil {
		return nil, err
	}
	delete(rec, "id")
	created, err := r.store.Insert(ctx, r.table, rec)
	if err != nil {
		return nil, err
	}
	out, err := fromRecord[T](created)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *baseRepo[T]) patch(ctx context.Context, id int, fields storage.Record) (*T, error) {
	updated, err := r.store.Update(ctx, r.table, id, fields)
	if err != nil {
		return nil, err
	}
	out, err := fromRecord[T](updated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *baseRepo[T]) Delete(ctx context.Context, id int) error {
	return r.store.Delete(ctx, r.table, id)
}
