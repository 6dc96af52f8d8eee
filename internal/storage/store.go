package storage

import (
	"context"
	"encoding/json"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// Record is the flat field-map a collection row is made of on the wire.
// The sheet backend exchanges exactly this shape; typed access lives in
// the repositories layer.
type Record = map[string]any

// Canonical failure categories. Aliased from utils so controllers can
// errors.Is against a single set regardless of the active backend.
var (
	ErrNotFound           = utils.ErrNotFound
	ErrBackendUnreachable = utils.ErrBackendUnreachable
	ErrMalformedResponse  = utils.ErrMalformedResponse
)

// Collection names. The sheet backend uses them as tab names, the local
// backend as key suffixes.
const (
	TableCondomini     = "condomini"
	TableAnagrafiche   = "anagrafiche"
	TableImmobili      = "immobili"
	TableSegnalazioni  = "segnalazioni"
	TableComunicazioni = "comunicazioni"
	TableDocumenti     = "documenti"
	TableEventi        = "eventi"
)

// Store is the uniform CRUD contract both backends implement. Exactly
// one backend is active per process; the choice is made at startup.
//
// Insert assigns the next integer id (max existing + 1, or 1 when the
// collection is empty) and returns the full record. Update merges the
// given fields onto the existing record and fails with ErrNotFound when
// the id is absent. Delete is idempotent: removing an absent id is not
// an error.
type Store interface {
	Select(ctx context.Context, table string) ([]Record, error)
	Insert(ctx context.Context, table string, rec Record) (Record, error)
	Update(ctx context.Context, table string, id int, fields Record) (Record, error)
	Delete(ctx context.Context, table string, id int) error
}

// RecordID extracts the integer id from a record, tolerating the
// numeric types a JSON decode can produce.
func RecordID(rec Record) (int, bool) {
	switch v := rec["id"].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// NextID computes the id Insert must assign for the given rows.
func NextID(rows []Record) int {
	max := 0
	for _, r := range rows {
		if id, ok := RecordID(r); ok && id > max {
			max = id
		}
	}
	return max + 1
}
