package services

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/baleight/AmministrazioneCondomini/internal/storage"
)

// CSV dialect used by the import/export endpoints: the header row is a
// plain comma join, every data field is double-quote wrapped with
// embedded quotes doubled. The reader side accepts quoted commas and
// doubled-quote escapes and coerces numeric cells, but only when the
// numeric form reproduces the cell text exactly, so values like
// "+390212345678" or "01234567890" keep their sign and leading zeros.

// RecordsToCSV serializes rows in the given column order. Missing
// fields render as empty strings.
func RecordsToCSV(columns []string, rows []storage.Record) string {
	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))

	for _, row := range rows {
		b.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(formatCSVValue(row[col]), `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

// CSVToRecords parses CSV text into field-maps keyed by the header
// row. Rows whose field count does not match the header are dropped;
// cells whose numeric form matches the cell text become numbers.
func CSVToRecords(text string) ([]storage.Record, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	r.FieldsPerRecord = -1

	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(lines) < 2 {
		return []storage.Record{}, nil
	}

	headers := make([]string, len(lines[0]))
	for i, h := range lines[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]storage.Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if len(line) != len(headers) {
			continue
		}
		rec := storage.Record{}
		for i, header := range headers {
			rec[header] = coerceCSVCell(strings.TrimSpace(line[i]))
		}
		out = append(out, rec)
	}
	return out, nil
}

func formatCSVValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func coerceCSVCell(val string) any {
	if val == "" {
		return ""
	}
	n, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return val
	}
	// Formatting back must reproduce the cell text, otherwise the
	// coercion would lose a sign, a leading zero or exponent notation.
	if strconv.FormatFloat(n, 'f', -1, 64) != val {
		return val
	}
	return n
}

// structsToRecords flattens typed rows through their json tags for
// export, and recordToStruct rebuilds a typed row from an imported
// field-map (the id, if present, is discarded so imports always create
// new records).
func structsToRecords[T any](items []T) ([]storage.Record, error) {
	out := make([]storage.Record, 0, len(items))
	for _, item := range items {
		buf, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		var rec storage.Record
		if err := json.Unmarshal(buf, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func recordToStruct[T any](rec storage.Record) (T, error) {
	var out T
	delete(rec, "id")
	for {
		buf, err := json.Marshal(rec)
		if err != nil {
			return out, err
		}
		err = json.Unmarshal(buf, &out)
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return out, err
		}
		// A coerced number landed in a string-typed field, as with a
		// purely numeric codice fiscale. Put the text form back and
		// decode again; the coercion guarantees it matches the cell.
		v, ok := rec[typeErr.Field]
		if !ok {
			return out, err
		}
		if _, isStr := v.(string); isStr {
			return out, err
		}
		rec[typeErr.Field] = formatCSVValue(v)
	}
}

// hasRequiredFields reports whether every named field is present and
// non-empty in the record.
func hasRequiredFields(rec storage.Record, required []string) bool {
	for _, f := range required {
		v, ok := rec[f]
		if !ok {
			return false
		}
		if s, isStr := v.(string); isStr && s == "" {
			return false
		}
	}
	return true
}
