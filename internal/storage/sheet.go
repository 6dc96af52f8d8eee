package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// SheetStore talks to the Apps-Script web app fronting the spreadsheet.
// Wire contract, per operation:
//
//	GET  {endpoint}?action=select&table={name}           -> [ {...}, ... ]
//	POST {endpoint}?action=insert&table={name}           -> created record
//	POST {endpoint}?action=update&table={name}&id={id}   -> merged record
//	POST {endpoint}?action=delete&table={name}&id={id}   -> {}
//
// POST bodies carry {"data": {...}}. Any failure arrives as
// {"error": "..."}. The script assigns ids server-side on insert.
type SheetStore struct {
	baseURL string
	client  *http.Client
}

func NewSheetStore(baseURL string, client *http.Client) *SheetStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &SheetStore{baseURL: baseURL, client: client}
}

func (s *SheetStore) Select(ctx context.Context, table string) ([]Record, error) {
	body, err := s.call(ctx, http.MethodGet, s.endpoint("select", table, 0), nil)
	if err != nil {
		return nil, err
	}

	var rows []Record
	if err := decodeJSON(body, &rows); err != nil {
		// Error payloads are objects, not arrays; surface them as a
		// backend failure instead of a decode failure.
		if msg, ok := sheetError(body); ok {
			return nil, fmt.Errorf("%w: %s", ErrBackendUnreachable, msg)
		}
		return nil, fmt.Errorf("%w: select %s: %v", ErrMalformedResponse, table, err)
	}
	if rows == nil {
		rows = []Record{}
	}
	return rows, nil
}

func (s *SheetStore) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	return s.writeRecord(ctx, s.endpoint("insert", table, 0), rec)
}

func (s *SheetStore) Update(ctx context.Context, table string, id int, fields Record) (Record, error) {
	return s.writeRecord(ctx, s.endpoint("update", table, id), fields)
}

func (s *SheetStore) Delete(ctx context.Context, table string, id int) error {
	body, err := s.call(ctx, http.MethodPost, s.endpoint("delete", table, id), nil)
	if err != nil {
		return err
	}
	var resp map[string]any
	if err := decodeJSON(body, &resp); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrMalformedResponse, err)
	}
	if msg, ok := resp["error"].(string); ok && msg != "" {
		return fmt.Errorf("%w: %s", ErrBackendUnreachable, msg)
	}
	return nil
}

func (s *SheetStore) writeRecord(ctx context.Context, u string, rec Record) (Record, error) {
	payload, err := json.Marshal(map[string]any{"data": rec})
	if err != nil {
		return nil, err
	}
	body, err := s.call(ctx, http.MethodPost, u, payload)
	if err != nil {
		return nil, err
	}

	var out Record
	if err := decodeJSON(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if msg, ok := out["error"].(string); ok && msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrBackendUnreachable, msg)
	}
	return out, nil
}

func (s *SheetStore) endpoint(action, table string, id int) string {
	q := url.Values{}
	q.Set("action", action)
	q.Set("table", table)
	if id > 0 {
		q.Set("id", strconv.Itoa(id))
	}
	return s.baseURL + "?" + q.Encode()
}

// call performs the HTTP round trip, normalizing transport failures and
// non-2xx statuses into ErrBackendUnreachable.
func (s *SheetStore) call(ctx context.Context, method, u string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	// text/plain avoids the Apps-Script CORS preflight on POST.
	if payload != nil {
		req.Header.Set("Content-Type", "text/plain;charset=utf-8")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrBackendUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		utils.Logger.WithField("status", resp.StatusCode).Warn("Sheet backend returned non-2xx status")
		return nil, fmt.Errorf("%w: status %d", ErrBackendUnreachable, resp.StatusCode)
	}
	return body, nil
}

func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}

func sheetError(body []byte) (string, bool) {
	var obj map[string]any
	if err := decodeJSON(body, &obj); err != nil {
		return "", false
	}
	msg, ok := obj["error"].(string)
	return msg, ok && msg != ""
}
