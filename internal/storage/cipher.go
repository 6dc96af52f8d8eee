package storage

import (
	"context"
	"encoding/json"

	"github.com/baleight/AmministrazioneCondomini/internal/utils"
)

// Default allow-list of field names encrypted at rest. Covers the
// credential-like columns plus the codice fiscale, which doubles as the
// non-staff login secret.
var DefaultSensitiveFields = []string{
	"password_hash",
	"two_factor_secret",
	"remember_token",
	"password",
	"codice_fiscale",
}

// FieldCipher wraps a backend and transparently encrypts the sensitive
// fields on every write and decrypts them on every read. This is a
// confidentiality-against-casual-inspection measure, not a security
// boundary: the passphrase is shared by every reader of the sheet.
type FieldCipher struct {
	next       Store
	passphrase []byte
	sensitive  map[string]bool
}

// NewFieldCipher wraps next. Extra field names are merged into the
// default allow-list; "id" is never encrypted.
func NewFieldCipher(next Store, passphrase []byte, extraFields []string) *FieldCipher {
	sens := make(map[string]bool, len(DefaultSensitiveFields)+len(extraFields))
	for _, f := range DefaultSensitiveFields {
		sens[f] = true
	}
	for _, f := range extraFields {
		if f != "" && f != "id" {
			sens[f] = true
		}
	}
	return &FieldCipher{next: next, passphrase: passphrase, sensitive: sens}
}

func (c *FieldCipher) Select(ctx context.Context, table string) ([]Record, error) {
	rows, err := c.next.Select(ctx, table)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = c.decryptRecord(row)
	}
	return out, nil
}

func (c *FieldCipher) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	created, err := c.next.Insert(ctx, table, c.encryptRecord(rec))
	if err != nil {
		return nil, err
	}
	return c.decryptRecord(created), nil
}

func (c *FieldCipher) Update(ctx context.Context, table string, id int, fields Record) (Record, error) {
	updated, err := c.next.Update(ctx, table, id, c.encryptRecord(fields))
	if err != nil {
		return nil, err
	}
	return c.decryptRecord(updated), nil
}

func (c *FieldCipher) Delete(ctx context.Context, table string, id int) error {
	return c.next.Delete(ctx, table, id)
}

func (c *FieldCipher) encryptRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if k != "id" && c.sensitive[k] {
			out[k] = c.EncryptValue(v)
		} else {
			out[k] = v
		}
	}
	return out
}

func (c *FieldCipher) decryptRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if k != "id" && c.sensitive[k] {
			out[k] = c.DecryptValue(v)
		} else {
			out[k] = v
		}
	}
	return out
}

// EncryptValue JSON-stringifies the value so numbers and strings share
// one representation, then seals it. A nil value encrypts to "".
func (c *FieldCipher) EncryptValue(v any) string {
	if v == nil {
		return ""
	}
	buf, err := json.Marshal(v)
	if err != nil {
		utils.Logger.WithError(err).Error("Field encryption failed, storing empty value")
		return ""
	}
	enc, err := utils.EncryptSalted(c.passphrase, string(buf))
	if err != nil {
		utils.Logger.WithError(err).Error("Field encryption failed, storing empty value")
		return ""
	}
	return enc
}

// DecryptValue reverses EncryptValue. Values that fail to decrypt, or
// decrypt to nothing, are returned unchanged: collections written
// before encryption was enabled hold plaintext that must keep working.
func (c *FieldCipher) DecryptValue(v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return v
	}
	plain, err := utils.DecryptSalted(c.passphrase, s)
	if err != nil || plain == "" {
		return v
	}
	var decoded any
	if jsonErr := json.Unmarshal([]byte(plain), &decoded); jsonErr == nil {
		return decoded
	}
	// Decryption succeeded but the payload predates JSON wrapping.
	return plain
}
