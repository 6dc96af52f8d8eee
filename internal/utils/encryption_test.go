package utils

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestSaltedRoundTrip(t *testing.T) {
	passphrase := []byte("kondo-manager-secure-key-2025")
	plaintext := "RSSMRA80A01F205X"

	ciphertext, err := EncryptSalted(passphrase, plaintext)
	if err != nil {
		t.Fatalf("EncryptSalted returned error: %v", err)
	}
	if !strings.HasPrefix(mustDecode(t, ciphertext), "Salted__") {
		t.Fatalf("Expected OpenSSL 'Salted__' envelope, got %q", ciphertext[:16])
	}

	decrypted, err := DecryptSalted(passphrase, ciphertext)
	if err != nil {
		t.Fatalf("DecryptSalted returned error: %v", err)
	}
	if decrypted != plaintext {
		t.Fatalf("Expected '%s', got '%s'", plaintext, decrypted)
	}
}

func TestSaltedFreshSaltPerCall(t *testing.T) {
	passphrase := []byte("somepass")
	a, err := EncryptSalted(passphrase, "same input")
	if err != nil {
		t.Fatalf("EncryptSalted returned error: %v", err)
	}
	b, err := EncryptSalted(passphrase, "same input")
	if err != nil {
		t.Fatalf("EncryptSalted returned error: %v", err)
	}
	if a == b {
		t.Fatal("Two encryptions of the same input produced identical ciphertexts")
	}
}

func TestSaltedEmptyPassphrase(t *testing.T) {
	if _, err := EncryptSalted(nil, "text"); err == nil {
		t.Fatal("Expected error for empty passphrase, got none")
	}
	if _, err := DecryptSalted(nil, "ciphertext"); err == nil {
		t.Fatal("Expected error for empty passphrase, got none")
	}
}

func TestSaltedEmptyText(t *testing.T) {
	passphrase := []byte("somepass")
	ciphertext, err := EncryptSalted(passphrase, "")
	if err != nil {
		t.Fatalf("EncryptSalted returned error on empty string: %v", err)
	}
	decrypted, err := DecryptSalted(passphrase, ciphertext)
	if err != nil {
		t.Fatalf("DecryptSalted returned error on empty string: %v", err)
	}
	if decrypted != "" {
		t.Fatalf("Expected empty string, got '%s'", decrypted)
	}
}

func TestSaltedPassphraseMismatch(t *testing.T) {
	ciphertext, err := EncryptSalted([]byte("pass1"), "Mismatch test")
	if err != nil {
		t.Fatalf("EncryptSalted returned error: %v", err)
	}
	// Wrong keys normally fail the padding check; on the rare accidental
	// pass the output is still garbage, never the original plaintext.
	if decrypted, err := DecryptSalted([]byte("pass2"), ciphertext); err == nil && decrypted == "Mismatch test" {
		t.Fatal("Decryption with mismatched passphrase recovered the plaintext")
	}
}

func TestSaltedInvalidBase64(t *testing.T) {
	if _, err := DecryptSalted([]byte("testing"), "!!!NOT-BASE64!!!"); err == nil {
		t.Fatal("Expected base64 decode error, got none")
	}
}

func TestSaltedMissingPrefix(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("NOSALTATALL"))
	if _, err := DecryptSalted([]byte("testing"), b64); err == nil {
		t.Fatal("Expected error for data missing 'Salted__' prefix, got none")
	}
}

func TestSaltedTruncatedCipher(t *testing.T) {
	envelope := append([]byte("Salted__"), make([]byte, 8)...)
	b64 := base64.StdEncoding.EncodeToString(envelope)
	if _, err := DecryptSalted([]byte("testing"), b64); err == nil {
		t.Fatal("Expected error for truncated ciphertext, got none")
	}
}

func TestSaltedCorruptedCipher(t *testing.T) {
	passphrase := []byte("testing")
	ciphertext, err := EncryptSalted(passphrase, "Some data")
	if err != nil {
		t.Fatalf("EncryptSalted returned error: %v", err)
	}
	if _, err := DecryptSalted(passphrase, ciphertext[:len(ciphertext)-4]); err == nil {
		t.Fatal("Expected error while decrypting corrupted ciphertext, got none")
	}
}

func mustDecode(t *testing.T, b64 string) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("ciphertext is not valid base64: %v", err)
	}
	return string(raw)
}
