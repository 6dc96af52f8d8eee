package utils

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Passphrase-based AES-256-CBC in the OpenSSL "Salted__" envelope:
// Base64("Salted__" + 8-byte salt + ciphertext), key and IV derived with
// PBKDF2 (SHA256, 10,000 iterations, 48 bytes => 32 key + 16 IV).
//
// The stored-field cipher uses this envelope so values written by earlier
// deployments of the sheet remain decryptable with the same passphrase:
//   echo "CIPHERTEXT" | base64 -d > cipher.bin
//   openssl enc -aes-256-cbc -d -salt -pbkdf2 -pass pass:"..." -in cipher.bin

// EncryptSalted encrypts text under the passphrase.
func EncryptSalted(passphrase []byte, text string) (string, error) {
	if len(passphrase) == 0 {
		return "", errors.New("passphrase cannot be empty")
	}

	plaintext := []byte(text)

	header := []byte("Salted__")
	salt := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	salted := append(header, salt...)

	derived := pbkdf2.Key(passphrase, salt, 10000, 48, sha256.New)
	key := derived[:32]
	iv := derived[32:]

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	blockSize := block.BlockSize()
	paddingLen := blockSize - (len(plaintext) % blockSize)
	padText := bytes.Repeat([]byte{byte(paddingLen)}, paddingLen)
	plaintext = append(plaintext, padText...)

	ciphertext := make([]byte, len(plaintext))
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext, plaintext)

	full := append(salted, ciphertext...)

	return base64.StdEncoding.EncodeToString(full), nil
}

// DecryptSalted decrypts data produced by EncryptSalted (or by
// `openssl enc -aes-256-cbc -salt -pbkdf2 -base64`).
func DecryptSalted(passphrase []byte, b64Cipher string) (string, error) {
	if len(passphrase) == 0 {
		return "", errors.New("passphrase cannot be empty")
	}
	if b64Cipher == "" {
		return "", errors.New("ciphertext cannot be empty")
	}

	raw, err := base64.StdEncoding.DecodeString(b64Cipher)
	if err != nil {
		return "", err
	}

	// Must have at least "Salted__" (8 bytes) + 8-byte salt = 16
	if len(raw) < 16 {
		return "", errors.New("invalid data: missing 'Salted__' header or salt")
	}
	if string(raw[:8]) != "Salted__" {
		return "", errors.New("data does not begin with 'Salted__'")
	}

	salt := raw[8:16]
	ciphertext := raw[16:]
	if len(ciphertext) == 0 {
		return "", errors.New("no ciphertext data")
	}

	derived := pbkdf2.Key(passphrase, salt, 10000, 48, sha256.New)
	key := derived[:32]
	iv := derived[32:]

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return "", errors.New("ciphertext not multiple of block size")
	}
	mode := cipher.NewCBCDecrypter(block, iv)

	plaintext := make([]byte, len(ciphertext))
	mode.CryptBlocks(plaintext, ciphertext)

	paddingLen := int(plaintext[len(plaintext)-1])
	if paddingLen < 1 || paddingLen > block.BlockSize() {
		return "", errors.New("invalid padding length")
	}
	plaintext = plaintext[:len(plaintext)-paddingLen]

	return string(plaintext), nil
}
