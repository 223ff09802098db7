package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

const gcmTagSize = 16

// AESGCMCipher implements ports.FieldCipher with AES-256-GCM. Records are
// serialized as hex(nonce):hex(ciphertext):hex(tag).
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCMCipher builds a cipher from a 32-byte key. Key material of any
// other length is rejected so a misconfigured process cannot start.
func NewAESGCMCipher(key []byte) (*AESGCMCipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("field cipher key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random 96-bit nonce. Reusing a
// nonce under the same key breaks GCM, so the nonce is drawn from
// crypto/rand on every call.
func (c *AESGCMCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-gcmTagSize]
	tag := sealed[len(sealed)-gcmTagSize:]
	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(ciphertext) + ":" + hex.EncodeToString(tag), nil
}

// Decrypt opens a nonce:ciphertext:tag record. A malformed record, non-hex
// content or a failed tag check all surface as ErrDecryptionFailed; the
// caller learns nothing about which.
func (c *AESGCMCipher) Decrypt(record string) (string, error) {
	parts := strings.Split(record, ":")
	if len(parts) != 3 {
		return "", domerrors.ErrDecryptionFailed
	}
	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return "", domerrors.ErrDecryptionFailed
	}
	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", domerrors.ErrDecryptionFailed
	}
	tag, err := hex.DecodeString(parts[2])
	if err != nil || len(tag) != gcmTagSize {
		return "", domerrors.ErrDecryptionFailed
	}
	plaintext, err := c.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", domerrors.ErrDecryptionFailed
	}
	return string(plaintext), nil
}
