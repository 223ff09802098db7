package security

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	domerrors "github.com/LucasMartinsVieira/toodoo/internal/domain/errors"
)

func testCipher(t *testing.T) *AESGCMCipher {
	t.Helper()
	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f")
	c, err := NewAESGCMCipher(key)
	if err != nil {
		t.Fatalf("NewAESGCMCipher error: %v", err)
	}
	return c
}

func TestNewAESGCMCipher_KeyLength(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, 16, 24, 31, 33, 64} {
		if _, err := NewAESGCMCipher(make([]byte, size)); err == nil {
			t.Errorf("expected error for %d-byte key", size)
		}
	}
	if _, err := NewAESGCMCipher(make([]byte, 32)); err != nil {
		t.Errorf("unexpected error for 32-byte key: %v", err)
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	c := testCipher(t)
	for _, plaintext := range []string{
		"Buy milk",
		"",
		"2%",
		"multi\nline\ntext",
		"unicode: привет, 世界, ñandú",
		strings.Repeat("a", 800),
	} {
		record, err := c.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}
		got, err := c.Decrypt(record)
		if err != nil {
			t.Fatalf("Decrypt(%q) error: %v", record, err)
		}
		if got != plaintext {
			t.Errorf("round trip mismatch: got %q want %q", got, plaintext)
		}
	}
}

func TestEncrypt_RecordShape(t *testing.T) {
	t.Parallel()

	c := testCipher(t)
	record, err := c.Encrypt("hello")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	parts := strings.Split(record, ":")
	if len(parts) != 3 {
		t.Fatalf("expected 3 colon-joined parts, got %d", len(parts))
	}
	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != 12 {
		t.Errorf("expected 12-byte hex nonce, got %q", parts[0])
	}
	tag, err := hex.DecodeString(parts[2])
	if err != nil || len(tag) != 16 {
		t.Errorf("expected 16-byte hex tag, got %q", parts[2])
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	t.Parallel()

	c := testCipher(t)
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		record, err := c.Encrypt("same plaintext")
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		nonce := strings.SplitN(record, ":", 2)[0]
		if seen[nonce] {
			t.Fatal("nonce reused across encryptions")
		}
		seen[nonce] = true
	}
}

func TestDecrypt_MalformedRecord(t *testing.T) {
	t.Parallel()

	c := testCipher(t)
	for _, record := range []string{
		"",
		"invalid:data:format",
		"deadbeef",
		"aa:bb",
		"aa:bb:cc:dd",
		"zz:bb:cc",
		"aabbccddeeff001122334455:gg:00112233445566778899aabbccddeeff",
		"aabb:00:00112233445566778899aabbccddeeff", // nonce too short
	} {
		_, err := c.Decrypt(record)
		if !errors.Is(err, domerrors.ErrDecryptionFailed) {
			t.Errorf("Decrypt(%q): expected ErrDecryptionFailed, got %v", record, err)
		}
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	t.Parallel()

	c := testCipher(t)
	record, err := c.Encrypt("integrity matters")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	parts := strings.Split(record, ":")
	flipped := flipHexBit(parts[1])
	_, err = c.Decrypt(parts[0] + ":" + flipped + ":" + parts[2])
	if !errors.Is(err, domerrors.ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed on tampered ciphertext, got %v", err)
	}

	flippedTag := flipHexBit(parts[2])
	_, err = c.Decrypt(parts[0] + ":" + parts[1] + ":" + flippedTag)
	if !errors.Is(err, domerrors.ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed on tampered tag, got %v", err)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	t.Parallel()

	c := testCipher(t)
	record, err := c.Encrypt("secret note")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	other, err := NewAESGCMCipher([]byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewAESGCMCipher error: %v", err)
	}
	if _, err := other.Decrypt(record); !errors.Is(err, domerrors.ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed with wrong key, got %v", err)
	}
}

func flipHexBit(s string) string {
	raw, _ := hex.DecodeString(s)
	if len(raw) == 0 {
		return s
	}
	raw[0] ^= 0x01
	return hex.EncodeToString(raw)
}
