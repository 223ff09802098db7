package ports

// PasswordHasher hashes and verifies passwords (Argon2id).
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches the encoded hash.
	// A malformed hash verifies false; this layer never errors.
	Verify(password, hash string) bool
}

// TokenClaims is the identity carried by a signed token.
type TokenClaims struct {
	UserID string
	Name   string
	Email  string
}

// TokenIssuer signs and verifies identity tokens.
type TokenIssuer interface {
	Issue(claims TokenClaims) (string, error)
	// Verify validates signature, issuer, audience and expiry. Every
	// failure surfaces as the single opaque errors.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
}

// FieldCipher encrypts and decrypts task fields at rest.
type FieldCipher interface {
	// Encrypt returns a nonce:ciphertext:tag hex record with a fresh
	// random nonce per call.
	Encrypt(plaintext string) (string, error)
	// Decrypt returns errors.ErrDecryptionFailed on a malformed record
	// or a failed authentication tag check.
	Decrypt(record string) (string, error)
}
