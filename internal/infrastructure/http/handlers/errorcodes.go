package handlers

// Machine-readable error codes carried next to the human-readable message.
// Clients branch on these; the messages are free to change.
const (
	ErrCodeInvalidRequest     = "invalid_request"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeEmailTaken         = "email_taken"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeForbidden          = "forbidden"
	ErrCodeNotFound           = "not_found"
	ErrCodeInvalidToken       = "invalid_token"
	ErrCodeDecryptionFailed   = "decryption_failed"
	ErrCodeInternal           = "internal_error"
)
