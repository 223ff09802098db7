package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrEmailTaken         = errors.New("this email is already been used")
	ErrInvalidCredentials = errors.New("email and/or password is incorrect")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTasksNotFound      = errors.New("tasks not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDecryptionFailed   = errors.New("decryption failed")
	ErrTaskCreate         = errors.New("could not create task")
)
