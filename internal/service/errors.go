package service

import "errors"

// Sentinel errors the handler layer maps onto HTTP status codes.
var (
	// ErrValidation covers missing required fields, malformed ids and
	// unknown entities (400).
	ErrValidation = errors.New("validation error")
	// ErrPermissionDenied means the session is valid but the role lacks the
	// capability (403).
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidCredentials is the uniform login failure. It never reveals
	// whether the email exists (401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound means a referenced profile row is absent (404).
	ErrNotFound = errors.New("not found")
)
