// Package common defines shared constants and sentinel errors used across
// Pennywise components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorAlreadyExists signals a uniqueness violation (duplicate username).
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (malformed or missing input).
	ErrorValidation = errors.New("validation error")

	// ErrInvalidToken covers every token verification failure: bad signature,
	// malformed structure, or expiry in the past. Callers must not be able to
	// tell these apart.
	ErrInvalidToken = errors.New("invalid token")
)
