// Package common defines shared constants and sentinel errors used across
// the repository, service and CLI layers of checkmygrade. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound     = errors.New("not found")
	ErrorDuplicateKey = errors.New("duplicate key")
	ErrorStorageIO    = errors.New("storage i/o error")

	// Validation errors (malformed numbers, empty keys, unknown roles).
	ErrorInvalidInput = errors.New("invalid input")

	// Auth errors. ErrorAuthFailure never says which credential was wrong.
	ErrorAuthFailure = errors.New("invalid credentials")
	ErrorForbidden   = errors.New("operation not permitted for role")

	// Compound insert: entity stored, credential not.
	ErrorPartialInsert = errors.New("partial insert")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
