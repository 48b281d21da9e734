// Package common defines shared sentinel errors used across rosterbase
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("no record matches the given key")

	// File boundary errors (read/write/copy). Always wrapped with context
	// at the codec, backup and lock boundaries.
	ErrFileAccess = errors.New("file access error")

	// Save path errors.
	ErrLockTimeout = errors.New("timed out waiting for file lock")

	// Value rejected by a bound-role validator. Recoverable: the caller
	// re-prompts or retains the previous value.
	ErrValidation = errors.New("validation failed")

	// No columns defined when creating a new file. Fatal.
	ErrSchema = errors.New("no columns defined")
)
