// Package errors provides custom error types for inventory operations.
package errors

import "errors"

var (
	// ErrShoeNotFound is returned when no shoe matches the requested code.
	ErrShoeNotFound = errors.New("shoe not found")

	// ErrEmptyInventory is returned by operations that need at least one record.
	ErrEmptyInventory = errors.New("inventory is empty")

	// ErrDuplicateCode is returned when a new shoe reuses an existing code.
	ErrDuplicateCode = errors.New("shoe code already exists")
)
