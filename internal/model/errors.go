package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no entity has the requested identity.
	ErrNotFound = errors.New("not found")
	// ErrInvalidSubmission is returned when a quiz submission misses a required field.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrValidation is returned when an entity violates its constraints.
	ErrValidation = errors.New("validation failed")
	// ErrStorage is returned when the persistence layer fails.
	ErrStorage = errors.New("storage failure")
)

// FieldError describes a rejected input field. It unwraps to its Kind.
type FieldError struct {
	Kind   error
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// StorageError tags a persistence failure with ErrStorage, keeping the cause.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", ErrStorage, op, err)
}
