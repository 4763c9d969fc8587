package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound = errors.New("not found")

	// ErrEventNotFound is returned when a booking references an event
	// that does not exist at the moment the reference is set or changed.
	// It is distinct from ValidationError so callers can surface it as a
	// missing reference rather than a malformed field.
	ErrEventNotFound = errors.New("referenced event does not exist")

	// ErrSlugTaken is returned by the event repository when a write
	// violates the unique index on slug.
	ErrSlugTaken = errors.New("an event with this slug already exists")

	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a field that failed a normalization or shape
// rule. The write it belongs to must not proceed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
