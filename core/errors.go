package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a product or user record for the given
	// key does not exist in the underlying store or catalog.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock is returned when a cart mutation targets a product the
	// catalog marks as out of stock.
	ErrOutOfStock = errors.New("out of stock")
)

// ValidationError reports caller input that failed a precondition (bad
// quantity, empty or overlong name). It maps to user-guidance text at the
// assistant boundary and is never fatal.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// NewValidationError constructs a ValidationError with a printf-style reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CollaboratorError wraps a failure from an external collaborator (user
// store, semantic search, LLM). Collaborator failures degrade gracefully and
// never terminate a conversational turn.
type CollaboratorError struct {
	Collaborator string // "user-store", "semantic-search", "llm"
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s unavailable: %v", e.Collaborator, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *CollaboratorError) Unwrap() error { return e.Err }

// NewCollaboratorError wraps err attributing it to the named collaborator.
func NewCollaboratorError(collaborator string, err error) *CollaboratorError {
	return &CollaboratorError{Collaborator: collaborator, Err: err}
}

// IsCollaborator reports whether err is (or wraps) a CollaboratorError.
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
