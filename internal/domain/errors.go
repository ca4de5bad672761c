package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation messages shared across entities and request DTOs.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")

	// ErrInvalidMove reports a card move whose claimed source column does not
	// contain the card. Callers recover by re-fetching board state and
	// retrying once; a recurrence is surfaced as a failed operation.
	ErrInvalidMove = errors.New("invalid move")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
