package circuit

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied input that violates a documented
// constraint: an out-of-range qubit target, a missing rotation angle, an
// empty option list, an unknown encoding name, and so on.
//
// Validation errors are raised before any simulation work happens and are
// never retried. They are distinct from sim.ResourceError (problem too big)
// and sim.SimulationError (engine defect) so callers can tell "your input"
// apart from "our bug".
type ValidationError struct {
	// Field names the offending parameter or operation.
	Field string

	// Message is a human-readable description of the constraint.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError returns true if the error is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
