package compiler

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// CompileError reports a structurally invalid circuit definition.
type CompileError struct {
	// Field is the path of the offending field, e.g. "ops[2].gate".
	Field string

	// Message describes what is wrong.
	Message string

	// Pos is the CUE source position, when available.
	Pos token.Pos
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsCompileError returns true if the error is a CompileError.
// Uses errors.As to handle wrapped errors.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}
