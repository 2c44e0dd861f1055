package sim

import (
	"errors"
	"fmt"
)

// ResourceError reports a circuit whose qubit count exceeds the engine's
// configured simulatable maximum. The state size is exponential in qubit
// count, so the engine fails fast instead of attempting the allocation.
// Fatal for the call; the caller must reduce the problem size.
type ResourceError struct {
	Requested int
	Max       int
}

// Error implements the error interface.
func (e *ResourceError) Error() string {
	return fmt.Sprintf("circuit needs %d qubits, engine maximum is %d", e.Requested, e.Max)
}

// IsResourceError returns true if the error is a ResourceError.
// Uses errors.As to handle wrapped errors.
func IsResourceError(err error) bool {
	var re *ResourceError
	return errors.As(err, &re)
}

// SimulationError reports a violated internal invariant: the state norm
// drifted outside tolerance, or a gate matrix failed its unitarity check.
// It indicates an engine defect, not bad caller input, and is surfaced
// distinctly from circuit.ValidationError for that reason.
type SimulationError struct {
	// Op renders the operation being applied when the invariant broke.
	Op string

	// Message describes the violated invariant.
	Message string
}

// Error implements the error interface.
func (e *SimulationError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("simulation invariant violated at %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("simulation invariant violated: %s", e.Message)
}

// IsSimulationError returns true if the error is a SimulationError.
// Uses errors.As to handle wrapped errors.
func IsSimulationError(err error) bool {
	var se *SimulationError
	return errors.As(err, &se)
}
