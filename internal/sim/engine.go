package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/gate"
)

const (
	// DefaultMaxQubits bounds the default state allocation at 2^20
	// amplitudes (16 MiB). Configurable via WithMaxQubits.
	DefaultMaxQubits = 20

	// hardMaxQubits caps engine configuration itself. Beyond this the
	// dense representation stops being simulatable on ordinary hardware.
	hardMaxQubits = 30

	// NormTolerance is the allowed drift of the state norm from 1 after
	// each gate application.
	NormTolerance = 1e-9

	// UnitarityTolerance is the allowed deviation of U·U† from identity.
	UnitarityTolerance = 1e-9
)

// Engine evolves circuits into state vectors.
//
// An Engine is an explicit value constructed once by the caller, with
// construction-time validation that fails loudly. It holds only read-only
// configuration, so a single Engine is safe for concurrent Simulate calls.
type Engine struct {
	maxQubits int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMaxQubits sets the maximum simulatable qubit count.
//
// Default: 20 (DefaultMaxQubits). Lower it to bound memory harder, raise
// it (up to 30) only with the memory to match: each extra qubit doubles
// the state.
func WithMaxQubits(n int) Option {
	return func(e *Engine) {
		e.maxQubits = n
	}
}

// New creates an Engine. Returns an error for unusable configuration
// rather than producing an engine that fails later.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{maxQubits: DefaultMaxQubits}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxQubits < 1 || e.maxQubits > hardMaxQubits {
		return nil, fmt.Errorf("max qubits must be in [1, %d], got %d", hardMaxQubits, e.maxQubits)
	}
	return e, nil
}

// MaxQubits returns the configured maximum qubit count.
func (e *Engine) MaxQubits() int { return e.maxQubits }

// Simulate evolves the all-zero basis state through the circuit and
// returns the final state vector.
//
// Pure function of the circuit: no randomness, no retained state. The
// context is a cancellation hook checked between operations; the circuit
// sizes in scope finish fast, but larger problem sizes stay interruptible.
//
// Errors:
//   - ResourceError if the circuit's qubit count exceeds the engine maximum
//   - SimulationError if a gate fails its unitarity check or the state
//     norm drifts outside tolerance (engine defect, logged)
//   - the context error if ctx is cancelled mid-evolution
func (e *Engine) Simulate(ctx context.Context, c *circuit.Circuit) (*StateVector, error) {
	if c == nil {
		return nil, circuit.NewValidationError("circuit", "must not be nil")
	}
	if c.Qubits() > e.maxQubits {
		return nil, &ResourceError{Requested: c.Qubits(), Max: e.maxQubits}
	}

	state := NewZeroState(c.Qubits())
	for _, op := range c.Ops() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if op.Kind != circuit.OpGate {
			// Barriers and the measurement marker change no amplitudes.
			continue
		}

		if err := e.applyGate(state, op); err != nil {
			slog.Error("simulation invariant violated",
				"op", op.String(),
				"qubits", c.Qubits(),
				"error", err,
			)
			return nil, err
		}
	}

	return state, nil
}

// applyGate resolves the gate matrix, verifies unitarity, applies it, and
// checks the norm invariant.
func (e *Engine) applyGate(state *StateVector, op circuit.Operation) error {
	switch len(op.Targets) {
	case 1:
		m, err := gate.ForSingle(op)
		if err != nil {
			return &SimulationError{Op: op.String(), Message: err.Error()}
		}
		if !gate.IsUnitarySingle(m, UnitarityTolerance) {
			return &SimulationError{Op: op.String(), Message: "gate matrix is not unitary within tolerance"}
		}
		applySingle(state.amps, op.Targets[0], m)

	case 2:
		m, err := gate.ForTwo(op)
		if err != nil {
			return &SimulationError{Op: op.String(), Message: err.Error()}
		}
		if !gate.IsUnitaryTwo(m, UnitarityTolerance) {
			return &SimulationError{Op: op.String(), Message: "gate matrix is not unitary within tolerance"}
		}
		applyTwo(state.amps, op.Targets[0], op.Targets[1], m)

	default:
		return &SimulationError{Op: op.String(), Message: fmt.Sprintf("unsupported target count %d", len(op.Targets))}
	}

	if norm := state.Norm(); math.Abs(norm-1) > NormTolerance {
		return &SimulationError{Op: op.String(), Message: fmt.Sprintf("state norm drifted to %g", norm)}
	}
	return nil
}
