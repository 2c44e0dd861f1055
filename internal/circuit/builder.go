package circuit

import (
	"fmt"
	"math"
)

// Builder accumulates operations and produces an immutable Circuit.
//
// Validation is fail-fast: the first violated constraint is recorded and
// Build() returns it as a ValidationError. Gate application methods keep
// chaining after an error so callers don't need to check every step.
type Builder struct {
	qubits int
	name   string
	ops    []Operation
	err    error
}

// NewBuilder creates a builder for a circuit over the given qubit count.
func NewBuilder(qubits int) *Builder {
	b := &Builder{qubits: qubits}
	if qubits < 1 {
		b.err = NewValidationError("qubit_count", fmt.Sprintf("must be at least 1, got %d", qubits))
	}
	return b
}

// Named sets the circuit name used in diagrams and logs.
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// Gate appends a gate operation. The angle is variadic so fixed gates pass
// none and parameterized gates pass exactly one.
//
// Constraints checked here (never at evolution time):
//   - the gate ID is in the fixed gate set
//   - the target count matches the gate arity, targets are in range and distinct
//   - parameterized gates get exactly one finite angle, fixed gates get none
func (b *Builder) Gate(id GateID, targets []int, angle ...float64) *Builder {
	if b.err != nil {
		return b
	}

	arity, known := Arity(id)
	if !known {
		b.err = NewValidationError("gate", fmt.Sprintf("unknown gate %q", id))
		return b
	}
	if len(targets) != arity {
		b.err = NewValidationError(string(id), fmt.Sprintf("needs %d target(s), got %d", arity, len(targets)))
		return b
	}
	for _, t := range targets {
		if t < 0 || t >= b.qubits {
			b.err = NewValidationError(string(id), fmt.Sprintf("target %d out of range for %d qubit(s)", t, b.qubits))
			return b
		}
	}
	if arity == 2 && targets[0] == targets[1] {
		b.err = NewValidationError(string(id), fmt.Sprintf("targets must be distinct, got %d twice", targets[0]))
		return b
	}

	op := Operation{Kind: OpGate, Gate: id}
	switch {
	case NeedsAngle(id) && len(angle) == 1:
		if math.IsNaN(angle[0]) || math.IsInf(angle[0], 0) {
			b.err = NewValidationError(string(id), "angle must be finite")
			return b
		}
		op.Angle = angle[0]
		op.HasAngle = true
	case NeedsAngle(id):
		b.err = NewValidationError(string(id), "missing required angle")
		return b
	case len(angle) != 0:
		b.err = NewValidationError(string(id), "gate takes no angle")
		return b
	}

	op.Targets = make([]int, len(targets))
	copy(op.Targets, targets)
	b.ops = append(b.ops, op)
	return b
}

// H applies a Hadamard gate to qubit q.
func (b *Builder) H(q int) *Builder { return b.Gate(GateH, []int{q}) }

// Z applies a Pauli-Z gate to qubit q.
func (b *Builder) Z(q int) *Builder { return b.Gate(GateZ, []int{q}) }

// RX applies an X-axis rotation by theta to qubit q.
func (b *Builder) RX(theta float64, q int) *Builder { return b.Gate(GateRX, []int{q}, theta) }

// RY applies a Y-axis rotation by theta to qubit q.
func (b *Builder) RY(theta float64, q int) *Builder { return b.Gate(GateRY, []int{q}, theta) }

// RZ applies a Z-axis rotation by theta to qubit q.
func (b *Builder) RZ(theta float64, q int) *Builder { return b.Gate(GateRZ, []int{q}, theta) }

// CX applies a controlled-X gate with control c and target t.
func (b *Builder) CX(c, t int) *Builder { return b.Gate(GateCX, []int{c, t}) }

// CZ applies a controlled-Z gate between qubits c and t.
func (b *Builder) CZ(c, t int) *Builder { return b.Gate(GateCZ, []int{c, t}) }

// RZZ applies the two-qubit ZZ interaction exp(-i*theta*Z⊗Z/2) to a and b.
func (b *Builder) RZZ(theta float64, q0, q1 int) *Builder {
	return b.Gate(GateRZZ, []int{q0, q1}, theta)
}

// Barrier appends a no-op scheduling marker.
func (b *Builder) Barrier() *Builder {
	if b.err != nil {
		return b
	}
	b.ops = append(b.ops, Operation{Kind: OpBarrier})
	return b
}

// MeasureAll marks that all qubits are measured at circuit end. Only one
// marker is allowed and no gate may follow it.
func (b *Builder) MeasureAll() *Builder {
	if b.err != nil {
		return b
	}
	for _, op := range b.ops {
		if op.Kind == OpMeasureAll {
			b.err = NewValidationError("measure", "circuit already measured")
			return b
		}
	}
	b.ops = append(b.ops, Operation{Kind: OpMeasureAll})
	return b
}

// Build finalizes the circuit. The operation list is copied out of the
// builder, so the builder can be discarded or reused without aliasing.
func (b *Builder) Build() (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}
	for i, op := range b.ops {
		if op.Kind == OpMeasureAll && i != len(b.ops)-1 {
			return nil, NewValidationError("measure", "operations after measurement are not supported")
		}
	}
	ops := make([]Operation, len(b.ops))
	copy(ops, b.ops)
	return &Circuit{name: b.name, qubits: b.qubits, ops: ops}, nil
}
