package circuit

import "fmt"

// GateID identifies a gate in the fixed gate set.
type GateID string

const (
	GateH   GateID = "h"
	GateZ   GateID = "z"
	GateRX  GateID = "rx"
	GateRY  GateID = "ry"
	GateRZ  GateID = "rz"
	GateCX  GateID = "cx"
	GateCZ  GateID = "cz"
	GateRZZ GateID = "rzz"
)

// Arity returns the number of target qubits the gate acts on.
// The second return value is false for unknown gate IDs.
func Arity(id GateID) (int, bool) {
	switch id {
	case GateH, GateZ, GateRX, GateRY, GateRZ:
		return 1, true
	case GateCX, GateCZ, GateRZZ:
		return 2, true
	default:
		return 0, false
	}
}

// NeedsAngle reports whether the gate is parameterized by a rotation angle.
func NeedsAngle(id GateID) bool {
	switch id {
	case GateRX, GateRY, GateRZ, GateRZZ:
		return true
	default:
		return false
	}
}

// OpKind discriminates the Operation variants.
type OpKind int

const (
	// OpGate applies a unitary gate to its target qubits.
	OpGate OpKind = iota
	// OpBarrier is a no-op scheduling marker. The engine skips it.
	OpBarrier
	// OpMeasureAll marks that all qubits are measured at circuit end.
	// Only terminal, all-qubit measurement is supported.
	OpMeasureAll
)

// Operation is one step of a circuit: a gate, a barrier, or the terminal
// measurement marker.
type Operation struct {
	Kind OpKind

	// Gate fields, meaningful only when Kind == OpGate.
	Gate     GateID
	Targets  []int
	Angle    float64
	HasAngle bool
}

// String renders the operation for diagnostics and diagrams.
func (op Operation) String() string {
	switch op.Kind {
	case OpBarrier:
		return "barrier"
	case OpMeasureAll:
		return "measure"
	default:
		if op.HasAngle {
			return fmt.Sprintf("%s(%.4g)%v", op.Gate, op.Angle, op.Targets)
		}
		return fmt.Sprintf("%s%v", op.Gate, op.Targets)
	}
}

// Circuit is an ordered, immutable description of operations over a fixed
// qubit count. Construct one via Builder; a Circuit that exists has already
// passed validation.
type Circuit struct {
	name   string
	qubits int
	ops    []Operation
}

// Name returns the optional circuit name (used in diagrams and logs).
func (c *Circuit) Name() string { return c.name }

// Qubits returns the fixed qubit count.
func (c *Circuit) Qubits() int { return c.qubits }

// Ops returns a copy of the operation sequence. Target slices are copied
// too, so callers cannot mutate the circuit through the result.
func (c *Circuit) Ops() []Operation {
	ops := make([]Operation, len(c.ops))
	copy(ops, c.ops)
	for i := range ops {
		if ops[i].Targets != nil {
			t := make([]int, len(ops[i].Targets))
			copy(t, ops[i].Targets)
			ops[i].Targets = t
		}
	}
	return ops
}

// GateCount returns the number of gate operations (barriers and the
// measurement marker excluded).
func (c *Circuit) GateCount() int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == OpGate {
			n++
		}
	}
	return n
}

// Measured reports whether the circuit ends in a MeasureAll marker.
func (c *Circuit) Measured() bool {
	for _, op := range c.ops {
		if op.Kind == OpMeasureAll {
			return true
		}
	}
	return false
}

// Depth returns the circuit depth: the length of the longest chain of gates
// through any qubit. Gates on disjoint qubits share a layer. Barriers align
// all qubits to the current deepest layer but add no depth of their own;
// the measurement marker is ignored.
func (c *Circuit) Depth() int {
	layer := make([]int, c.qubits)
	for _, op := range c.ops {
		switch op.Kind {
		case OpGate:
			d := 0
			for _, t := range op.Targets {
				if layer[t] > d {
					d = layer[t]
				}
			}
			for _, t := range op.Targets {
				layer[t] = d + 1
			}
		case OpBarrier:
			max := 0
			for _, d := range layer {
				if d > max {
					max = d
				}
			}
			for i := range layer {
				layer[i] = max
			}
		}
	}
	max := 0
	for _, d := range layer {
		if d > max {
			max = d
		}
	}
	return max
}

// FormatBasis renders basis index i as a bitstring over the given qubit
// count: the bit of qubit q lands at character position q (qubit 0 first).
func FormatBasis(index, qubits int) string {
	b := make([]byte, qubits)
	for q := 0; q < qubits; q++ {
		b[q] = '0' + byte((index>>q)&1)
	}
	return string(b)
}

// ParseBasis is the inverse of FormatBasis: it decodes a bitstring back to
// its basis index. Returns a ValidationError for non-binary characters.
func ParseBasis(bitstring string) (int, error) {
	index := 0
	for q := 0; q < len(bitstring); q++ {
		switch bitstring[q] {
		case '0':
		case '1':
			index |= 1 << q
		default:
			return 0, NewValidationError("bitstring", fmt.Sprintf("non-binary character %q at position %d", bitstring[q], q))
		}
	}
	return index, nil
}
