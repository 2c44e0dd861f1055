package gate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

// Single is a 2x2 unitary acting on one qubit. Row/column order is |0⟩, |1⟩.
type Single [2][2]complex128

// Two is a 4x4 unitary acting on an ordered pair of qubits. Row/column
// order is |00⟩, |01⟩, |10⟩, |11⟩ with the first target as the high bit.
type Two [4][4]complex128

// Hadamard returns H = (1/√2)·[[1,1],[1,-1]].
func Hadamard() Single {
	h := complex(1/math.Sqrt2, 0)
	return Single{
		{h, h},
		{h, -h},
	}
}

// PauliZ returns Z = diag(1, -1).
func PauliZ() Single {
	return Single{
		{1, 0},
		{0, -1},
	}
}

// RX returns the X-axis rotation by theta.
func RX(theta float64) Single {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, -math.Sin(theta/2))
	return Single{
		{c, js},
		{js, c},
	}
}

// RY returns the Y-axis rotation by theta.
func RY(theta float64) Single {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return Single{
		{c, -s},
		{s, c},
	}
}

// RZ returns the Z-axis rotation diag(e^{-iθ/2}, e^{iθ/2}).
func RZ(theta float64) Single {
	p := cmplx.Exp(complex(0, theta/2))
	return Single{
		{cmplx.Conj(p), 0},
		{0, p},
	}
}

// CX returns the controlled-X permutation in |control, target⟩ order:
// the target bit flips when the control is 1.
func CX() Two {
	return Two{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
}

// CZ returns the controlled-Z diagonal diag(1, 1, 1, -1).
func CZ() Two {
	return Two{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}
}

// RZZ returns exp(-i·theta·Z⊗Z/2) = diag(e^{-iθ/2}, e^{iθ/2}, e^{iθ/2}, e^{-iθ/2}).
func RZZ(theta float64) Two {
	p := cmplx.Exp(complex(0, theta/2))
	q := cmplx.Conj(p)
	return Two{
		{q, 0, 0, 0},
		{0, p, 0, 0},
		{0, 0, p, 0},
		{0, 0, 0, q},
	}
}

// ForSingle resolves a single-qubit gate operation to its matrix.
func ForSingle(op circuit.Operation) (Single, error) {
	switch op.Gate {
	case circuit.GateH:
		return Hadamard(), nil
	case circuit.GateZ:
		return PauliZ(), nil
	case circuit.GateRX:
		return RX(op.Angle), nil
	case circuit.GateRY:
		return RY(op.Angle), nil
	case circuit.GateRZ:
		return RZ(op.Angle), nil
	default:
		return Single{}, fmt.Errorf("gate %q is not a single-qubit gate", op.Gate)
	}
}

// ForTwo resolves a two-qubit gate operation to its matrix.
func ForTwo(op circuit.Operation) (Two, error) {
	switch op.Gate {
	case circuit.GateCX:
		return CX(), nil
	case circuit.GateCZ:
		return CZ(), nil
	case circuit.GateRZZ:
		return RZZ(op.Angle), nil
	default:
		return Two{}, fmt.Errorf("gate %q is not a two-qubit gate", op.Gate)
	}
}
