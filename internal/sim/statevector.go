package sim

import (
	"math"
	"math/cmplx"
)

// StateVector is a dense ordered sequence of 2^n complex amplitudes.
// The basis index encodes the qubit assignment with qubit 0 as the least
// significant bit (see the circuit package for the bitstring convention).
//
// A StateVector is derived, not stored: it exists for the duration of one
// Simulate call and whatever inspection the caller does afterwards.
type StateVector struct {
	qubits int
	amps   []complex128
}

// NewZeroState allocates the all-zero basis state |0...0⟩ over n qubits.
func NewZeroState(qubits int) *StateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &StateVector{qubits: qubits, amps: amps}
}

// Qubits returns the qubit count.
func (s *StateVector) Qubits() int { return s.qubits }

// Dim returns the dimension 2^n of the state space.
func (s *StateVector) Dim() int { return len(s.amps) }

// Amplitude returns the complex amplitude of basis index i.
func (s *StateVector) Amplitude(i int) complex128 { return s.amps[i] }

// Amplitudes returns a copy of the amplitude array.
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Probabilities returns |amplitude|² for every basis index.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amps))
	for i, a := range s.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// Norm returns the Euclidean norm sqrt(Σ|amplitude|²). Unitary evolution
// keeps this at 1.
func (s *StateVector) Norm() float64 {
	sum := 0.0
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{qubits: s.qubits, amps: amps}
}

// Fidelity returns |⟨s|o⟩|², the squared overlap with another state of the
// same dimension. Used by tests to compare states up to global phase.
func (s *StateVector) Fidelity(o *StateVector) float64 {
	var inner complex128
	for i, a := range s.amps {
		inner += cmplx.Conj(a) * o.amps[i]
	}
	return real(inner)*real(inner) + imag(inner)*imag(inner)
}
