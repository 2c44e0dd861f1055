// Package gate is the pure gate library: a stateless lookup from gate
// identity plus optional angle to its unitary matrix.
//
// Matrices are small fixed-size complex128 arrays. Two-qubit matrices are
// expressed in the |first-target, second-target⟩ local basis: the local
// index of a basis pair is first*2 + second. CX and CZ take the control as
// the first target.
//
// Unknown gate identities and missing angles are rejected at circuit build
// time (see the circuit package); For panics on neither but returns an
// error so the engine can surface library misuse as a simulation defect.
package gate
