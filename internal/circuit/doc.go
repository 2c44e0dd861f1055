// Package circuit provides the immutable circuit description types.
//
// This package contains type definitions and the circuit builder only. All
// other internal packages import circuit; circuit imports nothing internal.
// This keeps the circuit model the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - A Circuit is immutable once built. The builder copies its operation
//     list on Build(), and accessors never expose internal slices.
//   - All caller-input validation happens at build time, never during
//     evolution. A Circuit that exists is a valid circuit.
//   - Basis convention: qubit q occupies bit 1<<q of the basis index
//     (qubit 0 is the least significant bit) and character position q of a
//     measurement bitstring. The bitstring is therefore the binary expansion
//     of the basis index written least-significant-bit first.
package circuit
