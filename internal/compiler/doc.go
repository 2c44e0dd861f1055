// Package compiler turns declarative CUE circuit definitions into circuit
// values.
//
// A definition is a CUE file with a top-level "circuit" struct:
//
//	circuit: {
//		name:   "bell"
//		qubits: 2
//		ops: [
//			{gate: "h", on: [0]},
//			{gate: "cx", on: [0, 1]},
//			{barrier: true},
//			{measure: true},
//		]
//	}
//
// Parameterized gates take an "angle" field, which may be any CUE numeric
// expression (so "angle: math.Pi/4" works with the usual import).
//
// Structural problems (missing fields, wrong types) surface as
// CompileError with the CUE source position. Semantic problems (unknown
// gate, out-of-range target, missing angle) surface as the circuit
// builder's ValidationError, exactly as if the circuit had been built in
// code.
package compiler
