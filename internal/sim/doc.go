// Package sim implements the exact statevector simulation engine, the
// measurement sampler, and the derived metrics.
//
// ARCHITECTURE:
//
// Pure, stateless evolution:
// Simulate() is a pure function of (circuit, initial state). The engine
// holds only read-only configuration, so concurrent callers may simulate
// in parallel. The state vector exists only for the duration of one call;
// nothing is retained between calls.
//
// Evolution:
// 1. amplitude[0] = 1, all else 0 (the all-zero basis state)
// 2. For each gate, locate the pairs (single-qubit) or quadruples
//    (two-qubit) of basis indices that differ only in the target bit(s)
//    and apply the small gate matrix to each group in place. All other
//    amplitudes are untouched. This is O(2^n) per gate with O(2^n) memory,
//    never a full tensor-product matrix multiply.
// 3. Barriers and the measurement marker are skipped.
//
// Memory is the binding resource: 2^n complex amplitudes. The engine
// refuses circuits above its configured qubit maximum with a ResourceError
// instead of attempting the allocation.
//
// CRITICAL PATTERNS:
//
// Determinism: evolution introduces no randomness. Sampling randomness is
// an injected Source, one per call, never a shared global generator, so a
// fixed seed reproduces results exactly.
//
// Invariants: gates are unitary, so the state norm must stay at 1. The
// norm is checked after every gate application (tolerance 1e-9); a drift
// is an engine defect, surfaced as SimulationError and never silently
// corrected.
package sim
