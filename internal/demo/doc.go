// Package demo composes the gate library, circuit builder, engine, sampler
// and metrics into the showcase operations the chatbot exposes: random bit,
// random choice, entanglement, layered optimization, feature maps, and
// superposition.
//
// Every operation is a pure composition over the lower layers: build a
// circuit, evolve it, sample or inspect the state, derive metrics, return a
// plain result record. No state is held across calls, so a single
// Orchestrator is safe for concurrent use as long as its source factory
// hands out a fresh random source per call (the default does).
//
// Validation failures surface as circuit.ValidationError strictly before
// any engine invocation. Each result carries a run token (UUIDv7 in
// production) for correlation in logs and the run history.
package demo
