package demo

import (
	"fmt"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// DefaultShots is the sampling default when the caller passes shots = 0.
const DefaultShots = 1024

// Encoding names a feature-map encoding strategy.
type Encoding string

const (
	// EncodingAmplitude normalizes the data vector and rotates each qubit
	// by the feature magnitude, phase-flipping negative features.
	EncodingAmplitude Encoding = "amplitude"

	// EncodingAngle rotates each qubit by the raw feature value and chains
	// CX gates for correlation.
	EncodingAngle Encoding = "angle"
)

// ParseEncoding validates an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	switch Encoding(s) {
	case EncodingAmplitude, EncodingAngle:
		return Encoding(s), nil
	default:
		return "", circuit.NewValidationError("encoding", fmt.Sprintf("unknown encoding %q (use %q or %q)", s, EncodingAmplitude, EncodingAngle))
	}
}

// Orchestrator runs the demo operations. Construct one with New; the
// zero value is not usable.
//
// Configuration (shot default, encoding default, source factory) is
// supplied at construction — the orchestrator never reads the process
// environment or any process-wide mutable state.
type Orchestrator struct {
	engine    *sim.Engine
	tokens    TokenGenerator
	newSource func() sim.Source

	defaultShots    int
	defaultEncoding Encoding
}

// OrchestratorOption configures an Orchestrator at construction.
type OrchestratorOption func(*Orchestrator)

// WithDefaultShots overrides the shot default used when a caller passes 0.
func WithDefaultShots(shots int) OrchestratorOption {
	return func(o *Orchestrator) {
		o.defaultShots = shots
	}
}

// WithDefaultEncoding overrides the feature-map encoding default.
func WithDefaultEncoding(enc Encoding) OrchestratorOption {
	return func(o *Orchestrator) {
		o.defaultEncoding = enc
	}
}

// WithSourceFactory overrides how per-call random sources are created.
// The factory is invoked once per operation, so a seeded factory makes a
// whole operation reproducible.
func WithSourceFactory(f func() sim.Source) OrchestratorOption {
	return func(o *Orchestrator) {
		o.newSource = f
	}
}

// New creates an Orchestrator over an engine and a run-token generator.
// Fails loudly on unusable configuration instead of producing an
// orchestrator that breaks on first use.
func New(engine *sim.Engine, tokens TokenGenerator, opts ...OrchestratorOption) (*Orchestrator, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if tokens == nil {
		tokens = UUIDv7Generator{}
	}

	o := &Orchestrator{
		engine:          engine,
		tokens:          tokens,
		newSource:       func() sim.Source { return sim.NewSource() },
		defaultShots:    DefaultShots,
		defaultEncoding: EncodingAmplitude,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.defaultShots < 1 {
		return nil, fmt.Errorf("default shots must be at least 1, got %d", o.defaultShots)
	}
	if _, err := ParseEncoding(string(o.defaultEncoding)); err != nil {
		return nil, fmt.Errorf("default encoding: %w", err)
	}
	if o.newSource == nil {
		return nil, fmt.Errorf("source factory is required")
	}
	return o, nil
}

// shotsOrDefault resolves the caller's shot count: 0 means "use the
// configured default"; anything negative is rejected.
func (o *Orchestrator) shotsOrDefault(shots int) (int, error) {
	if shots == 0 {
		return o.defaultShots, nil
	}
	if shots < 1 {
		return 0, circuit.NewValidationError("shots", fmt.Sprintf("must be at least 1, got %d", shots))
	}
	return shots, nil
}
