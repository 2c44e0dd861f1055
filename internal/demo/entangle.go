package demo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

// EntanglementDemo prepares the Bell state (|00⟩ + |11⟩)/√2, measures it,
// and returns the counts together with the circuit descriptor for a
// rendering collaborator. A noiseless simulator never produces the
// anti-correlated outcomes "01" or "10".
func (o *Orchestrator) EntanglementDemo(ctx context.Context) (*EntanglementResult, error) {
	c, err := circuit.NewBuilder(2).Named("bell_state").
		H(0).
		CX(0, 1).
		Barrier().
		MeasureAll().
		Build()
	if err != nil {
		return nil, err
	}

	res, err := o.run(ctx, c, o.defaultShots)
	if err != nil {
		return nil, err
	}

	result := &EntanglementResult{
		RunToken: o.tokens.Generate(),
		Circuit:  c,
		Counts:   res.Counts(),
		Shots:    o.defaultShots,
	}
	slog.Info("entanglement demo complete", "run", result.RunToken, "unique_states", res.UniqueStates())
	return result, nil
}

// SuperpositionDemo puts n qubits (1 to 6) in uniform superposition with a
// CZ phase chain between neighbors, measures, and returns counts plus the
// circuit descriptor.
func (o *Orchestrator) SuperpositionDemo(ctx context.Context, qubits int) (*SuperpositionResult, error) {
	if qubits < 1 || qubits > 6 {
		return nil, circuit.NewValidationError("qubits", fmt.Sprintf("must be between 1 and 6, got %d", qubits))
	}

	b := circuit.NewBuilder(qubits).Named(fmt.Sprintf("superposition_%dq", qubits))
	for q := 0; q < qubits; q++ {
		b.H(q)
	}
	for q := 0; q < qubits-1; q++ {
		b.CZ(q, q+1)
	}
	c, err := b.Barrier().MeasureAll().Build()
	if err != nil {
		return nil, err
	}

	res, err := o.run(ctx, c, o.defaultShots)
	if err != nil {
		return nil, err
	}

	result := &SuperpositionResult{
		RunToken: o.tokens.Generate(),
		Qubits:   qubits,
		Circuit:  c,
		Counts:   res.Counts(),
		Shots:    o.defaultShots,
	}
	slog.Info("superposition demo complete", "run", result.RunToken, "qubits", qubits, "unique_states", res.UniqueStates())
	return result, nil
}
