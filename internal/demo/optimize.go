package demo

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// Cost and mixer parameters for the QAOA-style layered circuit. One fixed
// layer, Max-Cut flavored: the cost layer couples adjacent qubits.
const (
	optimizationGamma = math.Pi / 4
	optimizationBeta  = math.Pi / 3
)

// OptimizationDemo runs a single-layer QAOA-inspired circuit over
// problemSize (2 to 10) qubits: uniform superposition, an RZZ cost layer
// on each adjacent pair, an RX mixer on every qubit, then measurement.
func (o *Orchestrator) OptimizationDemo(ctx context.Context, problemSize int) (*OptimizationResult, error) {
	if problemSize < 2 || problemSize > 10 {
		return nil, circuit.NewValidationError("problem_size", fmt.Sprintf("must be between 2 and 10, got %d", problemSize))
	}

	b := circuit.NewBuilder(problemSize).Named(fmt.Sprintf("optimization_%dq", problemSize))
	for q := 0; q < problemSize; q++ {
		b.H(q)
	}
	for q := 0; q < problemSize-1; q++ {
		b.RZZ(optimizationGamma, q, q+1)
	}
	for q := 0; q < problemSize; q++ {
		b.RX(2*optimizationBeta, q)
	}
	c, err := b.MeasureAll().Build()
	if err != nil {
		return nil, err
	}

	res, err := o.run(ctx, c, o.defaultShots)
	if err != nil {
		return nil, err
	}

	best, _ := res.Best()
	result := &OptimizationResult{
		RunToken:             o.tokens.Generate(),
		ProblemSize:          problemSize,
		BestBitstring:        best,
		SuccessProbability:   sim.SuccessProbability(res),
		TotalMeasurements:    res.Shots(),
		UniqueStatesMeasured: res.UniqueStates(),
		QuantumAdvantage:     sim.QuantumAdvantage(res),
		Circuit:              c,
	}
	slog.Info("optimization demo complete",
		"run", result.RunToken,
		"problem_size", problemSize,
		"best", best,
		"success_probability", result.SuccessProbability,
	)
	return result, nil
}
