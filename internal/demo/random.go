package demo

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// RandomBit measures a single qubit in uniform superposition and returns
// the canonical best outcome as a bit. shots = 0 means 1, the degenerate
// single-draw case.
func (o *Orchestrator) RandomBit(ctx context.Context, shots int) (*RandomBitResult, error) {
	if shots == 0 {
		shots = 1
	}
	if shots < 1 {
		return nil, circuit.NewValidationError("shots", fmt.Sprintf("must be at least 1, got %d", shots))
	}

	c, err := circuit.NewBuilder(1).Named("random_bit").H(0).MeasureAll().Build()
	if err != nil {
		return nil, err
	}

	res, err := o.run(ctx, c, shots)
	if err != nil {
		return nil, err
	}

	best, _ := res.Best()
	bit := int(best[0] - '0')

	result := &RandomBitResult{RunToken: o.tokens.Generate(), Bit: bit, Shots: shots}
	slog.Info("quantum random bit generated", "run", result.RunToken, "bit", bit)
	return result, nil
}

// RandomChoice selects one option via a uniform superposition over
// ceil(log2(len(options))) qubits. The best measured value is mapped onto
// the option list modulo its length, so every 2^n value selects something.
// Returns the chosen option together with the winning bitstring.
func (o *Orchestrator) RandomChoice(ctx context.Context, options []string, shots int) (*RandomChoiceResult, error) {
	if len(options) == 0 {
		return nil, circuit.NewValidationError("options", "must not be empty")
	}
	shots, err := o.shotsOrDefault(shots)
	if err != nil {
		return nil, err
	}

	qubits := qubitsForChoices(len(options))
	b := circuit.NewBuilder(qubits).Named("random_choice")
	for q := 0; q < qubits; q++ {
		b.H(q)
	}
	c, err := b.MeasureAll().Build()
	if err != nil {
		return nil, err
	}

	res, err := o.run(ctx, c, shots)
	if err != nil {
		return nil, err
	}

	best, _ := res.Best()
	value, err := circuit.ParseBasis(best)
	if err != nil {
		return nil, err
	}
	selected := options[value%len(options)]

	result := &RandomChoiceResult{
		RunToken:  o.tokens.Generate(),
		Option:    selected,
		Bitstring: best,
		Qubits:    qubits,
		Shots:     shots,
	}
	slog.Info("quantum choice selected",
		"run", result.RunToken,
		"option", selected,
		"options", len(options),
		"bitstring", best,
	)
	return result, nil
}

// qubitsForChoices returns ceil(log2(n)), minimum 1.
func qubitsForChoices(n int) int {
	if n <= 2 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// run simulates a circuit and samples it with a fresh per-call source.
func (o *Orchestrator) run(ctx context.Context, c *circuit.Circuit, shots int) (*sim.MeasurementResult, error) {
	state, err := o.engine.Simulate(ctx, c)
	if err != nil {
		return nil, err
	}
	return sim.Sample(state, shots, o.newSource())
}
