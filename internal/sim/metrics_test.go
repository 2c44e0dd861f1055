package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

func TestSuccessProbability(t *testing.T) {
	res := NewMeasurementResult(2, map[string]int{"00": 768, "11": 256})
	assert.InDelta(t, 0.75, SuccessProbability(res), 1e-12)
}

func TestQuantumAdvantage(t *testing.T) {
	// Perfectly uniform over 4 outcomes: 0.25 does not beat 1/4.
	flat := NewMeasurementResult(2, map[string]int{"00": 25, "01": 25, "10": 25, "11": 25})
	assert.False(t, QuantumAdvantage(flat))

	peaked := NewMeasurementResult(2, map[string]int{"00": 70, "01": 10, "10": 10, "11": 10})
	assert.True(t, QuantumAdvantage(peaked))
}

func TestEntanglementProxy_Bounds(t *testing.T) {
	e := mustEngine(t)

	// Concentrated distribution: entropy 0 (clamped against the epsilon).
	zero, err := circuit.NewBuilder(3).Build()
	require.NoError(t, err)
	state, err := e.Simulate(context.Background(), zero)
	require.NoError(t, err)
	assert.Equal(t, 0.0, EntanglementProxy(state))

	// Uniform superposition: maximal flatness, score 1.
	b := circuit.NewBuilder(3)
	for q := 0; q < 3; q++ {
		b.H(q)
	}
	uniform, err := b.Build()
	require.NoError(t, err)
	state, err = e.Simulate(context.Background(), uniform)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, EntanglementProxy(state), 1e-6)
}

func TestEntanglementProxy_BellIsHalf(t *testing.T) {
	// Two equal-probability outcomes over two qubits: entropy 1 bit,
	// normalized by n=2. The proxy reads 0.5 — a reminder that this is a
	// flatness score, not an entanglement entropy (the Bell state is
	// maximally entangled).
	e := mustEngine(t)
	bell, err := circuit.NewBuilder(2).H(0).CX(0, 1).Build()
	require.NoError(t, err)
	state, err := e.Simulate(context.Background(), bell)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, EntanglementProxy(state), 1e-6)
}

func TestStateVector_CloneIndependent(t *testing.T) {
	s := NewZeroState(2)
	c := s.Clone()
	c.amps[0] = 0
	c.amps[3] = 1
	assert.Equal(t, complex128(1), s.Amplitude(0), "clone mutation must not reach the original")
	assert.InDelta(t, 0, s.Fidelity(c), 1e-12)
	assert.InDelta(t, 1, s.Fidelity(s), 1e-12)
}
