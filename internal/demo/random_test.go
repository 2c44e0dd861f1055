package demo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/testutil"
)

func TestRandomBit_ReturnsBinary(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.RandomBit(context.Background(), 0)
	require.NoError(t, err)

	assert.Contains(t, []int{0, 1}, res.Bit)
	assert.Equal(t, 1, res.Shots, "shots=0 means the single-draw default")
	assert.NotEmpty(t, res.RunToken)
}

func TestRandomBit_RejectsNegativeShots(t *testing.T) {
	o := newOrchestrator(t)
	_, err := o.RandomBit(context.Background(), -1)
	require.Error(t, err)
	assert.True(t, circuit.IsValidationError(err))
}

// Statistical sanity bound for p=0.5: over 2000 independent calls with an
// unbiased seed stream, the count of 1s should land well inside [800,1200].
func TestRandomBit_Unbiased(t *testing.T) {
	engine, err := sim.New()
	require.NoError(t, err)

	seed := uint64(0)
	o, err := New(engine, UUIDv7Generator{},
		WithSourceFactory(func() sim.Source {
			seed++
			return sim.NewSeededSource(seed)
		}),
	)
	require.NoError(t, err)

	ones := 0
	for i := 0; i < 2000; i++ {
		res, err := o.RandomBit(context.Background(), 1)
		require.NoError(t, err)
		ones += res.Bit
	}

	assert.Greater(t, ones, 800)
	assert.Less(t, ones, 1200)
}

func TestRandomChoice_RejectsEmptyOptions(t *testing.T) {
	o := newOrchestrator(t)
	_, err := o.RandomChoice(context.Background(), nil, 0)
	require.Error(t, err)
	assert.True(t, circuit.IsValidationError(err))
}

func TestRandomChoice_ThreeOptionsUsesTwoQubits(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.RandomChoice(context.Background(), []string{"A", "B", "C"}, 1024)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Qubits)
	assert.Equal(t, 1024, res.Shots)
	assert.Contains(t, []string{"A", "B", "C"}, res.Option)
	assert.Len(t, res.Bitstring, 2)
}

// Every measurable 2-bit value must map onto the option list modulo its
// length: value 3 wraps to index 0.
func TestRandomChoice_ModularMapping(t *testing.T) {
	engine, err := sim.New()
	require.NoError(t, err)
	options := []string{"A", "B", "C"}

	for value := 0; value < 4; value++ {
		o, err := New(engine, NewFixedGenerator(fmt.Sprintf("run-%d", value)),
			WithSourceFactory(func() sim.Source { return testutil.NewRepeatingSource(value) }),
		)
		require.NoError(t, err)

		res, err := o.RandomChoice(context.Background(), options, 16)
		require.NoError(t, err)

		assert.Equal(t, circuit.FormatBasis(value, 2), res.Bitstring, "value %d", value)
		assert.Equal(t, options[value%3], res.Option, "value %d", value)
	}
}

func TestQubitsForChoices(t *testing.T) {
	tests := []struct {
		options int
		want    int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {16, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, qubitsForChoices(tt.options), "%d options", tt.options)
	}
}

func TestRandomChoice_SingleOption(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.RandomChoice(context.Background(), []string{"only"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "only", res.Option)
	assert.Equal(t, DefaultShots, res.Shots)
}
