package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

func TestEntanglementDemo_BellCorrelation(t *testing.T) {
	o := newOrchestrator(t, WithDefaultShots(1000))
	res, err := o.EntanglementDemo(context.Background())
	require.NoError(t, err)

	// Noiseless Bell state: outcomes are perfectly correlated.
	assert.Zero(t, res.Counts["01"])
	assert.Zero(t, res.Counts["10"])
	assert.Equal(t, 1000, res.Counts["00"]+res.Counts["11"])
	assert.Equal(t, 1000, res.Shots)
}

func TestEntanglementDemo_CircuitDescriptor(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.EntanglementDemo(context.Background())
	require.NoError(t, err)

	require.NotNil(t, res.Circuit)
	assert.Equal(t, 2, res.Circuit.Qubits())
	assert.Equal(t, "bell_state", res.Circuit.Name())
	assert.True(t, res.Circuit.Measured())

	ops := res.Circuit.Ops()
	require.Len(t, ops, 4)
	assert.Equal(t, circuit.GateH, ops[0].Gate)
	assert.Equal(t, circuit.GateCX, ops[1].Gate)
	assert.Equal(t, circuit.OpBarrier, ops[2].Kind)
}

func TestSuperpositionDemo_RangeValidation(t *testing.T) {
	o := newOrchestrator(t)

	for _, qubits := range []int{0, 7, -1} {
		_, err := o.SuperpositionDemo(context.Background(), qubits)
		require.Error(t, err, "qubits=%d", qubits)
		assert.True(t, circuit.IsValidationError(err), "qubits=%d", qubits)
	}
}

func TestSuperpositionDemo_AllSizes(t *testing.T) {
	o := newOrchestrator(t, WithDefaultShots(256))

	for qubits := 1; qubits <= 6; qubits++ {
		res, err := o.SuperpositionDemo(context.Background(), qubits)
		require.NoError(t, err, "qubits=%d", qubits)

		total := 0
		for bits, n := range res.Counts {
			assert.Len(t, bits, qubits)
			total += n
		}
		assert.Equal(t, 256, total, "qubits=%d", qubits)

		// H on every qubit plus a CZ chain between neighbors.
		assert.Equal(t, qubits+(qubits-1), res.Circuit.GateCount(), "qubits=%d", qubits)
	}
}
