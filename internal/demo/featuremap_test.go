package demo

import (
	"context"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

func TestFeatureMap_Validation(t *testing.T) {
	o := newOrchestrator(t)
	ctx := context.Background()

	_, err := o.FeatureMap(ctx, nil, EncodingAmplitude)
	require.Error(t, err)
	assert.True(t, circuit.IsValidationError(err), "empty data point")

	nine := make([]float64, 9)
	_, err = o.FeatureMap(ctx, nine, EncodingAmplitude)
	require.Error(t, err)
	assert.True(t, circuit.IsValidationError(err), "too many features")

	_, err = o.FeatureMap(ctx, []float64{0.5}, Encoding("invalid"))
	require.Error(t, err)
	assert.True(t, circuit.IsValidationError(err), "unknown encoding")
}

// The all-zero vector normalizes to itself: every rotation angle is 0 and
// the prepared state is exactly the all-zero basis state.
func TestFeatureMap_AmplitudeZeroVector(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.FeatureMap(context.Background(), []float64{0, 0, 0}, EncodingAmplitude)
	require.NoError(t, err)

	for _, op := range res.Circuit.Ops() {
		if op.HasAngle {
			assert.Zero(t, op.Angle, "op %s", op)
		}
		assert.NotEqual(t, circuit.GateZ, op.Gate, "no phase flips for a zero vector")
	}

	engine, err := sim.New()
	require.NoError(t, err)
	state, err := engine.Simulate(context.Background(), res.Circuit)
	require.NoError(t, err)

	assert.InDelta(t, 0, cmplx.Abs(state.Amplitude(0)-1), 1e-12)
	for i := 1; i < state.Dim(); i++ {
		assert.Equal(t, complex128(0), state.Amplitude(i), "amplitude %d", i)
	}
	assert.Equal(t, 0.0, res.EntanglementProxy)
	assert.InDelta(t, 1.0, res.StateNorm, 1e-12)
}

func TestFeatureMap_AmplitudeNegativeFeaturesGetPhaseFlip(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.FeatureMap(context.Background(), []float64{0.5, -0.5}, EncodingAmplitude)
	require.NoError(t, err)

	var zTargets []int
	for _, op := range res.Circuit.Ops() {
		if op.Gate == circuit.GateZ {
			zTargets = append(zTargets, op.Targets[0])
		}
	}
	assert.Equal(t, []int{1}, zTargets, "only the negative feature's qubit is flipped")
}

func TestFeatureMap_AngleEncodingChainsCX(t *testing.T) {
	o := newOrchestrator(t)
	res, err := o.FeatureMap(context.Background(), []float64{0.1, 0.2, 0.3}, EncodingAngle)
	require.NoError(t, err)

	assert.Equal(t, EncodingAngle, res.Encoding)
	assert.Equal(t, 3, res.Qubits)

	var rys, cxs int
	for _, op := range res.Circuit.Ops() {
		switch op.Gate {
		case circuit.GateRY:
			rys++
		case circuit.GateCX:
			cxs++
		}
	}
	assert.Equal(t, 3, rys)
	assert.Equal(t, 2, cxs, "a CX from each qubit to the next")
	assert.Greater(t, res.Depth, 0)
	assert.Equal(t, 5, res.GateCount)
}

func TestFeatureMap_DefaultEncoding(t *testing.T) {
	o := newOrchestrator(t, WithDefaultEncoding(EncodingAngle))
	res, err := o.FeatureMap(context.Background(), []float64{0.4}, "")
	require.NoError(t, err)
	assert.Equal(t, EncodingAngle, res.Encoding)
}

func TestFeatureMap_NoSamplingInvolved(t *testing.T) {
	// The feature map must not consume the random source: a factory that
	// panics on use proves inspection-only behavior.
	engine, err := sim.New()
	require.NoError(t, err)
	o, err := New(engine, UUIDv7Generator{},
		WithSourceFactory(func() sim.Source {
			panic("feature map must not sample")
		}),
	)
	require.NoError(t, err)

	res, err := o.FeatureMap(context.Background(), []float64{0.3, 0.7}, EncodingAmplitude)
	require.NoError(t, err)
	assert.False(t, res.Circuit.Measured())
}
