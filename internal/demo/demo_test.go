package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// newOrchestrator builds an orchestrator with a seeded source factory so
// every test run samples identically.
func newOrchestrator(t *testing.T, opts ...OrchestratorOption) *Orchestrator {
	t.Helper()
	engine, err := sim.New()
	require.NoError(t, err)

	base := []OrchestratorOption{
		WithSourceFactory(func() sim.Source { return sim.NewSeededSource(42) }),
	}
	o, err := New(engine, UUIDv7Generator{}, append(base, opts...)...)
	require.NoError(t, err)
	return o
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(nil, UUIDv7Generator{})
	assert.Error(t, err)
}

func TestNew_ValidatesDefaults(t *testing.T) {
	engine, err := sim.New()
	require.NoError(t, err)

	_, err = New(engine, nil, WithDefaultShots(0))
	assert.Error(t, err)

	_, err = New(engine, nil, WithDefaultEncoding(Encoding("phase")))
	assert.Error(t, err)

	_, err = New(engine, nil, WithSourceFactory(nil))
	assert.Error(t, err)

	// nil token generator falls back to UUIDv7.
	o, err := New(engine, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, o.tokens.Generate())
}

func TestParseEncoding(t *testing.T) {
	enc, err := ParseEncoding("amplitude")
	require.NoError(t, err)
	assert.Equal(t, EncodingAmplitude, enc)

	enc, err = ParseEncoding("angle")
	require.NoError(t, err)
	assert.Equal(t, EncodingAngle, enc)

	_, err = ParseEncoding("invalid")
	require.Error(t, err)
}

func TestSystemInfo(t *testing.T) {
	o := newOrchestrator(t, WithDefaultShots(512))
	info := o.SystemInfo()

	assert.Equal(t, Version, info.EngineVersion)
	assert.Equal(t, sim.DefaultMaxQubits, info.MaxQubits)
	assert.Equal(t, 512, info.DefaultShots)
	assert.Contains(t, info.GateSet, "rzz")
	assert.Contains(t, info.Operations, "feature_map")
}

func TestHealthCheck(t *testing.T) {
	o := newOrchestrator(t)
	assert.NoError(t, o.HealthCheck(context.Background()))
}

func TestHealthCheck_SurfacesFailure(t *testing.T) {
	o := newOrchestrator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, o.HealthCheck(ctx))
}
