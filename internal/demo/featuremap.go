package demo

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// maxFeatures bounds a data point to 8 features: one qubit per feature,
// and 2^8 amplitudes keeps feature-map inspection cheap.
const maxFeatures = 8

// FeatureMap encodes a classical data point into a quantum state, one
// qubit per feature, and returns metadata derived from full statevector
// inspection (no sampling, no measurement).
//
// An empty encoding selects the configured default.
//
// Encodings:
//   - amplitude: the vector is L2-normalized (an all-zero vector encodes
//     as angle 0 everywhere); each feature rotates its qubit by
//     RY(|v|·π), with a Z phase flip for negative features.
//   - angle: each feature rotates its qubit by RY(v·π), with a CX to the
//     next qubit for correlation.
func (o *Orchestrator) FeatureMap(ctx context.Context, data []float64, encoding Encoding) (*FeatureMapResult, error) {
	if len(data) == 0 {
		return nil, circuit.NewValidationError("data_point", "must not be empty")
	}
	if len(data) > maxFeatures {
		return nil, circuit.NewValidationError("data_point", fmt.Sprintf("limited to %d features, got %d", maxFeatures, len(data)))
	}
	if encoding == "" {
		encoding = o.defaultEncoding
	}
	encoding, err := ParseEncoding(string(encoding))
	if err != nil {
		return nil, err
	}

	qubits := len(data)
	b := circuit.NewBuilder(qubits).Named(string(encoding) + "_feature_map")

	switch encoding {
	case EncodingAmplitude:
		normalized := normalize(data)
		for i, v := range normalized {
			b.RY(math.Abs(v)*math.Pi, i)
			if v < 0 {
				b.Z(i)
			}
		}
	case EncodingAngle:
		for i, v := range data {
			b.RY(v*math.Pi, i)
			if i < qubits-1 {
				b.CX(i, i+1)
			}
		}
	}

	c, err := b.Build()
	if err != nil {
		return nil, err
	}

	state, err := o.engine.Simulate(ctx, c)
	if err != nil {
		return nil, err
	}

	result := &FeatureMapResult{
		RunToken:          o.tokens.Generate(),
		Encoding:          encoding,
		Qubits:            qubits,
		Depth:             c.Depth(),
		GateCount:         c.GateCount(),
		EntanglementProxy: sim.EntanglementProxy(state),
		StateNorm:         state.Norm(),
		Circuit:           c,
	}
	slog.Info("feature map prepared",
		"run", result.RunToken,
		"encoding", encoding,
		"qubits", qubits,
		"entanglement_proxy", result.EntanglementProxy,
	)
	return result, nil
}

// normalize returns the L2-normalized vector. The zero vector normalizes
// to itself so every rotation angle comes out 0.
func normalize(data []float64) []float64 {
	sum := 0.0
	for _, v := range data {
		sum += v * v
	}
	out := make([]float64, len(data))
	if sum == 0 {
		return out
	}
	norm := math.Sqrt(sum)
	for i, v := range data {
		out[i] = v / norm
	}
	return out
}
