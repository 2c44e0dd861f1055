package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

// Source produces one categorical sample given a probability distribution.
//
// Randomness is an explicit, injectable dependency: each call site supplies
// its own Source (thread-local or per-call), never a shared global
// generator. This keeps sampling reproducible under a fixed seed and free
// of contention. Implemented by PseudoSource (production) and
// testutil.ScriptedSource (tests).
type Source interface {
	// Draw returns a basis index sampled from probs. The distribution is
	// expected to sum to 1 within floating tolerance.
	Draw(probs []float64) int
}

// PseudoSource samples from a PCG pseudo-random stream.
//
// Not safe for concurrent use; create one Source per call or goroutine.
type PseudoSource struct {
	rng *rand.Rand
}

// NewSource creates a Source seeded from the process-wide auto-seeded
// generator. Use NewSeededSource for reproducible streams.
func NewSource() *PseudoSource {
	return &PseudoSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededSource creates a Source with a fixed seed. The same seed over
// the same distribution sequence reproduces the same draws exactly.
func NewSeededSource(seed uint64) *PseudoSource {
	return &PseudoSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Draw samples one basis index by inverse transform over the cumulative
// distribution.
func (s *PseudoSource) Draw(probs []float64) int {
	r := s.rng.Float64()
	cum := 0.0
	last := 0
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		last = i
		cum += p
		if r < cum {
			return i
		}
	}
	// Floating residue: the cumulative sum landed a hair under 1.
	return last
}

// Sample draws shots independent measurement outcomes from the state's
// probability distribution and tallies them into bitstring counts.
// shots = 1 is the degenerate case yielding exactly one outcome.
func Sample(state *StateVector, shots int, src Source) (*MeasurementResult, error) {
	if shots < 1 {
		return nil, circuit.NewValidationError("shots", fmt.Sprintf("must be at least 1, got %d", shots))
	}
	if src == nil {
		return nil, circuit.NewValidationError("source", "random source must not be nil")
	}

	probs := state.Probabilities()
	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		index := src.Draw(probs)
		counts[circuit.FormatBasis(index, state.qubits)]++
	}

	return &MeasurementResult{qubits: state.qubits, shots: shots, counts: counts}, nil
}
