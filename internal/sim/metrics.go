package sim

import "math"

// entropyEpsilon avoids log(0) in the entropy sum, matching the tolerance
// the probability distribution itself is trusted to.
const entropyEpsilon = 1e-12

// SuccessProbability returns the fraction of shots that landed on the
// canonical best outcome.
func SuccessProbability(r *MeasurementResult) float64 {
	if r.shots == 0 {
		return 0
	}
	_, count := r.Best()
	return float64(count) / float64(r.shots)
}

// QuantumAdvantage reports whether the best outcome's frequency beats the
// uniform-distribution baseline 1/2^n. A heuristic indicator, not a proof
// of anything: a flat distribution keeps it false, any concentration flips
// it true.
func QuantumAdvantage(r *MeasurementResult) bool {
	return SuccessProbability(r) > 1/float64(int(1)<<r.qubits)
}

// EntanglementProxy returns the Shannon entropy of the basis-state
// probability distribution, normalized by the maximum log2(2^n) = n so the
// result lies in [0, 1].
//
// LIMITATION: this measures distributional flatness, not entanglement. A
// rigorous entanglement entropy would trace out a subsystem and take the
// von Neumann entropy of the reduced density matrix; no partial trace is
// computed here. A product state like |+⟩⊗|+⟩ scores 1.0 despite having no
// entanglement at all. Treat the value as a spread score, never present it
// to consumers as a true entanglement measure.
func EntanglementProxy(state *StateVector) float64 {
	entropy := 0.0
	for _, p := range state.Probabilities() {
		entropy -= p * math.Log2(p+entropyEpsilon)
	}
	normalized := entropy / float64(state.qubits)

	// The epsilon makes a concentrated distribution land a hair below
	// zero; clamp to the documented range.
	return math.Min(1, math.Max(0, normalized))
}
