package demo

import "github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"

// Result records are plain values handed back to the caller (chat UI,
// renderer, run history). Summary() flattens the numeric fields for the
// run log and for text-generation collaborators, which consume only the
// summary.

// RandomBitResult is the outcome of RandomBit.
type RandomBitResult struct {
	RunToken string `json:"run_token"`
	Bit      int    `json:"bit"`
	Shots    int    `json:"shots"`
}

// Summary flattens the result for logging and persistence.
func (r *RandomBitResult) Summary() map[string]any {
	return map[string]any{"bit": r.Bit, "shots": r.Shots}
}

// RandomChoiceResult is the outcome of RandomChoice.
type RandomChoiceResult struct {
	RunToken  string `json:"run_token"`
	Option    string `json:"option"`
	Bitstring string `json:"bitstring"`
	Qubits    int    `json:"qubits"`
	Shots     int    `json:"shots"`
}

// Summary flattens the result for logging and persistence.
func (r *RandomChoiceResult) Summary() map[string]any {
	return map[string]any{
		"option":    r.Option,
		"bitstring": r.Bitstring,
		"qubits":    r.Qubits,
		"shots":     r.Shots,
	}
}

// EntanglementResult is the outcome of EntanglementDemo. The Circuit field
// is the plain descriptor a rendering collaborator consumes.
type EntanglementResult struct {
	RunToken string           `json:"run_token"`
	Circuit  *circuit.Circuit `json:"-"`
	Counts   map[string]int   `json:"counts"`
	Shots    int              `json:"shots"`
}

// Summary flattens the result for logging and persistence.
func (r *EntanglementResult) Summary() map[string]any {
	return map[string]any{"counts": r.Counts, "shots": r.Shots}
}

// SuperpositionResult is the outcome of SuperpositionDemo.
type SuperpositionResult struct {
	RunToken string           `json:"run_token"`
	Qubits   int              `json:"qubits"`
	Circuit  *circuit.Circuit `json:"-"`
	Counts   map[string]int   `json:"counts"`
	Shots    int              `json:"shots"`
}

// Summary flattens the result for logging and persistence.
func (r *SuperpositionResult) Summary() map[string]any {
	return map[string]any{"qubits": r.Qubits, "counts": r.Counts, "shots": r.Shots}
}

// OptimizationResult is the outcome of OptimizationDemo.
type OptimizationResult struct {
	RunToken             string           `json:"run_token"`
	ProblemSize          int              `json:"problem_size"`
	BestBitstring        string           `json:"best_bitstring"`
	SuccessProbability   float64          `json:"success_probability"`
	TotalMeasurements    int              `json:"total_measurements"`
	UniqueStatesMeasured int              `json:"unique_states_measured"`
	QuantumAdvantage     bool             `json:"quantum_advantage_indicator"`
	Circuit              *circuit.Circuit `json:"-"`
}

// Summary flattens the result for logging and persistence.
func (r *OptimizationResult) Summary() map[string]any {
	return map[string]any{
		"problem_size":                r.ProblemSize,
		"best_bitstring":              r.BestBitstring,
		"success_probability":         r.SuccessProbability,
		"total_measurements":          r.TotalMeasurements,
		"unique_states_measured":      r.UniqueStatesMeasured,
		"quantum_advantage_indicator": r.QuantumAdvantage,
	}
}

// FeatureMapResult is the outcome of FeatureMap. Derived from full
// statevector inspection; no sampling is involved.
type FeatureMapResult struct {
	RunToken          string           `json:"run_token"`
	Encoding          Encoding         `json:"encoding"`
	Qubits            int              `json:"qubits"`
	Depth             int              `json:"depth"`
	GateCount         int              `json:"gate_count"`
	EntanglementProxy float64          `json:"entanglement_proxy"`
	StateNorm         float64          `json:"state_norm"`
	Circuit           *circuit.Circuit `json:"-"`
}

// Summary flattens the result for logging and persistence.
func (r *FeatureMapResult) Summary() map[string]any {
	return map[string]any{
		"encoding":           string(r.Encoding),
		"qubits":             r.Qubits,
		"depth":              r.Depth,
		"gate_count":         r.GateCount,
		"entanglement_proxy": r.EntanglementProxy,
		"state_norm":         r.StateNorm,
	}
}
