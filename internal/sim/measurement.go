package sim

import "sort"

// MeasurementResult maps bitstrings (one character per qubit, qubit 0
// first) to non-negative counts. The counts sum to the requested shots.
type MeasurementResult struct {
	qubits int
	shots  int
	counts map[string]int
}

// NewMeasurementResult builds a result from existing counts. Used by tests
// and by callers that tally outcomes themselves.
func NewMeasurementResult(qubits int, counts map[string]int) *MeasurementResult {
	copied := make(map[string]int, len(counts))
	shots := 0
	for bits, n := range counts {
		copied[bits] = n
		shots += n
	}
	return &MeasurementResult{qubits: qubits, shots: shots, counts: copied}
}

// Qubits returns the measured qubit count (bitstring length).
func (r *MeasurementResult) Qubits() int { return r.qubits }

// Shots returns the total number of draws.
func (r *MeasurementResult) Shots() int { return r.shots }

// Count returns the tally for one bitstring (zero if never observed).
func (r *MeasurementResult) Count(bitstring string) int { return r.counts[bitstring] }

// Counts returns a copy of the full tally.
func (r *MeasurementResult) Counts() map[string]int {
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// UniqueStates returns the number of distinct outcomes observed.
func (r *MeasurementResult) UniqueStates() int { return len(r.counts) }

// Best returns the canonical best outcome: highest count wins, ties broken
// by ascending lexicographic bitstring order. The tie-break is explicit so
// results are reproducible under a fixed seed regardless of map iteration
// order.
func (r *MeasurementResult) Best() (string, int) {
	keys := make([]string, 0, len(r.counts))
	for k := range r.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := ""
	bestCount := 0
	for _, k := range keys {
		if r.counts[k] > bestCount {
			best = k
			bestCount = r.counts[k]
		}
	}
	return best, bestCount
}
