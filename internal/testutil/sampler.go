// Package testutil provides deterministic test doubles shared across
// package tests.
package testutil

import "fmt"

// ScriptedSource satisfies sim.Source with a predetermined sequence of
// basis indices, making sampling fully deterministic regardless of the
// probability distribution passed in.
//
// Draws beyond the script panic — fail-fast for test misconfiguration
// (the test sampled more shots than it scripted).
type ScriptedSource struct {
	draws []int
	idx   int
}

// NewScriptedSource creates a source that returns the given indices in
// order.
func NewScriptedSource(draws ...int) *ScriptedSource {
	return &ScriptedSource{draws: draws}
}

// Draw returns the next scripted index. Panics if the index falls outside
// the distribution's support size or the script is exhausted.
func (s *ScriptedSource) Draw(probs []float64) int {
	if s.idx >= len(s.draws) {
		panic("ScriptedSource: all draws exhausted")
	}
	d := s.draws[s.idx]
	s.idx++
	if d < 0 || d >= len(probs) {
		panic(fmt.Sprintf("ScriptedSource: draw %d out of range for %d outcomes", d, len(probs)))
	}
	return d
}

// RepeatingSource satisfies sim.Source by cycling through a fixed sequence
// forever. Useful when the shot count is larger than matters to the test.
type RepeatingSource struct {
	draws []int
	idx   int
}

// NewRepeatingSource creates a source cycling through the given indices.
func NewRepeatingSource(draws ...int) *RepeatingSource {
	if len(draws) == 0 {
		panic("RepeatingSource: at least one draw required")
	}
	return &RepeatingSource{draws: draws}
}

// Draw returns the next index in the cycle.
func (s *RepeatingSource) Draw(probs []float64) int {
	d := s.draws[s.idx%len(s.draws)]
	s.idx++
	if d < 0 || d >= len(probs) {
		panic(fmt.Sprintf("RepeatingSource: draw %d out of range for %d outcomes", d, len(probs)))
	}
	return d
}
