package demo

import (
	"context"
	"fmt"
	"log/slog"
)

// Version identifies the simulation core, reported in SystemInfo.
const Version = "0.1.0"

// SystemInfo describes the simulation environment for callers that want
// to present capabilities (the chat UI shows this in its sidebar).
type SystemInfo struct {
	EngineVersion   string   `json:"engine_version"`
	MaxQubits       int      `json:"max_qubits"`
	DefaultShots    int      `json:"default_shots"`
	DefaultEncoding Encoding `json:"default_encoding"`
	GateSet         []string `json:"gate_set"`
	Operations      []string `json:"operations"`
}

// SystemInfo reports the configured limits, the gate set, and the
// supported operations.
func (o *Orchestrator) SystemInfo() SystemInfo {
	return SystemInfo{
		EngineVersion:   Version,
		MaxQubits:       o.engine.MaxQubits(),
		DefaultShots:    o.defaultShots,
		DefaultEncoding: o.defaultEncoding,
		GateSet:         []string{"h", "z", "rx", "ry", "rz", "cx", "cz", "rzz"},
		Operations: []string{
			"random_bit",
			"random_choice",
			"entanglement_demo",
			"optimization_demo",
			"feature_map",
			"superposition_demo",
		},
	}
}

// HealthCheck exercises the stack end to end: one random bit and one
// two-option choice. Returns the first failure instead of a degraded
// success value, so a broken engine is loud, never usable-looking.
func (o *Orchestrator) HealthCheck(ctx context.Context) error {
	if _, err := o.RandomBit(ctx, 1); err != nil {
		return fmt.Errorf("health check: random bit: %w", err)
	}
	if _, err := o.RandomChoice(ctx, []string{"check1", "check2"}, 64); err != nil {
		return fmt.Errorf("health check: random choice: %w", err)
	}
	slog.Info("quantum system health check passed")
	return nil
}
