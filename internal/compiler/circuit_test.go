package compiler

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

func compileString(t *testing.T, src string) (*circuit.Circuit, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())
	return CompileCircuit(v.LookupPath(cue.ParsePath("circuit")))
}

func TestCompileCircuit_Bell(t *testing.T) {
	c, err := compileString(t, `
circuit: {
	name:   "bell"
	qubits: 2
	ops: [
		{gate: "h", on: [0]},
		{gate: "cx", on: [0, 1]},
		{barrier: true},
		{measure: true},
	]
}`)
	require.NoError(t, err)

	assert.Equal(t, "bell", c.Name())
	assert.Equal(t, 2, c.Qubits())
	assert.True(t, c.Measured())
	assert.Equal(t, 2, c.GateCount())
}

func TestCompileCircuit_AngleExpression(t *testing.T) {
	c, err := compileString(t, `
import "math"

circuit: {
	qubits: 2
	ops: [
		{gate: "rzz", on: [0, 1], angle: math.Pi/4},
	]
}`)
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 1)
	assert.InDelta(t, math.Pi/4, ops[0].Angle, 1e-12)
}

func TestCompileCircuit_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing qubits", `circuit: {ops: []}`},
		{"missing ops", `circuit: {qubits: 1}`},
		{"op without gate", `circuit: {qubits: 1, ops: [{on: [0]}]}`},
		{"gate without targets", `circuit: {qubits: 1, ops: [{gate: "h"}]}`},
		{"non-string gate", `circuit: {qubits: 1, ops: [{gate: 3, on: [0]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileString(t, tt.src)
			require.Error(t, err)
			assert.True(t, IsCompileError(err), "expected CompileError, got %T: %v", err, err)
		})
	}
}

func TestCompileCircuit_SemanticErrorsAreValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown gate", `circuit: {qubits: 1, ops: [{gate: "toffoli", on: [0]}]}`},
		{"target out of range", `circuit: {qubits: 1, ops: [{gate: "h", on: [4]}]}`},
		{"missing angle", `circuit: {qubits: 1, ops: [{gate: "rx", on: [0]}]}`},
		{"zero qubits", `circuit: {qubits: 0, ops: []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileString(t, tt.src)
			require.Error(t, err)
			assert.True(t, circuit.IsValidationError(err), "expected ValidationError, got %T: %v", err, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghz.cue")
	src := `circuit: {
	name:   "ghz"
	qubits: 3
	ops: [
		{gate: "h", on: [0]},
		{gate: "cx", on: [0, 1]},
		{gate: "cx", on: [1, 2]},
		{measure: true},
	]
}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ghz", c.Name())
	assert.Equal(t, 3, c.Qubits())
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.cue"))
	assert.Error(t, err)
}

func TestLoadFile_MissingCircuitStruct(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.cue")
	require.NoError(t, os.WriteFile(path, []byte(`other: 1`), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, IsCompileError(err))
}
