package compiler

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
)

// LoadFile reads a CUE circuit definition from disk and compiles it.
func LoadFile(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read circuit file: %w", err)
	}

	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, &CompileError{Field: "circuit", Message: err.Error()}
	}

	root := v.LookupPath(cue.ParsePath("circuit"))
	if !root.Exists() {
		return nil, &CompileError{Field: "circuit", Message: "top-level circuit struct is required", Pos: v.Pos()}
	}
	return CompileCircuit(root)
}

// CompileCircuit parses a CUE value into a Circuit. The value should be
// the circuit struct itself (the payload of the top-level "circuit"
// field).
func CompileCircuit(v cue.Value) (*circuit.Circuit, error) {
	if err := v.Err(); err != nil {
		return nil, &CompileError{Field: "circuit", Message: err.Error(), Pos: v.Pos()}
	}

	qubitsVal := v.LookupPath(cue.ParsePath("qubits"))
	if !qubitsVal.Exists() {
		return nil, &CompileError{Field: "qubits", Message: "qubits is required", Pos: v.Pos()}
	}
	qubits, err := qubitsVal.Int64()
	if err != nil {
		return nil, &CompileError{Field: "qubits", Message: err.Error(), Pos: qubitsVal.Pos()}
	}

	b := circuit.NewBuilder(int(qubits))

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, &CompileError{Field: "name", Message: err.Error(), Pos: nameVal.Pos()}
		}
		b.Named(name)
	}

	opsVal := v.LookupPath(cue.ParsePath("ops"))
	if !opsVal.Exists() {
		return nil, &CompileError{Field: "ops", Message: "ops list is required", Pos: v.Pos()}
	}
	iter, err := opsVal.List()
	if err != nil {
		return nil, &CompileError{Field: "ops", Message: err.Error(), Pos: opsVal.Pos()}
	}

	for i := 0; iter.Next(); i++ {
		if err := compileOp(b, iter.Value(), i); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// compileOp appends one parsed operation to the builder.
func compileOp(b *circuit.Builder, v cue.Value, index int) error {
	field := func(name string) string {
		return fmt.Sprintf("ops[%d].%s", index, name)
	}

	if barrier := v.LookupPath(cue.ParsePath("barrier")); barrier.Exists() {
		b.Barrier()
		return nil
	}
	if measure := v.LookupPath(cue.ParsePath("measure")); measure.Exists() {
		b.MeasureAll()
		return nil
	}

	gateVal := v.LookupPath(cue.ParsePath("gate"))
	if !gateVal.Exists() {
		return &CompileError{Field: field("gate"), Message: "op needs gate, barrier, or measure", Pos: v.Pos()}
	}
	gateName, err := gateVal.String()
	if err != nil {
		return &CompileError{Field: field("gate"), Message: err.Error(), Pos: gateVal.Pos()}
	}

	onVal := v.LookupPath(cue.ParsePath("on"))
	if !onVal.Exists() {
		return &CompileError{Field: field("on"), Message: "target list is required", Pos: v.Pos()}
	}
	onIter, err := onVal.List()
	if err != nil {
		return &CompileError{Field: field("on"), Message: err.Error(), Pos: onVal.Pos()}
	}
	var targets []int
	for onIter.Next() {
		q, err := onIter.Value().Int64()
		if err != nil {
			return &CompileError{Field: field("on"), Message: err.Error(), Pos: onIter.Value().Pos()}
		}
		targets = append(targets, int(q))
	}

	angleVal := v.LookupPath(cue.ParsePath("angle"))
	if angleVal.Exists() {
		angle, err := angleVal.Float64()
		if err != nil {
			return &CompileError{Field: field("angle"), Message: err.Error(), Pos: angleVal.Pos()}
		}
		b.Gate(circuit.GateID(gateName), targets, angle)
		return nil
	}

	b.Gate(circuit.GateID(gateName), targets)
	return nil
}
