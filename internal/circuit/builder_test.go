package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build_Bell(t *testing.T) {
	c, err := NewBuilder(2).Named("bell").H(0).CX(0, 1).MeasureAll().Build()
	require.NoError(t, err)

	assert.Equal(t, "bell", c.Name())
	assert.Equal(t, 2, c.Qubits())

	ops := c.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, GateH, ops[0].Gate)
	assert.Equal(t, []int{0}, ops[0].Targets)
	assert.Equal(t, GateCX, ops[1].Gate)
	assert.Equal(t, []int{0, 1}, ops[1].Targets)
	assert.Equal(t, OpMeasureAll, ops[2].Kind)
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Circuit, error)
	}{
		{"zero qubits", func() (*Circuit, error) {
			return NewBuilder(0).Build()
		}},
		{"target out of range", func() (*Circuit, error) {
			return NewBuilder(1).H(1).Build()
		}},
		{"negative target", func() (*Circuit, error) {
			return NewBuilder(1).H(-1).Build()
		}},
		{"unknown gate", func() (*Circuit, error) {
			return NewBuilder(1).Gate(GateID("toffoli"), []int{0}).Build()
		}},
		{"wrong arity", func() (*Circuit, error) {
			return NewBuilder(2).Gate(GateCX, []int{0}).Build()
		}},
		{"duplicate two-qubit targets", func() (*Circuit, error) {
			return NewBuilder(2).CX(1, 1).Build()
		}},
		{"missing angle", func() (*Circuit, error) {
			return NewBuilder(1).Gate(GateRX, []int{0}).Build()
		}},
		{"angle on fixed gate", func() (*Circuit, error) {
			return NewBuilder(1).Gate(GateH, []int{0}, 0.5).Build()
		}},
		{"non-finite angle", func() (*Circuit, error) {
			return NewBuilder(1).RX(math.NaN(), 0).Build()
		}},
		{"double measure", func() (*Circuit, error) {
			return NewBuilder(1).H(0).MeasureAll().MeasureAll().Build()
		}},
		{"gate after measure", func() (*Circuit, error) {
			return NewBuilder(1).MeasureAll().H(0).Build()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, IsValidationError(err), "expected ValidationError, got %T: %v", err, err)
		})
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	// The out-of-range H is the first violation; the later unknown gate
	// must not overwrite it.
	_, err := NewBuilder(1).H(5).Gate(GateID("nope"), []int{0}).Build()
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "h", ve.Field)
}

func TestBuilder_AngleStored(t *testing.T) {
	c, err := NewBuilder(2).RZZ(math.Pi/4, 0, 1).Build()
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 1)
	assert.True(t, ops[0].HasAngle)
	assert.InDelta(t, math.Pi/4, ops[0].Angle, 1e-15)
}
