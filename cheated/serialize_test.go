package cheated_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qlens/expval/cheated"
	"github.com/qlens/expval/register"
)

// TestPauliZInput_JSONRoundTrip ensures the text form preserves readout
// keys, indices and formulas exactly.
func TestPauliZInput_JSONRoundTrip(t *testing.T) {
	in := cheated.NewPauliZInput()
	in.AddPauliZProduct("ro_a")
	in.AddPauliZProduct("ro_b")
	require.NoError(t, in.AddLinearExpVal("sum", map[int]float64{0: 1.0, 1: 1.0}))
	require.NoError(t, in.AddSymbolicExpVal("phase", "sin(pauli_product_1)"))

	data, err := json.Marshal(in)
	require.NoError(t, err)

	decoded := cheated.NewPauliZInput()
	require.NoError(t, json.Unmarshal(data, decoded))
	require.Equal(t, in.Readouts(), decoded.Readouts())
	require.Equal(t, in.ExpValNames(), decoded.ExpValNames())
	for _, readout := range in.Readouts() {
		want, _ := in.Index(readout)
		got, ok := decoded.Index(readout)
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	floats := register.FloatRegisters{"ro_a": {{1.0}}, "ro_b": {{-1.0}}}
	want, err := in.Evaluate(nil, floats, nil)
	require.NoError(t, err)
	got, err := decoded.Evaluate(nil, floats, nil)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestPauliZInput_BinaryRoundTrip covers the CBOR form.
func TestPauliZInput_BinaryRoundTrip(t *testing.T) {
	in := cheated.NewPauliZInput()
	in.AddPauliZProduct("ro")
	require.NoError(t, in.AddLinearExpVal("obs", map[int]float64{0: 2.0}))

	data, err := in.MarshalBinary()
	require.NoError(t, err)

	decoded := cheated.NewPauliZInput()
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.Equal(t, in.Readouts(), decoded.Readouts())
	require.Equal(t, in.ExpValNames(), decoded.ExpValNames())
}

// TestPauliZInput_DecodeRejectsBadIndices: indices must form a contiguous
// 0-based range with no duplicates.
func TestPauliZInput_DecodeRejectsBadIndices(t *testing.T) {
	decoded := cheated.NewPauliZInput()
	err := json.Unmarshal([]byte(`{
		"pauli_product_keys": {"a": 0, "b": 5},
		"measured_exp_vals": {}
	}`), decoded)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{
		"pauli_product_keys": {"a": 0, "b": 0},
		"measured_exp_vals": {}
	}`), decoded)
	require.Error(t, err)
}

// TestOperatorInput_JSONRoundTrip ensures operators, including complex
// values, survive the text form exactly.
func TestOperatorInput_JSONRoundTrip(t *testing.T) {
	in := cheated.NewOperatorInput(1)
	op := []cheated.OperatorEntry{
		{Row: 0, Col: 1, Value: complex(0, -1)},
		{Row: 1, Col: 0, Value: complex(0, 1)},
	}
	require.NoError(t, in.AddOperatorExpVal("y", op, "psi"))

	data, err := json.Marshal(in)
	require.NoError(t, err)

	decoded := cheated.NewOperatorInput(0)
	require.NoError(t, json.Unmarshal(data, decoded))
	require.Equal(t, in.NumberQubits(), decoded.NumberQubits())
	require.Equal(t, in.ExpValNames(), decoded.ExpValNames())

	// Y on (|0⟩+i|1⟩)/√2 reads +1 on both original and decoded inputs.
	complexes := register.ComplexRegisters{"psi": {{
		complex(0.7071067811865476, 0),
		complex(0, 0.7071067811865476),
	}}}
	want, err := in.Evaluate(nil, nil, complexes)
	require.NoError(t, err)
	got, err := decoded.Evaluate(nil, nil, complexes)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.InDelta(t, 1.0, got["y"], 1e-12)
}

// TestOperatorInput_BinaryRoundTrip covers the CBOR form.
func TestOperatorInput_BinaryRoundTrip(t *testing.T) {
	in := cheated.NewOperatorInput(2)
	op := []cheated.OperatorEntry{{Row: 3, Col: 3, Value: complex(2.5, 0)}}
	require.NoError(t, in.AddOperatorExpVal("proj", op, "rho"))

	data, err := in.MarshalBinary()
	require.NoError(t, err)

	decoded := cheated.NewOperatorInput(0)
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.Equal(t, in.NumberQubits(), decoded.NumberQubits())
	require.Equal(t, in.ExpValNames(), decoded.ExpValNames())
}

// TestOperatorInput_DecodeRejectsOutOfRangeEntry: decoded entries are
// validated against the carried qubit count.
func TestOperatorInput_DecodeRejectsOutOfRangeEntry(t *testing.T) {
	decoded := cheated.NewOperatorInput(0)
	err := json.Unmarshal([]byte(`{
		"number_qubits": 1,
		"measured_operators": {
			"bad": {"readout": "psi", "operator": [{"row": 4, "col": 0, "re": 1, "im": 0}]}
		}
	}`), decoded)
	require.ErrorIs(t, err, cheated.ErrOperatorDimension)
}
