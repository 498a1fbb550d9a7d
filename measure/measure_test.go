package measure_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qlens/expval/cheated"
	"github.com/qlens/expval/measure"
	"github.com/qlens/expval/pauliz"
	"github.com/qlens/expval/register"
)

func pauliZMeasurement(t *testing.T) measure.Measurement {
	t.Helper()
	in := pauliz.NewInput(2, false)
	index, err := in.AddPauliZProduct("ro", []int{0})
	require.NoError(t, err)
	require.NoError(t, in.AddLinearExpVal("z0", map[int]float64{index: 1.0}))

	return measure.FromPauliZ(in)
}

// TestMeasurement_Kind verifies the tag of each wrapped variant.
func TestMeasurement_Kind(t *testing.T) {
	require.Equal(t, measure.KindPauliZProduct, pauliZMeasurement(t).Kind())
	require.Equal(t, measure.KindCheatedPauliZProduct,
		measure.FromCheatedPauliZ(cheated.NewPauliZInput()).Kind())
	require.Equal(t, measure.KindCheatedOperator,
		measure.FromCheatedOperator(cheated.NewOperatorInput(1)).Kind())
	require.Equal(t, measure.Kind(""), measure.Measurement{}.Kind())
}

// TestMeasurement_Dispatch runs each variant through the union and checks
// the kind-specific register map is consulted.
func TestMeasurement_Dispatch(t *testing.T) {
	m := pauliZMeasurement(t)
	results, err := m.Evaluate(register.BitRegisters{"ro": {{true, false}}}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"z0": -1.0}, results)

	cin := cheated.NewPauliZInput()
	cin.AddPauliZProduct("ro")
	require.NoError(t, cin.AddLinearExpVal("obs", map[int]float64{0: 2.0}))
	results, err = measure.FromCheatedPauliZ(cin).Evaluate(nil,
		register.FloatRegisters{"ro": {{0.5}}}, nil)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"obs": 1.0}, results)

	oin := cheated.NewOperatorInput(1)
	z := []cheated.OperatorEntry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: -1}}
	require.NoError(t, oin.AddOperatorExpVal("z", z, "psi"))
	results, err = measure.FromCheatedOperator(oin).Evaluate(nil, nil,
		register.ComplexRegisters{"psi": {{1, 0}}})
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"z": 1.0}, results)
}

// TestMeasurement_ZeroValue fails every operation with a typed error.
func TestMeasurement_ZeroValue(t *testing.T) {
	var m measure.Measurement

	_, err := m.Evaluate(nil, nil, nil)
	require.ErrorIs(t, err, measure.ErrEmptyMeasurement)
	_, err = m.MarshalBinary()
	require.ErrorIs(t, err, measure.ErrEmptyMeasurement)
}

// TestMeasurement_Accessors returns the wrapped input only for the
// matching kind.
func TestMeasurement_Accessors(t *testing.T) {
	m := pauliZMeasurement(t)

	_, ok := m.PauliZ()
	require.True(t, ok)
	_, ok = m.CheatedPauliZ()
	require.False(t, ok)
	_, ok = m.CheatedOperator()
	require.False(t, ok)
}

// TestMeasurement_ConcurrentEvaluate: a frozen measurement evaluated from
// many goroutines with the same registers is race-free and deterministic.
func TestMeasurement_ConcurrentEvaluate(t *testing.T) {
	m := pauliZMeasurement(t)
	bits := register.BitRegisters{"ro": {{true, false}, {false, false}}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := m.Evaluate(bits, nil, nil)
			require.NoError(t, err)
			require.Equal(t, map[string]float64{"z0": 0.0}, results)
		}()
	}
	wg.Wait()
}
