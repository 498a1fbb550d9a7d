package formula_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qlens/expval/formula"
)

// TestExprCalculator_Arithmetic covers plain arithmetic, including
// integer-typed results being converted to float64.
func TestExprCalculator_Arithmetic(t *testing.T) {
	calc := formula.ExprCalculator{}

	v, err := calc.Evaluate("2 + 3", nil)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = calc.Evaluate("x * y - 1.5", map[string]float64{"x": 2.0, "y": 4.0})
	require.NoError(t, err)
	require.Equal(t, 6.5, v)
}

// TestExprCalculator_ElementaryFunctions exercises the bound math
// functions and constants.
func TestExprCalculator_ElementaryFunctions(t *testing.T) {
	calc := formula.ExprCalculator{}

	v, err := calc.Evaluate("sin(0.0) + cos(0.0)", nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, v, 1e-12)

	v, err = calc.Evaluate("exp(log(x))", map[string]float64{"x": 7.0})
	require.NoError(t, err)
	require.InDelta(t, 7.0, v, 1e-12)

	v, err = calc.Evaluate("pow(sqrt(x), 2)", map[string]float64{"x": 9.0})
	require.NoError(t, err)
	require.InDelta(t, 9.0, v, 1e-12)
}

// TestExprCalculator_UnknownVariable ensures unknown identifiers are a
// compile error, not a silent zero.
func TestExprCalculator_UnknownVariable(t *testing.T) {
	calc := formula.ExprCalculator{}

	_, err := calc.Evaluate("missing + 1", map[string]float64{"present": 1.0})
	require.Error(t, err)
}

// TestExprCalculator_MalformedExpression ensures syntax errors are
// reported.
func TestExprCalculator_MalformedExpression(t *testing.T) {
	calc := formula.ExprCalculator{}

	_, err := calc.Evaluate("1 + * 2", nil)
	require.Error(t, err)
}

// TestVariableName pins the hardcoded variable scheme.
func TestVariableName(t *testing.T) {
	require.Equal(t, "pauli_product_0", formula.VariableName(0))
	require.Equal(t, "pauli_product_12", formula.VariableName(12))
}
