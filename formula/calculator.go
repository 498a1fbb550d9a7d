package formula

import (
	"fmt"
	"math"
	"strconv"

	"github.com/expr-lang/expr"
)

// Calculator evaluates a symbolic expression against a set of float
// variables. Implementations must support arithmetic and elementary
// functions (sin, cos, exp, ...) and must return an error — not a silent
// zero — for expressions referencing unknown variables.
type Calculator interface {
	Evaluate(expression string, variables map[string]float64) (float64, error)
}

// VariableName returns the symbolic variable bound to Pauli product index i.
// The i-th Pauli product is hardcoded as pauli_product_i in expressions.
func VariableName(i int) string {
	return "pauli_product_" + strconv.Itoa(i)
}

// DefaultCalculator returns the expression engine used when no custom
// Calculator is supplied.
func DefaultCalculator() Calculator { return ExprCalculator{} }

// ExprCalculator evaluates expressions with github.com/expr-lang/expr.
//
// Beyond the caller's variables the environment binds the elementary
// functions sin, cos, tan, asin, acos, atan, sinh, cosh, tanh, exp, log,
// sqrt, abs and pow, and the constants pi and e. Unknown identifiers are
// rejected at compile time, so a formula referencing an unregistered
// pauli_product_i fails instead of evaluating to zero.
type ExprCalculator struct{}

// Evaluate compiles and runs expression against variables.
func (ExprCalculator) Evaluate(expression string, variables map[string]float64) (float64, error) {
	env := make(map[string]any, len(variables)+16)
	for name, fn := range elementaryFunctions {
		env[name] = fn
	}
	env["pow"] = math.Pow
	env["pi"] = math.Pi
	env["e"] = math.E
	for name, value := range variables {
		env[name] = value
	}

	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return 0, fmt.Errorf("compile %q: %w", expression, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return 0, fmt.Errorf("run %q: %w", expression, err)
	}

	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expression %q produced %T, want a number", expression, out)
	}
}

var elementaryFunctions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}
