package cheated

import (
	"fmt"
	"sort"

	"github.com/qlens/expval/formula"
	"github.com/qlens/expval/register"
)

// PauliZInput collects everything needed to evaluate a pre-digested
// PauliZ-product measurement: the simulator has already reduced each shot
// to a ±1-valued Pauli-product sample, one float register per product.
//
// Build it with AddPauliZProduct / AddLinearExpVal / AddSymbolicExpVal,
// then treat it as frozen; concurrent Evaluate calls on a frozen input are
// safe.
type PauliZInput struct {
	// keys maps a readout register name to its Pauli-product index.
	keys     map[string]int
	formulas *formula.Registry
	calc     formula.Calculator
}

// PauliZOption adjusts PauliZInput construction.
type PauliZOption func(*PauliZInput)

// WithPauliZCalculator substitutes the expression engine used for symbolic
// expectation values.
func WithPauliZCalculator(c formula.Calculator) PauliZOption {
	return func(in *PauliZInput) { in.calc = c }
}

// NewPauliZInput returns an empty pre-digested PauliZ-product input.
func NewPauliZInput(opts ...PauliZOption) *PauliZInput {
	in := &PauliZInput{
		keys:     make(map[string]int),
		formulas: formula.NewRegistry(),
		calc:     formula.DefaultCalculator(),
	}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

// AddPauliZProduct registers the float readout register holding one
// Pauli-product sample per shot and returns the product's index.
// Re-registering a readout returns its existing index, so registration is
// idempotent; indices are assigned contiguously from 0.
func (in *PauliZInput) AddPauliZProduct(readout string) int {
	if index, ok := in.keys[readout]; ok {
		return index
	}
	index := len(in.keys)
	in.keys[readout] = index

	return index
}

// AddLinearExpVal registers a named expectation value defined as a linear
// combination of Pauli-product values (index→coefficient).
// Fails with formula.ErrDuplicateName when the name is already taken.
func (in *PauliZInput) AddLinearExpVal(name string, linear map[int]float64) error {
	return in.formulas.AddLinear(name, linear)
}

// AddSymbolicExpVal registers a named expectation value defined by a
// symbolic expression over pauli_product_i variables.
// Fails with formula.ErrDuplicateName when the name is already taken.
func (in *PauliZInput) AddSymbolicExpVal(name, expression string) error {
	return in.formulas.AddSymbolic(name, expression)
}

// NumberPauliProducts reports how many Pauli products are registered.
func (in *PauliZInput) NumberPauliProducts() int { return len(in.keys) }

// Readouts returns the registered readout names in ascending order.
func (in *PauliZInput) Readouts() []string {
	names := make([]string, 0, len(in.keys))
	for name := range in.keys {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Index returns the Pauli-product index registered for readout.
func (in *PauliZInput) Index(readout string) (int, bool) {
	index, ok := in.keys[readout]

	return index, ok
}

// ExpValNames returns the registered expectation-value names in ascending
// order.
func (in *PauliZInput) ExpValNames() []string { return in.formulas.Names() }

// Evaluate computes the named expectation values from pre-digested float
// registers. Each registered readout must be present
// (register.ErrRegisterNotFound) and hold exactly one column per shot
// (register.ErrDimensionMismatch); the Pauli-product value is the mean of
// that column. The bit and complex register maps satisfy the common
// evaluator signature and are not consulted.
func (in *PauliZInput) Evaluate(
	_ register.BitRegisters,
	floats register.FloatRegisters,
	_ register.ComplexRegisters,
) (map[string]float64, error) {
	values := make([]float64, len(in.keys))
	for _, readout := range in.Readouts() {
		rows, ok := floats[readout]
		if !ok {
			return nil, fmt.Errorf("cheated: float register %q: %w",
				readout, register.ErrRegisterNotFound)
		}
		width, err := register.Width(rows)
		if err != nil {
			return nil, err
		}
		if width != 1 {
			return nil, fmt.Errorf("cheated: float register %q rows have %d columns, want 1: %w",
				readout, width, register.ErrDimensionMismatch)
		}

		var sum float64
		for _, row := range rows {
			sum += row[0]
		}
		values[in.keys[readout]] = sum / float64(len(rows))
	}

	return in.formulas.Combine(values, in.calc)
}
