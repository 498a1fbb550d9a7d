// Package pauliz defines the PauliZ-product measurement input: qubit-mask
// registration, sentinel errors, and construction options.
package pauliz

import (
	"errors"

	"github.com/qlens/expval/formula"
)

// ErrQubitOutOfRange indicates a Pauli-product mask references a qubit
// outside the measured range [0, NumberQubits).
var ErrQubitOutOfRange = errors.New("pauliz: pauli product qubit exceeds number of qubits")

// FlippedSuffix is appended to a readout name to locate the complementary
// measurement series when flipped-measurement symmetrization is enabled.
const FlippedSuffix = "_flipped"

// Input collects everything needed to evaluate a PauliZ-product
// measurement: which qubit subsets form each Pauli product, and how the
// resulting values combine into named expectation values.
//
// Build it with AddPauliZProduct / AddLinearExpVal / AddSymbolicExpVal,
// then treat it as frozen: concurrent Evaluate calls on a frozen Input are
// safe, but registration and evaluation must not interleave.
type Input struct {
	numberQubits          int
	useFlippedMeasurement bool
	numberPauliProducts   int
	// masks[readout][index] is the canonical (sorted, deduplicated) qubit
	// subset of the Pauli product registered under index.
	masks    map[string]map[int][]int
	formulas *formula.Registry
	calc     formula.Calculator
}

// Option adjusts Input construction.
type Option func(*Input)

// WithCalculator substitutes the expression engine used for symbolic
// expectation values.
func WithCalculator(c formula.Calculator) Option {
	return func(in *Input) { in.calc = c }
}

// NewInput returns an empty PauliZ-product measurement input for
// numberQubits measured qubits. With useFlippedMeasurement set, evaluation
// additionally reads a "<readout>_flipped" register per readout and
// symmetrizes readout errors between the two series.
func NewInput(numberQubits int, useFlippedMeasurement bool, opts ...Option) *Input {
	in := &Input{
		numberQubits:          numberQubits,
		useFlippedMeasurement: useFlippedMeasurement,
		masks:                 make(map[string]map[int][]int),
		formulas:              formula.NewRegistry(),
		calc:                  formula.DefaultCalculator(),
	}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

// NumberQubits reports the number of measured qubits.
func (in *Input) NumberQubits() int { return in.numberQubits }

// NumberPauliProducts reports how many distinct Pauli products are
// registered. It never decreases.
func (in *Input) NumberPauliProducts() int { return in.numberPauliProducts }

// UseFlippedMeasurement reports whether readout-error symmetrization via
// flipped measurements is enabled.
func (in *Input) UseFlippedMeasurement() bool { return in.useFlippedMeasurement }

// ExpValNames returns the registered expectation-value names in ascending
// order.
func (in *Input) ExpValNames() []string { return in.formulas.Names() }
