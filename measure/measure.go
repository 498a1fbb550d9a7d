// Package measure ties the three measurement kinds into one dispatchable,
// serializable value.
package measure

import (
	"errors"
	"fmt"

	"github.com/qlens/expval/cheated"
	"github.com/qlens/expval/pauliz"
	"github.com/qlens/expval/register"
)

// Sentinel errors for measurement dispatch and decoding.
var (
	// ErrUnknownKind indicates a measurement kind tag is not recognized.
	ErrUnknownKind = errors.New("measure: unknown measurement kind")
	// ErrEmptyMeasurement indicates a Measurement wraps no input.
	ErrEmptyMeasurement = errors.New("measure: measurement holds no input")
)

// Evaluator is the capability shared by all measurement inputs: reduce raw
// per-shot registers into a name→value map of expectation values.
// Evaluation is total — either a complete map or an error, never both.
type Evaluator interface {
	Evaluate(
		bits register.BitRegisters,
		floats register.FloatRegisters,
		complexes register.ComplexRegisters,
	) (map[string]float64, error)
}

// The three inputs and the wrapper all satisfy Evaluator.
var (
	_ Evaluator = (*pauliz.Input)(nil)
	_ Evaluator = (*cheated.PauliZInput)(nil)
	_ Evaluator = (*cheated.OperatorInput)(nil)
	_ Evaluator = Measurement{}
)

// Kind tags the closed set of measurement variants.
type Kind string

const (
	// KindPauliZProduct measures Pauli-Z products from sampled bit registers.
	KindPauliZProduct Kind = "pauliz_product"
	// KindCheatedPauliZProduct reads pre-digested Pauli-product samples.
	KindCheatedPauliZProduct Kind = "cheated_pauliz_product"
	// KindCheatedOperator evaluates sparse operators against exposed states.
	KindCheatedOperator Kind = "cheated"
)

// Measurement is a tagged union over the three measurement inputs.
// Exactly one variant is set; dispatch is by kind, not inheritance.
// The zero value holds no input and fails every operation.
type Measurement struct {
	pauliZ          *pauliz.Input
	cheatedPauliZ   *cheated.PauliZInput
	cheatedOperator *cheated.OperatorInput
}

// FromPauliZ wraps a PauliZ-product input.
func FromPauliZ(in *pauliz.Input) Measurement {
	return Measurement{pauliZ: in}
}

// FromCheatedPauliZ wraps a pre-digested PauliZ-product input.
func FromCheatedPauliZ(in *cheated.PauliZInput) Measurement {
	return Measurement{cheatedPauliZ: in}
}

// FromCheatedOperator wraps an operator-measurement input.
func FromCheatedOperator(in *cheated.OperatorInput) Measurement {
	return Measurement{cheatedOperator: in}
}

// Kind reports which variant the measurement wraps (empty for the zero
// value).
func (m Measurement) Kind() Kind {
	switch {
	case m.pauliZ != nil:
		return KindPauliZProduct
	case m.cheatedPauliZ != nil:
		return KindCheatedPauliZProduct
	case m.cheatedOperator != nil:
		return KindCheatedOperator
	default:
		return ""
	}
}

// PauliZ returns the wrapped PauliZ-product input, if that is the kind.
func (m Measurement) PauliZ() (*pauliz.Input, bool) {
	return m.pauliZ, m.pauliZ != nil
}

// CheatedPauliZ returns the wrapped pre-digested input, if that is the kind.
func (m Measurement) CheatedPauliZ() (*cheated.PauliZInput, bool) {
	return m.cheatedPauliZ, m.cheatedPauliZ != nil
}

// CheatedOperator returns the wrapped operator input, if that is the kind.
func (m Measurement) CheatedOperator() (*cheated.OperatorInput, bool) {
	return m.cheatedOperator, m.cheatedOperator != nil
}

// Evaluate dispatches to the wrapped input's evaluator.
func (m Measurement) Evaluate(
	bits register.BitRegisters,
	floats register.FloatRegisters,
	complexes register.ComplexRegisters,
) (map[string]float64, error) {
	ev, err := m.evaluator()
	if err != nil {
		return nil, err
	}

	return ev.Evaluate(bits, floats, complexes)
}

func (m Measurement) evaluator() (Evaluator, error) {
	switch {
	case m.pauliZ != nil:
		return m.pauliZ, nil
	case m.cheatedPauliZ != nil:
		return m.cheatedPauliZ, nil
	case m.cheatedOperator != nil:
		return m.cheatedOperator, nil
	default:
		return nil, fmt.Errorf("measure: evaluate: %w", ErrEmptyMeasurement)
	}
}
