package measure

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/qlens/expval/cheated"
	"github.com/qlens/expval/pauliz"
)

// Envelope forms: a kind tag plus the variant's own encoding, so a
// heterogeneous measurement round-trips through either codec.

type jsonEnvelope struct {
	Kind  Kind            `json:"kind"`
	Input json.RawMessage `json:"input"`
}

type cborEnvelope struct {
	Kind  Kind            `cbor:"kind"`
	Input cbor.RawMessage `cbor:"input"`
}

// MarshalJSON encodes the measurement in its stable text form.
func (m Measurement) MarshalJSON() ([]byte, error) {
	ev, err := m.evaluator()
	if err != nil {
		return nil, err
	}
	input, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}

	return json.Marshal(jsonEnvelope{Kind: m.Kind(), Input: input})
}

// UnmarshalJSON decodes the text form, replacing the measurement contents.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Kind {
	case KindPauliZProduct:
		in := pauliz.NewInput(0, false)
		if err := json.Unmarshal(env.Input, in); err != nil {
			return err
		}
		*m = FromPauliZ(in)
	case KindCheatedPauliZProduct:
		in := cheated.NewPauliZInput()
		if err := json.Unmarshal(env.Input, in); err != nil {
			return err
		}
		*m = FromCheatedPauliZ(in)
	case KindCheatedOperator:
		in := cheated.NewOperatorInput(0)
		if err := json.Unmarshal(env.Input, in); err != nil {
			return err
		}
		*m = FromCheatedOperator(in)
	default:
		return fmt.Errorf("measure: decode kind %q: %w", env.Kind, ErrUnknownKind)
	}

	return nil
}

// MarshalBinary encodes the measurement in its stable binary (CBOR) form.
func (m Measurement) MarshalBinary() ([]byte, error) {
	var (
		input []byte
		err   error
	)
	switch {
	case m.pauliZ != nil:
		input, err = m.pauliZ.MarshalBinary()
	case m.cheatedPauliZ != nil:
		input, err = m.cheatedPauliZ.MarshalBinary()
	case m.cheatedOperator != nil:
		input, err = m.cheatedOperator.MarshalBinary()
	default:
		return nil, fmt.Errorf("measure: encode: %w", ErrEmptyMeasurement)
	}
	if err != nil {
		return nil, err
	}

	return cbor.Marshal(cborEnvelope{Kind: m.Kind(), Input: input})
}

// UnmarshalBinary decodes the binary form, replacing the measurement
// contents.
func (m *Measurement) UnmarshalBinary(data []byte) error {
	var env cborEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Kind {
	case KindPauliZProduct:
		in := pauliz.NewInput(0, false)
		if err := in.UnmarshalBinary(env.Input); err != nil {
			return err
		}
		*m = FromPauliZ(in)
	case KindCheatedPauliZProduct:
		in := cheated.NewPauliZInput()
		if err := in.UnmarshalBinary(env.Input); err != nil {
			return err
		}
		*m = FromCheatedPauliZ(in)
	case KindCheatedOperator:
		in := cheated.NewOperatorInput(0)
		if err := in.UnmarshalBinary(env.Input); err != nil {
			return err
		}
		*m = FromCheatedOperator(in)
	default:
		return fmt.Errorf("measure: decode kind %q: %w", env.Kind, ErrUnknownKind)
	}

	return nil
}
