package cheated

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/qlens/expval/formula"
)

// Wire forms shared by the JSON (text) and CBOR (binary) encodings.
// Complex values travel as re/im pairs since neither codec carries
// complex128 natively.

type entryWire struct {
	Row int     `json:"row" cbor:"row"`
	Col int     `json:"col" cbor:"col"`
	Re  float64 `json:"re" cbor:"re"`
	Im  float64 `json:"im" cbor:"im"`
}

// MarshalJSON encodes the entry with its complex value as re/im fields.
func (e OperatorEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryWire{Row: e.Row, Col: e.Col, Re: real(e.Value), Im: imag(e.Value)})
}

// UnmarshalJSON decodes the re/im wire form.
func (e *OperatorEntry) UnmarshalJSON(data []byte) error {
	var w entryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = OperatorEntry{Row: w.Row, Col: w.Col, Value: complex(w.Re, w.Im)}

	return nil
}

// MarshalCBOR encodes the entry with its complex value as re/im fields.
func (e OperatorEntry) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(entryWire{Row: e.Row, Col: e.Col, Re: real(e.Value), Im: imag(e.Value)})
}

// UnmarshalCBOR decodes the re/im wire form.
func (e *OperatorEntry) UnmarshalCBOR(data []byte) error {
	var w entryWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = OperatorEntry{Row: w.Row, Col: w.Col, Value: complex(w.Re, w.Im)}

	return nil
}

type pauliZWire struct {
	PauliProductKeys map[string]int    `json:"pauli_product_keys" cbor:"pauli_product_keys"`
	MeasuredExpVals  *formula.Registry `json:"measured_exp_vals" cbor:"measured_exp_vals"`
}

func (in *PauliZInput) wire() pauliZWire {
	keys := make(map[string]int, len(in.keys))
	for readout, index := range in.keys {
		keys[readout] = index
	}

	return pauliZWire{PauliProductKeys: keys, MeasuredExpVals: in.formulas}
}

func (in *PauliZInput) fromWire(w pauliZWire) error {
	seen := make(map[int]string, len(w.PauliProductKeys))
	for readout, index := range w.PauliProductKeys {
		if index < 0 || index >= len(w.PauliProductKeys) {
			return fmt.Errorf("cheated: decoded index %d for %q outside [0, %d)",
				index, readout, len(w.PauliProductKeys))
		}
		if other, dup := seen[index]; dup {
			return fmt.Errorf("cheated: decoded index %d claimed by both %q and %q",
				index, other, readout)
		}
		seen[index] = readout
	}

	in.keys = w.PauliProductKeys
	if in.keys == nil {
		in.keys = make(map[string]int)
	}
	in.formulas = w.MeasuredExpVals
	if in.formulas == nil {
		in.formulas = formula.NewRegistry()
	}
	if in.calc == nil {
		in.calc = formula.DefaultCalculator()
	}

	return nil
}

// MarshalJSON encodes the input in its stable text form.
func (in *PauliZInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.wire())
}

// UnmarshalJSON decodes the text form, replacing the input contents.
func (in *PauliZInput) UnmarshalJSON(data []byte) error {
	w := pauliZWire{MeasuredExpVals: formula.NewRegistry()}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	return in.fromWire(w)
}

// MarshalBinary encodes the input in its stable binary (CBOR) form.
func (in *PauliZInput) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(in.wire())
}

// UnmarshalBinary decodes the binary form, replacing the input contents.
func (in *PauliZInput) UnmarshalBinary(data []byte) error {
	w := pauliZWire{MeasuredExpVals: formula.NewRegistry()}
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}

	return in.fromWire(w)
}

type operatorWire struct {
	Readout string          `json:"readout" cbor:"readout"`
	Entries []OperatorEntry `json:"operator" cbor:"operator"`
}

type operatorInputWire struct {
	NumberQubits      int                     `json:"number_qubits" cbor:"number_qubits"`
	MeasuredOperators map[string]operatorWire `json:"measured_operators" cbor:"measured_operators"`
}

func (in *OperatorInput) wire() operatorInputWire {
	ops := make(map[string]operatorWire, len(in.operators))
	for name, op := range in.operators {
		ops[name] = operatorWire{
			Readout: op.readout,
			Entries: append([]OperatorEntry(nil), op.entries...),
		}
	}

	return operatorInputWire{NumberQubits: in.numberQubits, MeasuredOperators: ops}
}

func (in *OperatorInput) fromWire(w operatorInputWire) error {
	dim := 1 << w.NumberQubits
	operators := make(map[string]measuredOperator, len(w.MeasuredOperators))
	for name, op := range w.MeasuredOperators {
		for _, e := range op.Entries {
			if e.Row < 0 || e.Row >= dim || e.Col < 0 || e.Col >= dim {
				return fmt.Errorf("cheated: decoded entry (%d,%d) of %q with %d qubits: %w",
					e.Row, e.Col, name, w.NumberQubits, ErrOperatorDimension)
			}
		}
		operators[name] = measuredOperator{entries: op.Entries, readout: op.Readout}
	}

	in.numberQubits = w.NumberQubits
	in.operators = operators

	return nil
}

// MarshalJSON encodes the input in its stable text form.
func (in *OperatorInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.wire())
}

// UnmarshalJSON decodes the text form, replacing the input contents.
func (in *OperatorInput) UnmarshalJSON(data []byte) error {
	var w operatorInputWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	return in.fromWire(w)
}

// MarshalBinary encodes the input in its stable binary (CBOR) form.
func (in *OperatorInput) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(in.wire())
}

// UnmarshalBinary decodes the binary form, replacing the input contents.
func (in *OperatorInput) UnmarshalBinary(data []byte) error {
	var w operatorInputWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}

	return in.fromWire(w)
}
