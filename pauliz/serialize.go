package pauliz

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/qlens/expval/formula"
)

// Wire form shared by the JSON (text) and CBOR (binary) encodings.
// NumberPauliProducts is carried explicitly and cross-checked against the
// mask count on decode.
type inputWire struct {
	NumberQubits          int                      `json:"number_qubits" cbor:"number_qubits"`
	UseFlippedMeasurement bool                     `json:"use_flipped_measurement" cbor:"use_flipped_measurement"`
	NumberPauliProducts   int                      `json:"number_pauli_products" cbor:"number_pauli_products"`
	PauliProductMasks     map[string]map[int][]int `json:"pauli_product_qubit_masks" cbor:"pauli_product_qubit_masks"`
	MeasuredExpVals       *formula.Registry        `json:"measured_exp_vals" cbor:"measured_exp_vals"`
}

func (in *Input) wire() inputWire {
	masks := make(map[string]map[int][]int, len(in.masks))
	for readout := range in.masks {
		masks[readout] = in.MasksFor(readout)
	}

	return inputWire{
		NumberQubits:          in.numberQubits,
		UseFlippedMeasurement: in.useFlippedMeasurement,
		NumberPauliProducts:   in.numberPauliProducts,
		PauliProductMasks:     masks,
		MeasuredExpVals:       in.formulas,
	}
}

func (in *Input) fromWire(w inputWire) error {
	total := 0
	for readout, byIndex := range w.PauliProductMasks {
		for index, mask := range byIndex {
			if index < 0 || index >= w.NumberPauliProducts {
				return fmt.Errorf("pauliz: decoded mask index %d on %q outside [0, %d)",
					index, readout, w.NumberPauliProducts)
			}
			byIndex[index] = canonicalMask(mask)
		}
		total += len(byIndex)
	}
	if total != w.NumberPauliProducts {
		return fmt.Errorf("pauliz: decoded %d masks, header says %d pauli products",
			total, w.NumberPauliProducts)
	}

	in.numberQubits = w.NumberQubits
	in.useFlippedMeasurement = w.UseFlippedMeasurement
	in.numberPauliProducts = w.NumberPauliProducts
	in.masks = w.PauliProductMasks
	if in.masks == nil {
		in.masks = make(map[string]map[int][]int)
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
func (in *Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.wire())
}

// UnmarshalJSON decodes the text form, replacing the input contents.
func (in *Input) UnmarshalJSON(data []byte) error {
	w := inputWire{MeasuredExpVals: formula.NewRegistry()}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	return in.fromWire(w)
}

// MarshalBinary encodes the input in its stable binary (CBOR) form.
func (in *Input) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(in.wire())
}

// UnmarshalBinary decodes the binary form, replacing the input contents.
func (in *Input) UnmarshalBinary(data []byte) error {
	w := inputWire{MeasuredExpVals: formula.NewRegistry()}
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}

	return in.fromWire(w)
}
