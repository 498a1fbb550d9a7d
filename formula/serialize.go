package formula

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Wire form shared by the JSON (text) and CBOR (binary) encodings.
// Kind is a string tag so both forms stay readable and stable.
type formulaWire struct {
	Kind       string          `json:"kind" cbor:"kind"`
	Linear     map[int]float64 `json:"linear,omitempty" cbor:"linear,omitempty"`
	Expression string          `json:"expression,omitempty" cbor:"expression,omitempty"`
}

const (
	wireLinear   = "linear"
	wireSymbolic = "symbolic"
)

func (r *Registry) wire() map[string]formulaWire {
	out := make(map[string]formulaWire, len(r.formulas))
	for name, f := range r.formulas {
		switch f.kind {
		case Linear:
			out[name] = formulaWire{Kind: wireLinear, Linear: f.Linear()}
		case Symbolic:
			out[name] = formulaWire{Kind: wireSymbolic, Expression: f.expression}
		}
	}

	return out
}

func (r *Registry) fromWire(in map[string]formulaWire) error {
	formulas := make(map[string]Formula, len(in))
	for name, w := range in {
		switch w.Kind {
		case wireLinear:
			formulas[name] = NewLinear(w.Linear)
		case wireSymbolic:
			formulas[name] = NewSymbolic(w.Expression)
		default:
			return fmt.Errorf("formula: unknown formula kind %q for %q", w.Kind, name)
		}
	}
	r.formulas = formulas

	return nil
}

// MarshalJSON encodes the registry as a name→formula map.
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON decodes a name→formula map, replacing the registry contents.
func (r *Registry) UnmarshalJSON(data []byte) error {
	var in map[string]formulaWire
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	return r.fromWire(in)
}

// MarshalCBOR encodes the registry in the stable binary form.
func (r *Registry) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(r.wire())
}

// UnmarshalCBOR decodes the binary form, replacing the registry contents.
func (r *Registry) UnmarshalCBOR(data []byte) error {
	var in map[string]formulaWire
	if err := cbor.Unmarshal(data, &in); err != nil {
		return err
	}

	return r.fromWire(in)
}
