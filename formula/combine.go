package formula

import "fmt"

// Combine reduces the per-index Pauli-product values into the registry's
// named expectation values.
//
// Linear formulas compute Σ coefficient·values[index] and fail with
// ErrIndexOutOfRange when an index was never populated. Symbolic formulas
// bind every known index as pauli_product_i and delegate to calc; any
// calculator failure (including an unknown variable) is wrapped in
// ErrSymbolicEval.
//
// Combine is total: it returns either a value for every registered name or
// the first error in ascending name order, never a partial map.
func (r *Registry) Combine(values []float64, calc Calculator) (map[string]float64, error) {
	results := make(map[string]float64, len(r.formulas))
	var variables map[string]float64 // built lazily, shared by all symbolic formulas

	for _, name := range r.Names() {
		f := r.formulas[name]
		switch f.kind {
		case Linear:
			var value float64
			for index, coefficient := range f.linear {
				if index < 0 || index >= len(values) {
					return nil, fmt.Errorf(
						"formula: %q references pauli product %d with %d registered: %w",
						name, index, len(values), ErrIndexOutOfRange)
				}
				value += coefficient * values[index]
			}
			results[name] = value
		case Symbolic:
			if variables == nil {
				variables = make(map[string]float64, len(values))
				for i, v := range values {
					variables[VariableName(i)] = v
				}
			}
			value, err := calc.Evaluate(f.expression, variables)
			if err != nil {
				return nil, fmt.Errorf("formula: %q: %w: %w", name, ErrSymbolicEval, err)
			}
			results[name] = value
		}
	}

	return results, nil
}
