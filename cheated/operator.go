package cheated

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/qlens/expval/formula"
	"github.com/qlens/expval/register"
)

// OperatorEntry is one non-zero element of a sparse observable matrix on
// the Hilbert space: O[Row][Col] = Value.
type OperatorEntry struct {
	Row   int
	Col   int
	Value complex128
}

// measuredOperator pairs a sparse observable with the complex readout
// register holding the state it is measured against.
type measuredOperator struct {
	entries []OperatorEntry
	readout string
}

// OperatorInput collects everything needed to evaluate operator
// expectation values directly from exposed statevectors or density
// matrices, bypassing sampling noise.
//
// Build it with AddOperatorExpVal, then treat it as frozen; concurrent
// Evaluate calls on a frozen input are safe.
type OperatorInput struct {
	numberQubits int
	operators    map[string]measuredOperator
}

// NewOperatorInput returns an empty operator-measurement input over a
// Hilbert space of 2^numberQubits dimensions.
func NewOperatorInput(numberQubits int) *OperatorInput {
	return &OperatorInput{
		numberQubits: numberQubits,
		operators:    make(map[string]measuredOperator),
	}
}

// NumberQubits reports the number of qubits spanning the Hilbert space.
func (in *OperatorInput) NumberQubits() int { return in.numberQubits }

// ExpValNames returns the registered expectation-value names in ascending
// order.
func (in *OperatorInput) ExpValNames() []string {
	names := make([]string, 0, len(in.operators))
	for name := range in.operators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// AddOperatorExpVal registers a named operator expectation value: the
// sparse observable op measured against the complex readout register.
//
// Fails with ErrOperatorDimension when any entry index lies outside
// [0, 2^NumberQubits), and with formula.ErrDuplicateName when the name is
// already taken. Either failure leaves the input unchanged.
func (in *OperatorInput) AddOperatorExpVal(name string, op []OperatorEntry, readout string) error {
	dim := 1 << in.numberQubits
	for _, e := range op {
		if e.Row < 0 || e.Row >= dim || e.Col < 0 || e.Col >= dim {
			return fmt.Errorf("cheated: entry (%d,%d) with %d qubits (dimension %d): %w",
				e.Row, e.Col, in.numberQubits, dim, ErrOperatorDimension)
		}
	}
	if _, ok := in.operators[name]; ok {
		return fmt.Errorf("cheated: %q: %w", name, formula.ErrDuplicateName)
	}
	in.operators[name] = measuredOperator{
		entries: append([]OperatorEntry(nil), op...),
		readout: readout,
	}

	return nil
}

// Evaluate computes every registered operator expectation value from
// complex registers.
//
// Each row of a readout is interpreted by width: 2^NumberQubits amplitudes
// form a statevector ψ and contribute ⟨ψ|O|ψ⟩; (2^NumberQubits)² amplitudes
// form a row-major flattened density matrix ρ and contribute Tr(O·ρ). Any
// other width is register.ErrDimensionMismatch. The per-shot real parts
// are averaged over all rows; operator measurements have no further
// combination stage. The bit and float register maps satisfy the common
// evaluator signature and are not consulted.
func (in *OperatorInput) Evaluate(
	_ register.BitRegisters,
	_ register.FloatRegisters,
	complexes register.ComplexRegisters,
) (map[string]float64, error) {
	dim := 1 << in.numberQubits
	results := make(map[string]float64, len(in.operators))
	for _, name := range in.ExpValNames() {
		op := in.operators[name]
		rows, ok := complexes[op.readout]
		if !ok {
			return nil, fmt.Errorf("cheated: complex register %q: %w",
				op.readout, register.ErrRegisterNotFound)
		}
		width, err := register.Width(rows)
		if err != nil {
			return nil, err
		}

		var sum float64
		switch width {
		case dim:
			for _, row := range rows {
				sum += stateExpectation(op.entries, row)
			}
		case dim * dim:
			for _, row := range rows {
				sum += densityExpectation(op.entries, row, dim)
			}
		default:
			return nil, fmt.Errorf(
				"cheated: complex register %q rows have %d amplitudes, want %d or %d: %w",
				op.readout, width, dim, dim*dim, register.ErrDimensionMismatch)
		}
		results[name] = sum / float64(len(rows))
	}

	return results, nil
}

// stateExpectation accumulates ⟨ψ|O|ψ⟩ = Σ conj(ψ[r])·v·ψ[c] over the
// sparse entries and returns its real part.
func stateExpectation(entries []OperatorEntry, state []complex128) float64 {
	var val complex128
	for _, e := range entries {
		val += cmplx.Conj(state[e.Row]) * e.Value * state[e.Col]
	}

	return real(val)
}

// densityExpectation accumulates Tr(O·ρ) = Σ v·ρ[c][r] over the sparse
// entries, with ρ flattened row-major, and returns its real part.
func densityExpectation(entries []OperatorEntry, rho []complex128, dim int) float64 {
	var val complex128
	for _, e := range entries {
		val += e.Value * rho[e.Col*dim+e.Row]
	}

	return real(val)
}
