package pauliz

import (
	"fmt"
	"sort"
)

// AddPauliZProduct registers the Pauli product defined by the qubit subset
// mask on the given readout register and returns its index.
//
// The mask is canonicalized (sorted, deduplicated); equality is set
// equality. Re-registering an existing (readout, mask) pair returns the
// existing index without minting a new one, so registration is idempotent.
// Indices are assigned contiguously from 0 in registration order.
//
// Fails with ErrQubitOutOfRange when any qubit is negative or ≥
// NumberQubits, leaving the input unchanged.
func (in *Input) AddPauliZProduct(readout string, mask []int) (int, error) {
	canonical := canonicalMask(mask)
	for _, q := range canonical {
		if q < 0 || q >= in.numberQubits {
			return 0, fmt.Errorf("pauliz: qubit %d with %d qubits measured: %w",
				q, in.numberQubits, ErrQubitOutOfRange)
		}
	}

	byIndex, ok := in.masks[readout]
	if !ok {
		byIndex = make(map[int][]int)
		in.masks[readout] = byIndex
	}
	for index, existing := range byIndex {
		if equalMasks(existing, canonical) {
			return index, nil
		}
	}

	index := in.numberPauliProducts
	byIndex[index] = canonical
	in.numberPauliProducts++

	return index, nil
}

// AddLinearExpVal registers a named expectation value defined as a linear
// combination of Pauli-product values (index→coefficient).
// Fails with formula.ErrDuplicateName when the name is already taken.
func (in *Input) AddLinearExpVal(name string, linear map[int]float64) error {
	return in.formulas.AddLinear(name, linear)
}

// AddSymbolicExpVal registers a named expectation value defined by a
// symbolic expression over pauli_product_i variables.
// Fails with formula.ErrDuplicateName when the name is already taken.
func (in *Input) AddSymbolicExpVal(name, expression string) error {
	return in.formulas.AddSymbolic(name, expression)
}

// Readouts returns the readout register names carrying Pauli-product masks,
// in ascending order.
func (in *Input) Readouts() []string {
	names := make([]string, 0, len(in.masks))
	for name := range in.masks {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// MasksFor returns a copy of the index→mask table registered on readout.
func (in *Input) MasksFor(readout string) map[int][]int {
	byIndex, ok := in.masks[readout]
	if !ok {
		return nil
	}
	out := make(map[int][]int, len(byIndex))
	for index, mask := range byIndex {
		out[index] = append([]int(nil), mask...)
	}

	return out
}

// canonicalMask sorts and deduplicates a qubit subset.
// The empty (or nil) mask canonicalizes to an empty, non-nil slice.
func canonicalMask(mask []int) []int {
	sorted := append([]int(nil), mask...)
	sort.Ints(sorted)
	out := make([]int, 0, len(sorted))
	for i, q := range sorted {
		if i == 0 || q != sorted[i-1] {
			out = append(out, q)
		}
	}

	return out
}

func equalMasks(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
