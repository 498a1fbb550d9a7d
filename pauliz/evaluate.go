package pauliz

import (
	"fmt"
	"sort"

	"github.com/qlens/expval/register"
)

// Evaluate computes the named expectation values from raw bit registers.
//
// For every registered Pauli product the per-shot sign is the parity of
// the bits at the mask positions: even parity maps to +1, odd to -1, and
// the empty mask is vacuously +1 on every shot. The Pauli-product value is
// the arithmetic mean of the sign over all shots of its readout.
//
// With flipped measurement enabled every readout "name" is evaluated
// against both the "name" and "name_flipped" registers; on the flipped
// series a cleared bit flips parity instead of a set one, and the
// Pauli-product value is the mean of the two series' means.
//
// The float and complex register maps are accepted to satisfy the common
// evaluator signature and are not consulted. Evaluate is read-only and
// fails fast: on the first missing register or malformed table it returns
// the error and no partial results.
func (in *Input) Evaluate(
	bits register.BitRegisters,
	_ register.FloatRegisters,
	_ register.ComplexRegisters,
) (map[string]float64, error) {
	values, err := in.pauliProducts(bits)
	if err != nil {
		return nil, err
	}

	return in.formulas.Combine(values, in.calc)
}

// pauliProducts evaluates every registered Pauli product to its
// shot-averaged ±1 sign.
func (in *Input) pauliProducts(bits register.BitRegisters) ([]float64, error) {
	values := make([]float64, in.numberPauliProducts)
	for _, readout := range in.Readouts() {
		byIndex := in.masks[readout]

		series := []paritySeries{{name: readout, flip: false}}
		if in.useFlippedMeasurement {
			series = append(series, paritySeries{name: readout + FlippedSuffix, flip: true})
		}

		indices := make([]int, 0, len(byIndex))
		for index := range byIndex {
			indices = append(indices, index)
		}
		sort.Ints(indices)

		for _, index := range indices {
			var total float64
			for _, s := range series {
				mean, err := in.seriesMean(bits, s, byIndex[index])
				if err != nil {
					return nil, err
				}
				total += mean
			}
			values[index] = total / float64(len(series))
		}
	}

	return values, nil
}

// paritySeries names one bit register and how its bits enter the parity:
// on the flipped series a cleared bit flips parity, on the normal series a
// set bit does.
type paritySeries struct {
	name string
	flip bool
}

func (in *Input) seriesMean(bits register.BitRegisters, s paritySeries, mask []int) (float64, error) {
	rows, ok := bits[s.name]
	if !ok {
		return 0, fmt.Errorf("pauliz: bit register %q: %w", s.name, register.ErrRegisterNotFound)
	}
	width, err := register.Width(rows)
	if err != nil {
		return 0, err
	}
	if width < in.numberQubits {
		return 0, fmt.Errorf("pauliz: bit register %q rows have width %d, want at least %d: %w",
			s.name, width, in.numberQubits, register.ErrDimensionMismatch)
	}

	if len(mask) == 0 {
		return 1.0, nil
	}

	var sum float64
	for _, row := range rows {
		parity := false
		for _, q := range mask {
			if row[q] != s.flip {
				parity = !parity
			}
		}
		if parity {
			sum--
		} else {
			sum++
		}
	}

	return sum / float64(len(rows)), nil
}
