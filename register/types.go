// Package register defines the raw readout tables consumed by measurement
// evaluation and the sentinel errors shared by all evaluators.
package register

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all measurement evaluators.
var (
	// ErrRegisterNotFound indicates a referenced readout register is absent.
	ErrRegisterNotFound = errors.New("register: readout register not found")
	// ErrDimensionMismatch indicates a register table has the wrong shape.
	ErrDimensionMismatch = errors.New("register: register dimension mismatch")
)

// BitRegisters maps a readout name to its per-shot bit rows.
// Each row is one sampled execution; row[q] is the measured bit of qubit q.
type BitRegisters map[string][][]bool

// FloatRegisters maps a readout name to its per-shot float rows.
type FloatRegisters map[string][][]float64

// ComplexRegisters maps a readout name to its per-shot complex rows,
// holding either statevector amplitudes or a flattened density matrix.
type ComplexRegisters map[string][][]complex128

// Width returns the common row width of a readout table.
// It fails with ErrDimensionMismatch when the table holds no shots or
// when rows have differing widths.
func Width[T any](rows [][]T) (int, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("register: table holds no shots: %w", ErrDimensionMismatch)
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return 0, fmt.Errorf("register: row %d has width %d, want %d: %w",
				i, len(rows[i]), want, ErrDimensionMismatch)
		}
	}

	return want, nil
}
