package cheated

import "errors"

// ErrOperatorDimension indicates a sparse operator entry lies outside the
// Hilbert space spanned by the measured qubits.
var ErrOperatorDimension = errors.New("cheated: operator entry exceeds Hilbert space dimension")
