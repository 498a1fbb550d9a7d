// Package pauliz evaluates PauliZ-product measurements: shot-sampled bit
// registers reduced to named observable expectation values.
//
// What:
//
//   - Input — registers Pauli products as qubit masks per readout and
//     named expectation-value formulas over their indices.
//   - Evaluate — per-shot parity signs, shot means, then linear/symbolic
//     combination into a name→value map.
//   - Optional flipped-measurement symmetrization: each readout is paired
//     with a "<readout>_flipped" register and the two series' means are
//     averaged, cancelling asymmetric readout errors.
//
// Why:
//
//   - Measuring a product of Pauli-Z operators on hardware reduces to bit
//     parity: (-1)^(set bits in the mask). Everything an observable needs
//     is which qubits to look at and how to weigh the products.
//
// Algorithm outline:
//  1. For each registered (readout, mask, index), fetch the bit table
//     (ErrRegisterNotFound if absent; rows must be rectangular and at
//     least NumberQubits wide).
//  2. Per shot: sign = +1 for even parity at the mask positions, -1 for
//     odd; the empty mask is +1 on every shot.
//  3. Value[index] = mean of sign over shots (with flipped measurement,
//     the mean of the normal and flipped series' means).
//  4. Combine values into named results via the formula registry.
//
// Complexity:
//
//   - Evaluate: O(shots × Σ mask sizes) + combination, Memory: O(products).
//
// Errors:
//
//   - ErrQubitOutOfRange: a mask qubit is ≥ NumberQubits (registration).
//   - register.ErrRegisterNotFound, register.ErrDimensionMismatch,
//     formula.ErrIndexOutOfRange, formula.ErrSymbolicEval (evaluation).
//
// Input is mutable during registration and must be treated as frozen once
// evaluation starts; concurrent Evaluate calls on a frozen Input are safe.
package pauliz
