// Package cheated evaluates measurements that bypass sampling: the
// simulator exposes pre-digested Pauli-product samples or the full quantum
// state, and expectation values are computed analytically.
//
// What:
//
//   - PauliZInput — one float readout register per Pauli product, each row
//     a pre-reduced (±1-valued) sample; values are shot means combined via
//     the formula registry.
//   - OperatorInput — named sparse observables measured against complex
//     registers holding statevectors (width 2^n, ⟨ψ|O|ψ⟩) or row-major
//     density matrices (width 4^n, Tr(O·ρ)); the per-shot real parts are
//     averaged with no further combination stage.
//
// Why:
//
//   - Simulator backends can hand back the exact product value or the full
//     state; evaluating against those removes sampling noise entirely,
//     which is what "cheated" means here.
//
// Complexity:
//
//   - PauliZInput.Evaluate: O(shots × products) + combination.
//   - OperatorInput.Evaluate: O(shots × nonzero entries) per operator.
//
// Errors:
//
//   - ErrOperatorDimension: a sparse entry lies outside [0, 2^n).
//   - formula.ErrDuplicateName: an expectation-value name is reused.
//   - register.ErrRegisterNotFound, register.ErrDimensionMismatch,
//     formula.ErrIndexOutOfRange, formula.ErrSymbolicEval (evaluation).
//
// Both inputs are mutable during registration and must be treated as
// frozen once evaluation starts; concurrent Evaluate calls are then safe.
package cheated
