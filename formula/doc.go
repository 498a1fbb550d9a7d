// Package formula turns per-index Pauli-product values into named
// expectation values.
//
// What:
//
//   - Formula — linear combination (index→coefficient) or symbolic
//     expression over pauli_product_i variables.
//   - Registry — named formulas, one shared namespace across both kinds.
//   - Combine — reduces a []float64 of Pauli-product values into a
//     name→value map.
//   - Calculator — the expression-engine contract; ExprCalculator is the
//     default implementation backed by github.com/expr-lang/expr.
//
// Why:
//
//   - Observable expectation values are rarely a single Pauli product;
//     they are weighted sums (Hamiltonians) or arbitrary formulas
//     (variational cost functions) over many products.
//
// Complexity:
//
//   - Combine: O(formulas × terms) for linear parts; symbolic parts add
//     one expression compile+run each.
//
// Errors:
//
//   - ErrDuplicateName: an expectation-value name is already registered.
//   - ErrIndexOutOfRange: a linear formula references an unregistered index.
//   - ErrSymbolicEval: the calculator rejected an expression (syntax error,
//     unknown variable, non-numeric result).
package formula
