// Package register holds the raw per-shot readout tables that measurement
// evaluation consumes, plus the sentinel errors every evaluator reports
// when a table is missing or malformed.
//
// What:
//
//   - BitRegisters / FloatRegisters / ComplexRegisters — named tables of
//     per-shot classical outcomes (one row per shot).
//   - Width — validates that all rows of one readout share a single width
//     and that the table holds at least one shot.
//
// Why:
//
//   - A simulator or hardware backend hands back registers by readout name;
//     every measurement kind reads exactly one of the three shapes.
//   - Centralizing the shape check keeps evaluators fail-fast and
//     panic-free on malformed caller input.
//
// Complexity:
//
//   - Width: O(rows), Memory: O(1).
//
// Errors:
//
//   - ErrRegisterNotFound: a referenced readout key is absent.
//   - ErrDimensionMismatch: rows differ in width, hold no shots, or a
//     register has the wrong width for its measurement kind.
package register
