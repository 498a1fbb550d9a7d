// Package measure exposes the closed set of measurement kinds behind one
// tagged union.
//
// What:
//
//   - Evaluator — the shared capability: (bit, float, complex registers) →
//     name→value map, total and read-only.
//   - Measurement — wraps exactly one of pauliz.Input,
//     cheated.PauliZInput or cheated.OperatorInput with a Kind tag.
//   - JSON (text) and CBOR (binary) envelopes so any kind round-trips
//     through one codec call.
//
// Why:
//
//   - Callers that store or transport measurement definitions need one
//     value type covering all kinds; the set is closed, so a tagged union
//     beats an open interface hierarchy.
//
// Errors:
//
//   - ErrUnknownKind: a decoded kind tag is not recognized.
//   - ErrEmptyMeasurement: the zero Measurement was evaluated or encoded.
//
// A Measurement is immutable once evaluation begins; concurrent Evaluate
// calls against the same frozen value with different registers are safe.
package measure
