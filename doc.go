// Package expval turns raw per-shot quantum readout registers into named
// observable expectation values.
//
// 🚀 What is expval?
//
//	A pure, deterministic evaluation library that brings together:
//		• register/ — named per-shot readout tables (bit, float, complex)
//		• pauliz/   — Pauli-Z products from sampled bits: parity signs,
//		  shot means, optional flipped-measurement symmetrization
//		• cheated/  — noise-free variants: pre-digested product samples
//		  and sparse operators against exposed statevectors or density
//		  matrices
//		• formula/  — linear and symbolic combination of product values
//		  into named results
//		• measure/  — one tagged union over all kinds, with stable JSON
//		  and CBOR round-trips
//
// ✨ Why choose expval?
//
//   - Builder-then-freeze API – register products and formulas, then run
//     any number of concurrent evaluations
//   - Typed errors everywhere – malformed registers and stale indices are
//     results, never panics
//   - Exact semantics – parity, means, ⟨ψ|O|ψ⟩ and Tr(O·ρ) with no hidden
//     tolerance or correction
//
// Quick sketch:
//
//	in := pauliz.NewInput(3, false)
//	idx, _ := in.AddPauliZProduct("ro", []int{0, 2})
//	_ = in.AddLinearExpVal("energy", map[int]float64{idx: 0.5})
//	vals, err := in.Evaluate(bits, nil, nil)
//
// Dive into the per-package docs for algorithms, complexity and the full
// error taxonomy.
package expval
