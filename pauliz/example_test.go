package pauliz_test

import (
	"fmt"
	"sort"

	"github.com/qlens/expval/pauliz"
	"github.com/qlens/expval/register"
)

// Scenario:
//
//	Two qubits measured into readout "ro"; the observable is
//	0.5·⟨Z0⟩ + 0.5·⟨Z0 Z1⟩. Four shots: twice [1,0], twice [0,0].
//
// ⟨Z0⟩ averages (−1 −1 +1 +1)/4 = 0, ⟨Z0 Z1⟩ averages (−1 −1 +1 +1)/4 = 0
// on the first product and (−1 −1 +1 +1)/4 for the pair — shots with a
// single set bit read −1 on both products.
//
// Complexity: O(shots × Σ mask sizes).
func ExampleInput_Evaluate() {
	in := pauliz.NewInput(2, false)
	z0, _ := in.AddPauliZProduct("ro", []int{0})
	z01, _ := in.AddPauliZProduct("ro", []int{0, 1})
	_ = in.AddLinearExpVal("obs", map[int]float64{z0: 0.5, z01: 0.5})

	bits := register.BitRegisters{"ro": {
		{true, false},
		{true, false},
		{false, false},
		{false, false},
	}}
	results, err := in.Evaluate(bits, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s=%v\n", name, results[name])
	}
	// Output:
	// obs=0
}
