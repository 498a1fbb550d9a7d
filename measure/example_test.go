package measure_test

import (
	"fmt"

	"github.com/qlens/expval/cheated"
	"github.com/qlens/expval/measure"
	"github.com/qlens/expval/register"
)

// Scenario:
//
//	A simulator exposes the statevector of one qubit prepared in |1⟩.
//	The observable is Z = diag(1, -1), so the expectation value is -1
//	with no sampling noise at all.
func ExampleMeasurement_Evaluate() {
	in := cheated.NewOperatorInput(1)
	z := []cheated.OperatorEntry{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: -1},
	}
	if err := in.AddOperatorExpVal("z", z, "psi"); err != nil {
		fmt.Println("error:", err)

		return
	}

	m := measure.FromCheatedOperator(in)
	results, err := m.Evaluate(nil, nil, register.ComplexRegisters{"psi": {{0, 1}}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("kind=%s z=%v\n", m.Kind(), results["z"])
	// Output:
	// kind=cheated z=-1
}
