package equation_test

import (
	"fmt"

	"github.com/matthewg-rev/fmatrix-solver/equation"
)

// ExampleNormalize shows implicit coefficients, sign handling and a constant
// written on the left-hand side.
func ExampleNormalize() {
	eq, err := equation.Normalize("-4 = x - 2y + 3x")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(eq.Variables, eq.Coefficients, eq.Constant)
	fmt.Println(eq)

	// Output:
	// [x y] [4 -2] -4
	// 4x - 2y = -4
}

// ExampleNormalize_warnings shows a lenient parse that drops an
// unclassifiable term and reports it.
func ExampleNormalize_warnings() {
	eq, _ := equation.Normalize("2x + 3*y = 6")

	fmt.Println(eq)
	for _, w := range eq.Warnings {
		fmt.Println(w)
	}

	// Output:
	// 2x = 6
	// unexpected character: "+3*y"
}
