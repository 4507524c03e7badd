package gauss_test

import (
	"fmt"
	"os"

	"github.com/matthewg-rev/fmatrix-solver/equation"
	"github.com/matthewg-rev/fmatrix-solver/gauss"
	"github.com/matthewg-rev/fmatrix-solver/matrix"
)

// ExampleSolve solves a 2×2 system and prints the recorded row operations.
func ExampleSolve() {
	sys, err := matrix.Build([]*equation.Normalized{
		equation.MustNormalize("2x + y = 5"),
		equation.MustNormalize("x - y = 1"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := gauss.Solve(sys)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = gauss.FormatTrace(os.Stdout, res.Trace)
	fmt.Println(res.Solved.Variables, res.Values())
	// Output:
	// L0 * 0.5 -> L0
	// L1 + L0 -> L1
	// L1 -> L1
	// L1 * -0.6666666666666666 -> L1
	// L0 * 0.5 -> L0
	// [x y] [2 1]
}
