// SPDX-License-Identifier: MIT
package gauss_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewg-rev/fmatrix-solver/equation"
	"github.com/matthewg-rev/fmatrix-solver/gauss"
	"github.com/matthewg-rev/fmatrix-solver/matrix"
)

const tol = 1e-9

// mustSystem normalizes every line and builds a System or fails the test.
func mustSystem(tb testing.TB, lines ...string) *matrix.System {
	tb.Helper()
	eqs := make([]*equation.Normalized, len(lines))
	for i, line := range lines {
		eq, err := equation.Normalize(line)
		require.NoError(tb, err, line)
		eqs[i] = eq
	}
	s, err := matrix.Build(eqs)
	require.NoError(tb, err)

	return s
}

func TestSolve_EndToEnd(t *testing.T) {
	t.Parallel()

	s := mustSystem(t, "x + 2y = -4", "8x + y = 9")
	res, err := gauss.Solve(s)
	require.NoError(t, err)

	sol := res.Solution()
	assert.InDelta(t, 22.0/15, sol["x"], tol)
	assert.InDelta(t, -41.0/15, sol["y"], tol)
	assert.Equal(t, []string{"x", "y"}, res.Solved.Variables)
	require.NoError(t, gauss.Verify(s, res, tol))
}

func TestSolve_Trace(t *testing.T) {
	t.Parallel()

	res, err := gauss.Solve(mustSystem(t, "x + 2y = -4", "8x + y = 9"))
	require.NoError(t, err)
	require.Len(t, res.Trace, 4)

	assert.Equal(t, "L0 <-> L1", res.Trace[0].String())
	assert.Equal(t, "L0 * 0.125 -> L0\nL1 + L0 -> L1\nL1 -> L1", res.Trace[1].String())

	scale, ok := res.Trace[2].(gauss.Scale)
	require.True(t, ok)
	assert.Equal(t, 1, scale.Row.Position)
	assert.InDelta(t, 1/1.875, scale.Factor, 1e-15)

	assert.Equal(t, "L0 * 0.125 -> L0", res.Trace[3].String())
}

func TestSolve_SwapLabelsCapturedAtRecordTime(t *testing.T) {
	t.Parallel()

	// Column 0 pivots on the third row, column 1 on the row that started first.
	s := mustSystem(t, "a + 2b = 5", "b + 5c = 16", "4a + c = 7")
	res, err := gauss.Solve(s)
	require.NoError(t, err)

	var swaps []gauss.Swap
	for _, tr := range res.Trace {
		if sw, ok := tr.(gauss.Swap); ok {
			swaps = append(swaps, sw)
		}
	}
	require.Len(t, swaps, 2)
	assert.Equal(t, "L0 <-> L2", swaps[0].String())
	assert.Equal(t, "L1 <-> L2", swaps[1].String())

	// The first swap's snapshot still shows the rows as they were.
	assert.Equal(t, []float64{1, 2, 0}, swaps[0].A.Coefficients)
	assert.Equal(t, []float64{4, 0, 1}, swaps[0].B.Coefficients)

	require.NoError(t, gauss.Verify(s, res, tol))
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := mustSystem(t, "x + 2y = -4", "8x + y = 9")
	before := s.Clone()

	_, err := gauss.Solve(s, gauss.WithReducedForm())
	require.NoError(t, err)
	assert.Equal(t, before, s)
}

func TestSolve_RowEchelonByDefault(t *testing.T) {
	t.Parallel()

	res, err := gauss.Solve(mustSystem(t, "x + 2y = -4", "8x + y = 9"))
	require.NoError(t, err)

	rows := res.Solved.Rows
	assert.Equal(t, 1.0, rows[0].Coefficients[0])
	assert.Equal(t, 1.0, rows[0].Coefficients[1]) // left as forward elimination produced it
	assert.Equal(t, 0.0, rows[1].Coefficients[0])
	assert.Equal(t, 1.0, rows[1].Coefficients[1])
}

func TestSolve_ReducedForm(t *testing.T) {
	t.Parallel()

	s := mustSystem(t, "2x + y - z = 8", "-3x - y + 2z = -11", "-2x + y + 2z = -3")
	res, err := gauss.Solve(s, gauss.WithReducedForm())
	require.NoError(t, err)

	for i, row := range res.Solved.Rows {
		for j, c := range row.Coefficients {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.Equal(t, want, c, "row %d col %d", i, j)
		}
	}
	sol := res.Solution()
	assert.InDelta(t, 2, sol["x"], tol)
	assert.InDelta(t, 3, sol["y"], tol)
	assert.InDelta(t, -1, sol["z"], tol)

	plain, err := gauss.Solve(s)
	require.NoError(t, err)
	assert.Greater(t, len(res.Trace), len(plain.Trace))
	assert.InDeltaSlice(t, plain.Values(), res.Values(), tol)
}

func TestSolve_Singular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		opts  []gauss.Option
	}{
		{"dependent rows", []string{"x + y = 1", "2x + 2y = 2"}, nil},
		{"zero column", []string{"x + 0y = 1", "2x = 3"}, nil},
		{"below tolerance", []string{"x + y = 1", "x + 1.0000001y = 2"}, []gauss.Option{gauss.WithPivotTolerance(1e-3)}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := gauss.Solve(mustSystem(t, tc.lines...), tc.opts...)
			assert.Nil(t, res)
			require.ErrorIs(t, err, gauss.ErrSingular)
		})
	}
}

func TestSolve_InvalidShape(t *testing.T) {
	t.Parallel()

	_, err := gauss.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilSystem)

	_, err = gauss.Solve(matrix.NewSystem())
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = gauss.Solve(mustSystem(t, "x + y = 1"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = gauss.Solve(mustSystem(t, "x = 1", "x = 2"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestSolve_RandomSystemsSatisfyOriginal checks the substitution property on
// diagonally dominant systems, which are never singular.
func TestSolve_RandomSystemsSatisfyOriginal(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 8} {
		s := randomSystem(rng, n)
		for _, opts := range [][]gauss.Option{nil, {gauss.WithReducedForm()}} {
			res, err := gauss.Solve(s, opts...)
			require.NoError(t, err, "n=%d", n)
			require.NoError(t, gauss.Verify(s, res, tol), "n=%d", n)
		}
	}
}

func TestVerify_Errors(t *testing.T) {
	t.Parallel()

	s := mustSystem(t, "x + y = 2", "x - y = 0")
	require.ErrorIs(t, gauss.Verify(s, nil, tol), gauss.ErrNilResult)

	res, err := gauss.Solve(s)
	require.NoError(t, err)
	res.Solved.Rows[0].Constant += 1
	require.ErrorIs(t, gauss.Verify(s, res, tol), gauss.ErrResidual)

	res.Solved.Rows[0].Constant = math.NaN()
	require.ErrorIs(t, gauss.Verify(s, res, tol), gauss.ErrResidual)
}

func TestVerify_RelativeToEquationMagnitude(t *testing.T) {
	t.Parallel()

	s := mustSystem(t,
		"3.7x + 1.3y - 2.9z = 123456789.7",
		"0.3x - 4.1y + 1.7z = 987654321.3",
		"2.2x + 0.9y + 5.3z = 555555555.1",
	)
	res, err := gauss.Solve(s)
	require.NoError(t, err)

	r, err := matrix.Residual(s, res.Values())
	require.NoError(t, err)
	for i, v := range r {
		assert.Less(t, math.Abs(v), 1e-6, "row %d", i)
	}
	require.NoError(t, gauss.Verify(s, res, tol))

	// A relative error of 1e-6 in one value is still caught.
	res.Solved.Rows[0].Constant *= 1 + 1e-6
	require.ErrorIs(t, gauss.Verify(s, res, tol), gauss.ErrResidual)
}

func TestWithPivotTolerance_IgnoresInvalid(t *testing.T) {
	t.Parallel()

	s := mustSystem(t, "0.000001x = 1")
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := gauss.Solve(s, gauss.WithPivotTolerance(bad))
		require.NoError(t, err)
	}
}

// randomSystem returns an n×n diagonally dominant system over xa, xb, ...
func randomSystem(rng *rand.Rand, n int) *matrix.System {
	vars := make([]string, n)
	for i := range vars {
		vars[i] = "x" + string(rune('a'+i))
	}
	eqs := make([]*equation.Normalized, n)
	for i := range eqs {
		coefs := make([]float64, n)
		var sum float64
		for j := range coefs {
			coefs[j] = rng.Float64()*2 - 1
			sum += math.Abs(coefs[j])
		}
		coefs[i] = sum + 1
		eqs[i] = &equation.Normalized{Variables: vars, Coefficients: coefs, Constant: rng.Float64()*20 - 10}
	}
	s, err := matrix.Build(eqs)
	if err != nil {
		panic(err)
	}

	return s
}
