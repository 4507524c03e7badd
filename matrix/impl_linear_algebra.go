// SPDX-License-Identifier: MIT
// Package matrix provides the vector kernels used to substitute a solution
// back into a System. All functions perform strict fail-fast validation and
// return wrapped sentinels on dimension mismatches.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and residual accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec     = "MatVec"
	opResidual   = "Residual"
	opMagnitudes = "Magnitudes"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order over the flat buffer.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)

	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c // flat base offset for row i
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Residual computes r = A·x − b where A and b are the coefficient block and
// the constants of s. A zero residual means x satisfies every equation.
//
// Errors:
//   - ErrNilSystem, ErrInvalidDimensions (empty system),
//   - ErrDimensionMismatch / ErrNilMatrix (from MatVec, when len(x) != len(Variables)).
//
// Complexity: Time O(R·V), Space O(R·V) for the Dense copy.
func Residual(s *System, x []float64) ([]float64, error) {
	if s == nil {
		return nil, matrixErrorf(opResidual, ErrNilSystem)
	}
	a, err := s.Dense()
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	var i int
	for i = range ax {
		ax[i] -= s.Rows[i].Constant
	}

	return ax, nil
}

// Magnitudes returns, for each row of s, max(1, |b_i|, Σ_j |a_ij·x_j|).
// It is the scale gauss.Verify measures each residual entry against.
//
// Errors: as Residual.
// Complexity: Time O(R·V), Space O(R·V) for the Dense copy.
func Magnitudes(s *System, x []float64) ([]float64, error) {
	if s == nil {
		return nil, matrixErrorf(opMagnitudes, ErrNilSystem)
	}
	a, err := s.Dense()
	if err != nil {
		return nil, matrixErrorf(opMagnitudes, err)
	}
	if err = ValidateVecLen(x, a.Cols()); err != nil {
		return nil, matrixErrorf(opMagnitudes, err)
	}

	out := make([]float64, a.Rows())
	var (
		i, j     int
		aij, sum float64
	)
	for i = 0; i < a.Rows(); i++ {
		sum = ZeroSum
		for j = 0; j < a.Cols(); j++ {
			if aij, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opMagnitudes, err)
			}
			sum += math.Abs(aij * x[j])
		}
		out[i] = math.Max(1, math.Max(math.Abs(s.Rows[i].Constant), sum))
	}

	return out, nil
}
