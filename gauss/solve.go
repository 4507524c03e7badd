// SPDX-License-Identifier: MIT

// Package gauss - elimination engine.
//
// Complexity quicksheet:
//   - Solve: Time O(n³), Space O(n²) for the working clone plus O(n²) row
//     snapshots in the trace.

package gauss

import (
	"fmt"
	"math"

	"github.com/matthewg-rev/fmatrix-solver/matrix"
)

const (
	opSolve  = "Solve"
	opVerify = "Verify"
)

// Result is the outcome of Solve.
type Result struct {
	// Trace lists every recorded row operation in order.
	Trace Trace

	// Solved is the working copy after elimination. Solved.Rows[i].Constant
	// is the value of Solved.Variables[i].
	Solved *matrix.System
}

// Values returns the solution in variable order.
func (r *Result) Values() []float64 {
	return r.Solved.Constants()
}

// Solution returns the solution keyed by variable name.
func (r *Result) Solution() map[string]float64 {
	out := make(map[string]float64, len(r.Solved.Variables))
	for i, name := range r.Solved.Variables {
		out[name] = r.Solved.Rows[i].Constant
	}

	return out
}

// Solve runs Gaussian elimination with partial pivoting on a clone of sys.
//
// Implementation:
//   - Stage 1: validate shape (non-nil, non-empty, rows == variables) and clone.
//   - Stage 2: forward elimination. For column k pick the row with max |a_ik|,
//     i ≥ k; fail with ErrSingular if it does not exceed the pivot tolerance.
//     Record Swap when the pivot row moves, then for every row below record
//     Compound[Scale(pivot, f), Combine(row, pivot)] and subtract f·pivot.
//   - Stage 3: back substitution from the last row up. Record Scale(row, 1/a_ii),
//     store the solved value in the constant and set a_ii to exactly 1.
//   - Stage 4 (WithReducedForm): clear each entry right of the diagonal using
//     the already solved rows below, recording a Compound per entry.
//
// Behavior highlights:
//   - The eliminated entry is set to exactly 0 instead of its computed residue.
//   - sys is never modified.
//
// Errors:
//   - matrix.ErrNilSystem, matrix.ErrInvalidDimensions, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch (ragged rows), ErrSingular.
func Solve(sys *matrix.System, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: shape.
	if err := matrix.ValidateSquareSystem(sys); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	work := sys.Clone()
	rows := work.Rows
	n := len(rows)
	trace := make(Trace, 0, n*(n+1)/2+n)

	// Stage 2: forward elimination.
	var (
		i, j, k, iMax int
		vMax, f       float64
	)
	for k = 0; k < n; k++ {
		iMax, vMax = k, math.Abs(rows[k].Coefficients[k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(rows[i].Coefficients[k]); v > vMax {
				iMax, vMax = i, v
			}
		}
		if vMax <= o.pivotTolerance {
			return nil, fmt.Errorf("%s: column %d (%s): %w", opSolve, k, work.Variables[k], ErrSingular)
		}

		if iMax != k {
			trace = append(trace, Swap{A: rows[k].Clone(), B: rows[iMax].Clone()})
			rows[k], rows[iMax] = rows[iMax], rows[k]
			rows[k].Position, rows[iMax].Position = k, iMax
		}

		for i = k + 1; i < n; i++ {
			f = rows[i].Coefficients[k] / rows[k].Coefficients[k]
			trace = append(trace, eliminate(rows[i], rows[k], f))
			rows[i].Coefficients[k] = 0
			for j = k + 1; j < n; j++ {
				rows[i].Coefficients[j] -= f * rows[k].Coefficients[j]
			}
			rows[i].Constant -= f * rows[k].Constant
		}
	}

	// Stage 3: back substitution.
	var value, diag float64
	for i = n - 1; i >= 0; i-- {
		diag = rows[i].Coefficients[i]
		value = rows[i].Constant
		for j = i + 1; j < n; j++ {
			value -= rows[i].Coefficients[j] * rows[j].Constant
		}
		value /= diag
		trace = append(trace, Scale{Row: rows[i].Clone(), Factor: 1 / diag})
		rows[i].Constant = value
		rows[i].Coefficients[i] = 1

		// Stage 4: rows below i are already unit rows.
		if !o.reducedForm {
			continue
		}
		for j = i + 1; j < n; j++ {
			rows[i].Coefficients[j] /= diag
		}
		for j = i + 1; j < n; j++ {
			if f = rows[i].Coefficients[j]; f == 0 {
				continue
			}
			trace = append(trace, eliminate(rows[i], rows[j], f))
			rows[i].Coefficients[j] = 0
		}
	}

	o.logger.Debug("system solved",
		"variables", len(work.Variables), "steps", len(trace), "reduced", o.reducedForm)

	return &Result{Trace: trace, Solved: work}, nil
}

// eliminate records the two-step row operation target -= f·pivot.
func eliminate(target, pivot matrix.Row, f float64) Compound {
	p, t := pivot.Clone(), target.Clone()

	return Compound{
		Steps:  []Transformation{Scale{Row: p, Factor: f}, Combine{Target: t, Source: p}},
		Result: t,
	}
}

// Verify substitutes result's solution into original and fails with
// ErrResidual when a row's |A·x − b| exceeds tol times that row's magnitude
// max(1, |b_i|, Σ_j |a_ij·x_j|) from matrix.Magnitudes.
//
// Errors: ErrNilResult, ErrResidual, and the matrix errors of Residual.
func Verify(original *matrix.System, result *Result, tol float64) error {
	if result == nil || result.Solved == nil {
		return fmt.Errorf("%s: %w", opVerify, ErrNilResult)
	}
	x := result.Values()
	r, err := matrix.Residual(original, x)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	scale, err := matrix.Magnitudes(original, x)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	for i, v := range r {
		if math.Abs(v) > tol*scale[i] || math.IsNaN(v) {
			return fmt.Errorf("%s: row %d residual %g (scale %g): %w", opVerify, i, v, scale[i], ErrResidual)
		}
	}

	return nil
}
