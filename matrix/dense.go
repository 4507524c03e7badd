// SPDX-License-Identifier: MIT

// Package matrix - Dense coefficient block (row-major) & checked accessors.
//
// Purpose:
//   - Hold the R×V coefficient block of a System in one flat buffer, offset i*cols + j.
//   - Apply the System's numeric policy when the block is filled (Set).
//   - Serve MatVec's flat loop and the per-row magnitude scan (At) of Magnitudes.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps err as "Dense.<method>(row,col): %w".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the coefficient block of a System, exported by System.Dense.
//   - r,c hold dimensions (equations, variables).
//   - data is a flat buffer of length r*c in row-major order.
//   - validateNaNInf rejects NaN/Inf in Set when true.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

// NewDense creates an r×c zero block.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the equation count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the variable count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the coefficient at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange for bounds; ErrNaNInf when the numeric guard is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}
