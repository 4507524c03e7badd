// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the coefficient block is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil with length n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareSystem checks the elimination precondition.
//
// Sequence: nil → non-empty → rows == variables → row widths.
// Errors: ErrNilSystem, ErrInvalidDimensions, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(n).
func ValidateSquareSystem(s *System) error {
	if s == nil {
		return validatorErrorf("ValidateSquareSystem", ErrNilSystem)
	}
	if len(s.Rows) == 0 || len(s.Variables) == 0 {
		return validatorErrorf("ValidateSquareSystem", ErrInvalidDimensions)
	}
	if len(s.Rows) != len(s.Variables) {
		return validatorErrorf(
			fmt.Sprintf("ValidateSquareSystem: %d equations, %d variables", len(s.Rows), len(s.Variables)),
			ErrNonSquare)
	}
	for i := range s.Rows {
		if len(s.Rows[i].Coefficients) != len(s.Variables) {
			return validatorErrorf(fmt.Sprintf("ValidateSquareSystem: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// validateFinite reports ErrNaNInf for NaN or ±Inf.
func validateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}
