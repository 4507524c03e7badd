// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with an
// operation tag via %w) and tests check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when
// context is useful; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that an operation needs at least one row and one variable.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square system (rows == variables) was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (AddEquation, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Dense or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilSystem indicates that a nil *System was passed.
	ErrNilSystem = errors.New("matrix: nil system")

	// ErrNilEquation indicates that a nil equation was added to a System.
	ErrNilEquation = errors.New("matrix: nil equation")

	// ErrUnknownVariable indicates a lookup of a variable the System has never seen.
	ErrUnknownVariable = errors.New("matrix: unknown variable")
)
