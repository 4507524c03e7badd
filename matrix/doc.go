// Package matrix assembles normalized equations into a row-major linear system
// and provides the dense numeric primitives used to check solutions.
//
// The matrix package provides:
//
//   - System and Row: a growing set of equations sharing one variable order.
//     AddEquation appends a row and zero-pads every earlier row whenever a
//     later equation introduces a new variable, so all rows always hold
//     exactly len(Variables) coefficients.
//   - Dense: the coefficient block of a System in one flat row-major buffer,
//     filled under the System's finite-only numeric policy.
//   - MatVec, Residual and Magnitudes: y = A·x, r = A·x − b and the per-row
//     scale max(1, |b_i|, Σ|a_ij·x_j|) for checking a candidate solution
//     against the original equations.
//   - WriteTable / String: fixed-width tabular rendering of a System with a
//     trailing "K" column for constants, rounded for display only.
//   - Validators (ValidateSquareSystem, ValidateVecLen, ...) returning the
//     package sentinels from errors.go.
//
// Systems are cloned before elimination (see package gauss); Clone returns a
// deep copy so the caller's system is never mutated.
package matrix
