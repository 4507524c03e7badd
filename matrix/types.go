// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types: the Row/System pair built from
// normalized equations.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Row is one equation of a System.
//   - Coefficients follow System.Variables order.
//   - Position is the row's slot at the moment the value was captured; it is a
//     display label, not an identity that follows the row through swaps.
type Row struct {
	Coefficients []float64 // len == len(System.Variables)
	Constant     float64   // right-hand side
	Position     int       // slot index when captured
}

// Clone returns a deep copy of r.
// Complexity: O(len(r.Coefficients)).
func (r Row) Clone() Row {
	c := make([]float64, len(r.Coefficients))
	copy(c, r.Coefficients)

	return Row{Coefficients: c, Constant: r.Constant, Position: r.Position}
}

// System is an ordered set of equations over a shared variable order.
//   - Variables holds distinct names in first-seen order across all rows.
//   - Rows are kept in insertion order until an algorithm reorders a clone.
//
// Invariant: every Row has exactly len(Variables) coefficients.
// The zero value is an empty System with the default numeric policy.
type System struct {
	Variables []string
	Rows      []Row

	allowNaNInf bool // disables the finite-only guard of AddEquation; carried by Clone
}
