// SPDX-License-Identifier: MIT

// Package matrix - System builder.
//
// Purpose:
//   - Accumulate normalized equations into one shared variable order.
//   - Re-establish the width invariant (len(Row.Coefficients) == len(Variables))
//     every time a later equation introduces a new variable.
//   - Export the coefficient block as Dense and the constants as a vector.
//
// Complexity quicksheet:
//   - AddEquation: O(R·V) worst case (re-padding), Clone: O(R·V), Dense: O(R·V).

package matrix

import (
	"fmt"
	"slices"

	"github.com/matthewg-rev/fmatrix-solver/equation"
)

// Operation tags for error wrapping.
const (
	opAddEquation = "AddEquation"
	opBuild       = "Build"
	opDense       = "Dense"
	opValue       = "Value"
)

// NewSystem returns an empty System with the given numeric policy.
func NewSystem(opts ...Option) *System {
	o := gatherOptions(opts...)

	return &System{allowNaNInf: !o.validateNaNInf}
}

// Build creates a System from eqs in order.
// Errors are those of AddEquation, wrapped with the failing index.
func Build(eqs []*equation.Normalized, opts ...Option) (*System, error) {
	s := NewSystem(opts...)
	for i, eq := range eqs {
		if err := s.AddEquation(eq); err != nil {
			return nil, fmt.Errorf("%s: equation %d: %w", opBuild, i, err)
		}
	}

	return s, nil
}

// AddEquation appends eq as a new row.
//
// Implementation:
//   - Stage 1: validate eq (non-nil, finite under the numeric policy).
//   - Stage 2: for each known variable append eq's coefficient or 0.
//   - Stage 3: append variables first seen in eq, with their coefficients.
//   - Stage 4: zero-pad every earlier row to the new width, then append.
//
// Behavior highlights:
//   - Adding "x = 1" then "x + y = 2" gives rows [1 0 | 1] and [1 1 | 2].
//   - Row.Position is the insertion index.
//   - On error the System is left unchanged.
//
// Errors:
//   - ErrNilEquation, ErrNaNInf.
func (s *System) AddEquation(eq *equation.Normalized) error {
	if eq == nil {
		return fmt.Errorf("%s: %w", opAddEquation, ErrNilEquation)
	}
	if !s.allowNaNInf {
		if err := validateFinite(eq.Constant); err != nil {
			return fmt.Errorf("%s: constant of %q: %w", opAddEquation, eq.Raw, err)
		}
		for i, c := range eq.Coefficients {
			if err := validateFinite(c); err != nil {
				return fmt.Errorf("%s: coefficient of %s in %q: %w", opAddEquation, eq.Variables[i], eq.Raw, err)
			}
		}
	}

	row := Row{
		Coefficients: make([]float64, 0, len(s.Variables)+len(eq.Variables)),
		Constant:     eq.Constant,
		Position:     len(s.Rows),
	}
	for _, name := range s.Variables {
		c, _ := eq.Coefficient(name) // absent ⇒ 0
		row.Coefficients = append(row.Coefficients, c)
	}
	for i, name := range eq.Variables {
		if !slices.Contains(s.Variables, name) {
			s.Variables = append(s.Variables, name)
			row.Coefficients = append(row.Coefficients, eq.Coefficients[i])
		}
	}

	s.pad()
	s.Rows = append(s.Rows, row)

	return nil
}

// pad appends trailing zeros to every row narrower than len(Variables).
func (s *System) pad() {
	n := len(s.Variables)
	for i := range s.Rows {
		for len(s.Rows[i].Coefficients) < n {
			s.Rows[i].Coefficients = append(s.Rows[i].Coefficients, 0)
		}
	}
}

// Clone returns a deep copy. Mutating the copy never affects s.
// Complexity: O(R·V).
func (s *System) Clone() *System {
	out := &System{
		Variables:   slices.Clone(s.Variables),
		Rows:        make([]Row, len(s.Rows)),
		allowNaNInf: s.allowNaNInf,
	}
	for i := range s.Rows {
		out.Rows[i] = s.Rows[i].Clone()
	}

	return out
}

// IsSquare reports whether the system has as many rows as variables.
func (s *System) IsSquare() bool { return len(s.Rows) == len(s.Variables) }

// Dense exports the coefficient block as an R×V Dense matrix under the
// system's numeric policy.
// Errors: ErrInvalidDimensions when the system has no rows or no variables;
// ErrNaNInf for a non-finite coefficient set directly on Rows.
func (s *System) Dense() (*Dense, error) {
	d, err := NewDense(len(s.Rows), len(s.Variables), s.policy())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDense, err)
	}
	var i, j int
	for i = range s.Rows {
		for j = range s.Rows[i].Coefficients {
			if err = d.Set(i, j, s.Rows[i].Coefficients[j]); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", opDense, s.Variables[j], err)
			}
		}
	}

	return d, nil
}

// Constants returns a fresh copy of the constant column.
func (s *System) Constants() []float64 {
	out := make([]float64, len(s.Rows))
	for i := range s.Rows {
		out[i] = s.Rows[i].Constant
	}

	return out
}

// Value returns the constant of the row whose diagonal corresponds to name.
// On a solved system this is the value of the variable.
// Errors: ErrUnknownVariable, ErrOutOfRange (fewer rows than variables).
func (s *System) Value(name string) (float64, error) {
	i := slices.Index(s.Variables, name)
	if i < 0 {
		return 0, fmt.Errorf("%s(%q): %w", opValue, name, ErrUnknownVariable)
	}
	if i >= len(s.Rows) {
		return 0, fmt.Errorf("%s(%q): %w", opValue, name, ErrOutOfRange)
	}

	return s.Rows[i].Constant, nil
}

// policy re-expresses the system's numeric guard as an Option.
func (s *System) policy() Option {
	if !s.allowNaNInf {
		return WithValidateNaNInf()
	}

	return WithNoValidateNaNInf()
}
