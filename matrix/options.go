// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for System and Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation in
	// System.AddEquation and Dense.Set.
	DefaultValidateNaNInf = true
)

// Display policy.
const (
	// DefaultPrecision is the number of decimals shown by String/WriteTable.
	DefaultPrecision = 3

	// TableCellWidth is the left-justified field width of every table cell.
	TableCellWidth = 10

	// ConstantHeader labels the constant column of a rendered System.
	ConstantHeader = "K"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables rejection of NaN/±Inf coefficients and constants.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-only policy. Elimination over
// non-finite input produces non-finite output; use only for diagnostics.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins).
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
