// Package equation: sentinel error set and the structured parse error.
package equation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEquation is returned when the input holds nothing but whitespace.
	ErrEmptyEquation = errors.New("equation: empty equation")

	// ErrMultipleEquals is returned when the input contains more than one "=".
	ErrMultipleEquals = errors.New("equation: more than one '='")

	// ErrMalformedNumber indicates a coefficient or constant that is not a valid
	// decimal literal (e.g. "1.2.3" or a lone ".").
	ErrMalformedNumber = errors.New("equation: malformed numeric literal")

	// ErrNaNInf indicates a literal that overflowed to ±Inf or spelled NaN/Inf.
	ErrNaNInf = errors.New("equation: NaN or Inf encountered")

	// ErrAmbiguousTerm indicates a term that could not be classified. It is
	// only returned under WithStrict; otherwise the term is dropped with a Warning.
	ErrAmbiguousTerm = errors.New("equation: ambiguous term")
)

// ParseError identifies the equation and segment that failed to parse.
// Err is one of the package sentinels.
type ParseError struct {
	Equation string // raw input as given to Normalize
	Segment  string // offending term text (whitespace removed)
	Offset   int    // byte offset of Segment in the whitespace-free expression
	Err      error  // sentinel cause
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("equation %q: segment %q at %d: %v", e.Equation, e.Segment, e.Offset, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
