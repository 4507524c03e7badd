// Package equation turns free-form linear equations into a canonical
// coefficient form.
//
// What:
//
//   - Normalize parses one line such as "2x + 3y - 4z = 5" into a Normalized
//     value: the distinct variables in first-seen order, their signed
//     coefficient sums, and the constant so that the equation reads
//     Σ coefficient·variable = constant.
//   - The constant may appear on either side of "=". When neither side is a
//     bare number the whole line is treated as one expression and terms on the
//     right of "=" are transposed to the left.
//   - Implicit coefficients ("x" == "1x"), leading signs ("-x", "+x"),
//     repeated signs ("--x") and repeated variables ("2x + 3x") are resolved by
//     a single-pass tokenizer followed by a small term collector.
//
// Errors:
//
//   - ErrEmptyEquation      the input is blank
//   - ErrMultipleEquals     more than one "=" was found
//   - ErrMalformedNumber    a coefficient such as "1.2.3" cannot be parsed
//   - ErrNaNInf             a number overflowed to ±Inf
//   - ErrAmbiguousTerm      a term could not be classified (only with WithStrict)
//
// Malformed numbers and strict-mode failures are returned as *ParseError, so
// callers can recover the offending segment with errors.As.
//
// Soft failures (dangling signs, stray characters, juxtaposed terms) drop the
// affected term, are recorded in Normalized.Warnings and logged through the
// logger passed with WithLogger.
//
// Complexity:
//
//   - Normalize: Time O(n) in the length of the input, Memory O(n).
package equation
