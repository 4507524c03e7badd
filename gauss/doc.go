// Package gauss solves square linear systems by Gaussian elimination with
// partial pivoting and records every elementary row operation it performs.
//
// What & Why:
//   - Solve works on a private clone of a *matrix.System. Forward elimination
//     picks the largest |pivot| in each column, swaps it into place and clears
//     the column below it; back substitution then writes the solved value of
//     every variable into the constant column.
//   - Each step is appended to a Trace as a Transformation (Scale, Swap,
//     Combine or Compound). Transformations hold value snapshots of the rows
//     involved and are for display and audit only; the solved system is
//     produced directly and never by replaying the trace.
//
// Output shape:
//   - By default the solved system is row-echelon: the diagonal is 1, the
//     constants are the solution, and entries right of the diagonal keep the
//     values forward elimination left there.
//   - WithReducedForm additionally clears those entries so the coefficient
//     block becomes the identity.
//
// Errors (see errors.go):
//   - ErrSingular when a pivot column has no entry above the pivot tolerance.
//   - matrix.ErrNilSystem, matrix.ErrInvalidDimensions, matrix.ErrNonSquare
//     for unusable input (checked before any work).
//   - ErrResidual from Verify when a solution does not satisfy the original.
//
// Row labels:
//   - FormatTrace prints rows as L<n>, where n is the row's slot at the moment
//     the transformation was recorded. A Swap relabels the two rows to their
//     new slots, so later steps name rows by where they are, not by where they
//     started.
package gauss
