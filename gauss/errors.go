// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.

package gauss

import "errors"

var (
	// ErrSingular indicates that no usable pivot exists in some column:
	// the system has no unique solution.
	ErrSingular = errors.New("gauss: singular matrix")

	// ErrResidual indicates that substituting a solution back into the
	// original system left a residual above the tolerance.
	ErrResidual = errors.New("gauss: residual above tolerance")

	// ErrNilResult indicates that Verify was called without a Result.
	ErrNilResult = errors.New("gauss: nil result")
)
