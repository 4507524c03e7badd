// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for Solve.
package gauss

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the largest |pivot| still treated as zero.
	// Zero means only an exactly-zero pivot column is singular.
	DefaultPivotTolerance = 0.0

	// DefaultReducedForm keeps the row-echelon output.
	DefaultReducedForm = false

	// DefaultVerifyTolerance is the residual bound used by callers of Verify.
	DefaultVerifyTolerance = 1e-9
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTolerance float64
	reducedForm    bool
	logger         *slog.Logger
}

// WithPivotTolerance sets the singularity threshold. Negative, NaN or
// infinite values are ignored and the previous setting is kept.
func WithPivotTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return
		}
		o.pivotTolerance = tol
	}
}

// WithReducedForm clears the entries right of the diagonal after back
// substitution so that the solved coefficient block is the identity.
func WithReducedForm() Option {
	return func(o *Options) {
		o.reducedForm = true
	}
}

// WithLogger routes debug output of Solve to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTolerance: DefaultPivotTolerance,
		reducedForm:    DefaultReducedForm,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
