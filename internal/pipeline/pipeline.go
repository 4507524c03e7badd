// Package pipeline wires the solver stages together for the commands:
// raw lines are normalized, assembled into a system, eliminated and checked
// against the original equations.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/matthewg-rev/fmatrix-solver/equation"
	"github.com/matthewg-rev/fmatrix-solver/gauss"
	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
	"github.com/matthewg-rev/fmatrix-solver/matrix"
)

// ErrNoEquations indicates that Build received no input lines.
var ErrNoEquations = errors.New("pipeline: no equations")

// Settings selects the behavior of every stage.
type Settings struct {
	Strict          bool
	Reduced         bool
	PivotTolerance  float64
	VerifyTolerance float64 // 0 skips verification
}

// Report carries the intermediate and final state of one run.
type Report struct {
	Equations []*equation.Normalized
	Initial   *matrix.System
	Result    *gauss.Result // nil until Solve succeeds

	settings Settings
}

// Build normalizes lines in order and assembles the initial system.
// Soft parse warnings are logged through the context logger.
func Build(ctx context.Context, lines []string, s Settings) (*Report, error) {
	if len(lines) == 0 {
		return nil, ErrNoEquations
	}
	logger := ctxlog.FromContext(ctx)

	eqOpts := []equation.Option{equation.WithLogger(logger)}
	if s.Strict {
		eqOpts = append(eqOpts, equation.WithStrict())
	}

	eqs := make([]*equation.Normalized, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		eq, err := equation.Normalize(line, eqOpts...)
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i+1, err)
		}
		eqs[i] = eq
	}

	sys, err := matrix.Build(eqs)
	if err != nil {
		return nil, err
	}
	logger.Debug("System assembled.", "equations", len(sys.Rows), "variables", len(sys.Variables))

	return &Report{Equations: eqs, Initial: sys, settings: s}, nil
}

// Solve eliminates the initial system and, when a verify tolerance is set,
// substitutes the solution back into it.
func (r *Report) Solve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	opts := []gauss.Option{gauss.WithPivotTolerance(r.settings.PivotTolerance), gauss.WithLogger(logger)}
	if r.settings.Reduced {
		opts = append(opts, gauss.WithReducedForm())
	}

	res, err := gauss.Solve(r.Initial, opts...)
	if err != nil {
		return err
	}
	if r.settings.VerifyTolerance > 0 {
		if err = gauss.Verify(r.Initial, res, r.settings.VerifyTolerance); err != nil {
			return err
		}
	}
	r.Result = res
	logger.Info("System solved.", "variables", len(res.Solved.Variables), "steps", len(res.Trace))

	return nil
}

// Warnings returns every soft parse warning, prefixed with its equation number.
func (r *Report) Warnings() []string {
	var out []string
	for i, eq := range r.Equations {
		for _, w := range eq.Warnings {
			out = append(out, fmt.Sprintf("equation %d: %s", i+1, w))
		}
	}

	return out
}
