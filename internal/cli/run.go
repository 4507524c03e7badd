package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matthewg-rev/fmatrix-solver/gauss"
	"github.com/matthewg-rev/fmatrix-solver/internal/config"
	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
	"github.com/matthewg-rev/fmatrix-solver/internal/hclsource"
	"github.com/matthewg-rev/fmatrix-solver/internal/pipeline"
)

// ruleWidth is the length of the dashed rule under the "Initial matrix" header.
const ruleWidth = 100

// Run collects the equations named by cfg, solves them and writes the report
// to out: the initial table, every transformation, then the solved table.
// Solver failures are returned after the initial table has been printed.
func Run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	lines, reduced, err := collect(ctx, cfg, in, out)
	if err != nil {
		return err
	}

	rep, err := pipeline.Build(ctx, lines, pipeline.Settings{
		Strict:          cfg.Strict,
		Reduced:         reduced,
		PivotTolerance:  cfg.PivotTolerance,
		VerifyTolerance: cfg.VerifyTolerance,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Initial matrix: ")
	fmt.Fprintln(out, strings.Repeat("-", ruleWidth))
	if err = rep.Initial.WriteTable(out, cfg.Precision); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if err = rep.Solve(ctx); err != nil {
		logger.Error("Elimination failed.", "error", err)
		return err
	}

	fmt.Fprintln(out, "Transformations: ")
	if err = gauss.FormatTrace(out, rep.Result.Trace); err != nil {
		return err
	}
	if err = rep.Result.Solved.WriteTable(out, cfg.Precision); err != nil {
		return err
	}
	fmt.Fprintln(out)

	return nil
}

// collect returns the equations and whether full reduction was requested,
// either from the HCL source or interactively.
func collect(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) ([]string, bool, error) {
	if cfg.File == "" {
		lines, err := ReadEquations(ctx, in, out)
		return lines, cfg.Reduced, err
	}

	systems, err := hclsource.Load(ctx, cfg.File)
	if err != nil {
		return nil, false, err
	}
	sys, err := hclsource.Select(systems, cfg.System)
	if err != nil {
		return nil, false, err
	}
	ctxlog.FromContext(ctx).Debug("System selected.", "name", sys.Name, "file", sys.File)

	return sys.Equations, cfg.Reduced || sys.Reduced, nil
}
