package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/matthewg-rev/fmatrix-solver/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments on top of base, which normally holds
// the environment configuration. It returns the merged Config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, base config.Config) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("fmatrix", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fmatrix - solve systems of linear equations by Gaussian elimination.

Usage:
  fmatrix [options] [SYSTEM_FILE]

Without a file the equations are read interactively from standard input.

Arguments:
  SYSTEM_FILE
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := base
	flagSet.StringVar(&cfg.File, "file", base.File, "Path to the system file or directory.")
	flagSet.StringVar(&cfg.File, "f", base.File, "Path to the system file or directory (shorthand).")
	flagSet.StringVar(&cfg.System, "system", base.System, "Name of the system block to solve. Defaults to the first one.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", base.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", base.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.IntVar(&cfg.Precision, "precision", base.Precision, "Decimals shown in tables. Negative disables rounding.")
	flagSet.Float64Var(&cfg.PivotTolerance, "pivot-tolerance", base.PivotTolerance, "Largest pivot magnitude treated as zero.")
	flagSet.Float64Var(&cfg.VerifyTolerance, "verify-tolerance", base.VerifyTolerance, "Largest accepted residual, relative to each equation's magnitude, when checking the solution.")
	flagSet.BoolVar(&cfg.Strict, "strict", base.Strict, "Reject equations with terms that cannot be understood.")
	flagSet.BoolVar(&cfg.Reduced, "reduced", base.Reduced, "Reduce the solved matrix to the identity.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "too many arguments: expected at most one SYSTEM_FILE"}
	}
	// SYSTEM_FILE overrides FMATRIX_FILE like any flag, but must agree with -file.
	if flagSet.NArg() == 1 {
		arg := flagSet.Arg(0)
		fileFlag := false
		flagSet.Visit(func(f *flag.Flag) {
			if f.Name == "file" || f.Name == "f" {
				fileFlag = true
			}
		})
		if fileFlag && cfg.File != arg {
			return nil, false, &ExitError{
				Code:    2,
				Message: fmt.Sprintf("conflicting system files: -file %q and argument %q", cfg.File, arg),
			}
		}
		cfg.File = arg
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}
