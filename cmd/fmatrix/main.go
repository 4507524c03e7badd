// Command fmatrix solves a system of linear equations read interactively or
// from an HCL file and prints every row operation of the elimination.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/matthewg-rev/fmatrix-solver/internal/cli"
	"github.com/matthewg-rev/fmatrix-solver/internal/config"
	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
)

// main is the entrypoint for the fmatrix application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, in io.Reader, outW, errW io.Writer, args []string) error {
	var base config.Config
	if err := config.ParseEnv(&base); err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	cfg, shouldExit, err := cli.Parse(args, outW, base)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Configuration resolved.", "file", cfg.File, "system", cfg.System, "reduced", cfg.Reduced)

	return cli.Run(ctx, cfg, in, outW)
}
