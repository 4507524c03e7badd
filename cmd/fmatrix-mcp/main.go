// Command fmatrix-mcp serves the equation normalizer and the solver as MCP
// tools over stdio.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/matthewg-rev/fmatrix-solver/internal/config"
	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
	"github.com/matthewg-rev/fmatrix-solver/internal/mcpserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fs := flag.NewFlagSet("fmatrix-mcp", flag.ExitOnError)
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Reject equations with terms that cannot be understood.")
	fs.Float64Var(&cfg.PivotTolerance, "pivot-tolerance", cfg.PivotTolerance, "Largest pivot magnitude treated as zero.")
	fs.Float64Var(&cfg.VerifyTolerance, "verify-tolerance", cfg.VerifyTolerance, "Largest accepted residual, relative to each equation's magnitude, when checking a solution.")
	_ = fs.Parse(os.Args[1:])
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Stdout carries the protocol; logs go to stderr.
	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	err = mcpserver.Run(ctx, mcpserver.Defaults{
		Strict:          cfg.Strict,
		PivotTolerance:  cfg.PivotTolerance,
		VerifyTolerance: cfg.VerifyTolerance,
	})
	if err != nil {
		logger.Error("MCP server stopped.", "error", err)
		stop()
		os.Exit(1)
	}
}
