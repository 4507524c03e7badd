package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matthewg-rev/fmatrix-solver/equation"
	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
	"github.com/matthewg-rev/fmatrix-solver/internal/pipeline"
)

// NormalizeEquationInput is the argument of normalize_equation.
type NormalizeEquationInput struct {
	Equation string `json:"equation" jsonschema:"linear equation such as 2x + 3y - 4z = 5"`
}

// NormalizeEquationResult is the canonical form of one equation.
type NormalizeEquationResult struct {
	Variables    []string  `json:"variables" jsonschema:"variable names in first-seen order"`
	Coefficients []float64 `json:"coefficients" jsonschema:"coefficient of each variable"`
	Constant     float64   `json:"constant" jsonschema:"constant side of the equation"`
	Canonical    string    `json:"canonical" jsonschema:"canonical rendering of the equation"`
	Warnings     []string  `json:"warnings,omitempty" jsonschema:"terms that were dropped"`
}

// SolveSystemInput is the argument of solve_system.
type SolveSystemInput struct {
	Equations []string `json:"equations" jsonschema:"one equation per entry; as many equations as variables"`
	Reduced   bool     `json:"reduced,omitempty" jsonschema:"reduce the solved matrix to the identity"`
}

// SolveSystemResult is the solution and the recorded row operations.
type SolveSystemResult struct {
	Variables []string  `json:"variables" jsonschema:"variable names in column order"`
	Values    []float64 `json:"values" jsonschema:"solved value of each variable"`
	Trace     []string  `json:"trace" jsonschema:"row operations in the order they were applied"`
	Warnings  []string  `json:"warnings,omitempty" jsonschema:"terms that were dropped while parsing"`
}

// NormalizeEquationTool defines the MCP tool schema for normalizing one equation.
func NormalizeEquationTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "normalize_equation",
		Description: "Parses a linear equation into variables, coefficients and a constant",
	}
}

// NormalizeEquationHandler parses the equation with the configured strictness.
func NormalizeEquationHandler(defaults Defaults) mcp.ToolHandlerFor[NormalizeEquationInput, NormalizeEquationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NormalizeEquationInput) (*mcp.CallToolResult, NormalizeEquationResult, error) {
		opts := []equation.Option{equation.WithLogger(ctxlog.FromContext(ctx))}
		if defaults.Strict {
			opts = append(opts, equation.WithStrict())
		}

		eq, err := equation.Normalize(input.Equation, opts...)
		if err != nil {
			return nil, NormalizeEquationResult{}, fmt.Errorf("normalize failed: %w", err)
		}

		result := NormalizeEquationResult{
			Variables:    eq.Variables,
			Coefficients: eq.Coefficients,
			Constant:     eq.Constant,
			Canonical:    eq.String(),
		}
		for _, w := range eq.Warnings {
			result.Warnings = append(result.Warnings, w.String())
		}

		return nil, result, nil
	}
}

// SolveSystemTool defines the MCP tool schema for solving a square system.
func SolveSystemTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "solve_system",
		Description: "Solves a square system of linear equations by Gaussian elimination and returns every row operation",
	}
}

// SolveSystemHandler builds, solves and verifies the system.
func SolveSystemHandler(defaults Defaults) mcp.ToolHandlerFor[SolveSystemInput, SolveSystemResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SolveSystemInput) (*mcp.CallToolResult, SolveSystemResult, error) {
		rep, err := pipeline.Build(ctx, input.Equations, defaults.settings(input.Reduced))
		if err != nil {
			return nil, SolveSystemResult{}, fmt.Errorf("build system failed: %w", err)
		}
		if err = rep.Solve(ctx); err != nil {
			return nil, SolveSystemResult{}, fmt.Errorf("solve failed: %w", err)
		}

		return nil, SolveSystemResult{
			Variables: rep.Result.Solved.Variables,
			Values:    rep.Result.Values(),
			Trace:     rep.Result.Trace.Strings(),
			Warnings:  rep.Warnings(),
		}, nil
	}
}
