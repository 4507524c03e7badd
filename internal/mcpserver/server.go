// Package mcpserver exposes the normalizer and the elimination engine as
// Model Context Protocol tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
	"github.com/matthewg-rev/fmatrix-solver/internal/pipeline"
)

const (
	serverName    = "fmatrix"
	serverVersion = "0.1.0"
)

// Defaults applied to every tool call.
type Defaults struct {
	Strict          bool
	PivotTolerance  float64
	VerifyTolerance float64
}

// New builds an MCP server with the solver tools registered.
func New(defaults Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerTools(server, defaults)

	return server
}

// Run serves the tools over stdio until ctx is done or the client disconnects.
func Run(ctx context.Context, defaults Defaults) error {
	return serveWithTransport(ctx, New(defaults), &mcp.StdioTransport{})
}

func serveWithTransport(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("MCP server starting.", "name", serverName, "version", serverVersion)
	err := server.Run(ctx, transport)
	if err != nil && ctx.Err() != nil {
		return nil
	}

	return err
}

func registerTools(server *mcp.Server, defaults Defaults) {
	mcp.AddTool(server, NormalizeEquationTool(), NormalizeEquationHandler(defaults))
	mcp.AddTool(server, SolveSystemTool(), SolveSystemHandler(defaults))
}

func (d Defaults) settings(reduced bool) pipeline.Settings {
	return pipeline.Settings{
		Strict:          d.Strict,
		Reduced:         reduced,
		PivotTolerance:  d.PivotTolerance,
		VerifyTolerance: d.VerifyTolerance,
	}
}
