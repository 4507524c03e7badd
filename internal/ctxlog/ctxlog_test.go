package ctxlog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
)

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	require.Same(t, logger, ctxlog.FromContext(ctx))
	ctxlog.FromContext(ctx).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_MissingLoggerDiscards(t *testing.T) {
	t.Parallel()

	logger := ctxlog.FromContext(context.Background())
	require.NotNil(t, logger)
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))

	ctx := ctxlog.WithLogger(context.Background(), nil)
	require.NotNil(t, ctxlog.FromContext(ctx))
}
