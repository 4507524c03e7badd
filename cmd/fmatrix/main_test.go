package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthewg-rev/fmatrix-solver/gauss"
	"github.com/matthewg-rev/fmatrix-solver/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_InvalidFlag(t *testing.T) {
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-log-level", "loud"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_InvalidEnv(t *testing.T) {
	t.Setenv("FMATRIX_PRECISION", "many")

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, nil)
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Contains(t, exitErr.Message, "parse env:")
}

func TestRun_FileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`system "a" {
  equations = ["2x + y = 5", "x - y = 1"]
}
`), 0o600))
	t.Setenv("FMATRIX_FILE", path)
	t.Setenv("FMATRIX_LOG_LEVEL", "debug")

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, run(context.Background(), strings.NewReader(""), out, logs, nil))
	require.Contains(t, out.String(), "Transformations: ")
	require.Contains(t, logs.String(), "Configuration resolved.")
}

func TestRun_Singular(t *testing.T) {
	in := strings.NewReader("2\nx + y = 1\n2x + 2y = 2\n")
	err := run(context.Background(), in, &bytes.Buffer{}, &bytes.Buffer{}, nil)
	require.ErrorIs(t, err, gauss.ErrSingular)
}
