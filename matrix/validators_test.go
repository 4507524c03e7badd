// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matthewg-rev/fmatrix-solver/matrix"
)

// TestValidateSquareSystem covers the nil → empty → shape → width sequence.
func TestValidateSquareSystem(t *testing.T) {
	t.Parallel()

	ragged := mustSystem(t, "x + y = 1", "x - y = 2")
	ragged.Rows[1].Coefficients = ragged.Rows[1].Coefficients[:1]

	tests := []struct {
		name    string
		s       *matrix.System
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilSystem},
		{"empty", matrix.NewSystem(), matrix.ErrInvalidDimensions},
		{"wide", mustSystem(t, "x + y = 1"), matrix.ErrNonSquare},
		{"tall", mustSystem(t, "x = 1", "x = 2"), matrix.ErrNonSquare},
		{"ragged", ragged, matrix.ErrDimensionMismatch},
		{"square", mustSystem(t, "x + y = 1", "x - y = 2"), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := matrix.ValidateSquareSystem(tc.s)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSquareSystem_ReportsCounts(t *testing.T) {
	t.Parallel()

	err := matrix.ValidateSquareSystem(mustSystem(t, "x + y + z = 1", "x = 2"))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "2 equations, 3 variables")
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}
