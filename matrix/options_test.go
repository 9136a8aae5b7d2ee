// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented checks the documented defaults through behavior.
func TestDefaultOptions_Documented(t *testing.T) {
	require.True(t, matrix.DefaultValidateNaNInf)
	_, err := matrix.NewDenseFrom(1, 1, []complex128{complex(math.Inf(-1), 0)})
	require.ErrorIs(t, err, matrix.ErrNaNInf) // finite-only by default

	below := MustDense(t, 2, 2, 1, complex(matrix.DefaultEpsilon/2, 0), 0, 1)
	above := MustDense(t, 2, 2, 1, complex(matrix.DefaultEpsilon*2, 0), 0, 1)
	require.True(t, matrix.IsHermitian(below))
	require.False(t, matrix.IsHermitian(above))
}

// TestOptions_LastWriterWins ensures options apply in order.
func TestOptions_LastWriterWins(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 1e-5, 0, 1)
	require.True(t, matrix.IsHermitian(m, matrix.WithEpsilon(1e-6), matrix.WithEpsilon(1e-3)))
	require.False(t, matrix.IsHermitian(m, matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6)))
}

// TestWithEpsilon_Panics rejects nonsensical tolerances.
func TestWithEpsilon_Panics(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}

// TestWithEpsilon_DrivesIsHermitian checks the option is not a dead switch.
func TestWithEpsilon_DrivesIsHermitian(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 1e-6, 0, 1)
	require.False(t, matrix.IsHermitian(m))
	require.True(t, matrix.IsHermitian(m, matrix.WithEpsilon(1e-5)))
}
