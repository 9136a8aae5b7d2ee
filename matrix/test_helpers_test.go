// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the complex kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES an r×c *Dense from row-major values or fails the test.
// Implementation:
//   - Stage 1: Call matrix.NewDenseFrom(r, c, vals).
//   - Stage 2: require.NoError to abort the test early.
//
// AI-Hints:
//   - Pass no values to get a zero matrix of the given shape.
func MustDense(t *testing.T, r, c int, vals ...complex128) *matrix.Dense {
	t.Helper()
	if len(vals) == 0 {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// Ramp returns an r×c matrix with distinct entries k + i·(k mod 3).
func Ramp(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]complex128, r*c)
	for k := range vals {
		vals[k] = complex(float64(k+1), float64(k%3))
	}

	return MustDense(t, r, c, vals...)
}

// RandomHermitian returns a seeded random n×n Hermitian matrix (M + M†)/2.
func RandomHermitian(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]complex128, n*n)
	for k := range vals {
		vals[k] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	m := MustDense(t, n, n, vals...)
	md, err := matrix.Adjoint(m)
	require.NoError(t, err)
	h, err := matrix.Add(m, md)
	require.NoError(t, err)
	h, err = matrix.Scale(h, 0.5)
	require.NoError(t, err)

	return h
}

// RequireClose asserts element-wise |a-b| ≤ atol with shape equality.
func RequireClose(t *testing.T, want, got *matrix.Dense, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
