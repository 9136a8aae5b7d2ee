// SPDX-License-Identifier: MIT
package matrix_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/stretchr/testify/require"
)

const eigTol = 1e-9

// reconstruct returns V·diag(vals)·V†.
func reconstruct(t *testing.T, vals []float64, vecs *matrix.Dense) *matrix.Dense {
	t.Helper()
	n := len(vals)
	d := MustDense(t, n, n)
	for i, v := range vals {
		require.NoError(t, d.Set(i, i, complex(v, 0)))
	}
	vd, err := matrix.Mul(vecs, d)
	require.NoError(t, err)
	vh, err := matrix.Adjoint(vecs)
	require.NoError(t, err)
	out, err := matrix.Mul(vd, vh)
	require.NoError(t, err)

	return out
}

// requireUnitary asserts V†V = I.
func requireUnitary(t *testing.T, v *matrix.Dense) {
	t.Helper()
	vh, err := matrix.Adjoint(v)
	require.NoError(t, err)
	g, err := matrix.Mul(vh, v)
	require.NoError(t, err)
	id, err := matrix.IdentityLike(g)
	require.NoError(t, err)
	RequireClose(t, id, g, eigTol)
}

func TestEigen_Errors(t *testing.T) {
	_, _, err := matrix.EigenHermitian(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, _, err = matrix.EigenHermitian(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestEigen_Diagonal returns the diagonal sorted descending.
func TestEigen_Diagonal(t *testing.T) {
	m := MustDense(t, 3, 3, 3, 0, 0, 0, 1, 0, 0, 0, 2)

	vals, vecs, err := matrix.EigenHermitian(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 2, 1}, vals, eigTol)
	requireUnitary(t, vecs)
	RequireClose(t, m, reconstruct(t, vals, vecs), eigTol)
}

// TestEigen_PauliY has purely imaginary off-diagonals.
func TestEigen_PauliY(t *testing.T) {
	y := MustDense(t, 2, 2, 0, -1i, 1i, 0)

	vals, vecs, err := matrix.EigenHermitian(y)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -1}, vals, eigTol)
	requireUnitary(t, vecs)
	RequireClose(t, y, reconstruct(t, vals, vecs), eigTol)
}

// TestEigen_Degenerate handles repeated eigenvalues (I ⊗ σy has ±1 twice each).
func TestEigen_Degenerate(t *testing.T) {
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	m, err := matrix.Kron(id, MustDense(t, 2, 2, 0, -1i, 1i, 0))
	require.NoError(t, err)

	vals, vecs, err := matrix.EigenHermitian(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, -1, -1}, vals, eigTol)
	requireUnitary(t, vecs)
	RequireClose(t, m, reconstruct(t, vals, vecs), eigTol)
}

// TestEigen_RandomHermitian checks reconstruction and ordering on dense input.
func TestEigen_RandomHermitian(t *testing.T) {
	for _, n := range []int{1, 4, 6} {
		m := RandomHermitian(t, n, int64(n))
		require.True(t, matrix.IsHermitian(m))

		vals, vecs, err := matrix.EigenHermitian(m)
		require.NoError(t, err)
		require.True(t, sort.SliceIsSorted(vals, func(i, j int) bool { return vals[i] > vals[j] }))
		requireUnitary(t, vecs)
		RequireClose(t, m, reconstruct(t, vals, vecs), 1e-8)

		tr, err := matrix.Trace(m)
		require.NoError(t, err)
		var sum float64
		for _, v := range vals {
			sum += v
		}
		require.InDelta(t, real(tr), sum, 1e-8)
	}
}

func TestHermitianDefect(t *testing.T) {
	d, err := matrix.HermitianDefect(MustDense(t, 2, 2, 1, 2i, -2i, 3))
	require.NoError(t, err)
	require.Zero(t, d)

	d, err = matrix.HermitianDefect(MustDense(t, 2, 2, 1i, 0, 0, 0))
	require.NoError(t, err)
	require.InDelta(t, 2, d, 1e-15) // |i − conj(i)|

	require.False(t, matrix.IsHermitian(MustDense(t, 1, 2))) // non-square
}
