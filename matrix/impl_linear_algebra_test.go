// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the complex linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub_Correctness checks element-wise sums and differences.
func TestAddSub_Correctness(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2i, 3, 4-1i)
	b := MustDense(t, 2, 2, 1i, 1, -3, 1i)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []complex128{1 + 1i, 1 + 2i, 0, 4}, sum.Values())

	diff, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, diff)) // (a+b)-b == a exactly for these values

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Correctness compares against a hand-computed product.
func TestMul_Correctness(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 2, 1i, 0, 0, 1, 1, -1i)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// row0: [1i+3, 2-3i], row1: [4i+6, 5-6i]
	require.Equal(t, []complex128{3 + 1i, 2 - 3i, 6 + 4i, 5 - 6i}, c.Values())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKron_BlockLayout verifies row i·rb+k, column j·cb+l placement.
func TestKron_BlockLayout(t *testing.T) {
	a := MustDense(t, 1, 2, 1, 2i)
	b := MustDense(t, 2, 1, 3, 5)

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	r, c := k.Shape()
	require.Equal(t, [2]int{2, 2}, [2]int{r, c})
	require.Equal(t, []complex128{3, 6i, 5, 10i}, k.Values())

	// Mixed-product property (A⊗B)(C⊗D) = AC⊗BD.
	x, y := Ramp(t, 2, 2), Ramp(t, 3, 3)
	xy, err := matrix.Kron(x, y)
	require.NoError(t, err)
	lhs, err := matrix.Mul(xy, xy)
	require.NoError(t, err)
	x2, err := matrix.Mul(x, x)
	require.NoError(t, err)
	y2, err := matrix.Mul(y, y)
	require.NoError(t, err)
	rhs, err := matrix.Kron(x2, y2)
	require.NoError(t, err)
	RequireClose(t, rhs, lhs, 1e-9)

	_, err = matrix.Kron(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKronAll folds left to right and never aliases its input.
func TestKronAll(t *testing.T) {
	a := Ramp(t, 2, 2)
	one, err := matrix.KronAll(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, one))
	require.NotSame(t, a, one)

	b, c := Ramp(t, 1, 2), Ramp(t, 2, 1)
	all, err := matrix.KronAll(a, b, c)
	require.NoError(t, err)
	ab, err := matrix.Kron(a, b)
	require.NoError(t, err)
	want, err := matrix.Kron(ab, c)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, all))

	_, err = matrix.KronAll()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeConjAdjoint checks the three involutions and their relation.
func TestTransposeConjAdjoint(t *testing.T) {
	m := Ramp(t, 2, 3)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	v, err := tr.At(2, 1)
	require.NoError(t, err)
	want, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, want, v) // no conjugation

	cj, err := matrix.Conj(tr)
	require.NoError(t, err)
	adj, err := matrix.Dagger(m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(cj, adj))

	back, err := matrix.Adjoint(adj)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}

// TestTraceOuterColumn covers the small vector helpers.
func TestTraceOuterColumn(t *testing.T) {
	tr, err := matrix.Trace(MustDense(t, 2, 2, 1i, 7, 7, 2))
	require.NoError(t, err)
	require.Equal(t, 2+1i, tr)
	_, err = matrix.Trace(MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	o, err := matrix.Outer([]complex128{1, 1i}, []complex128{1i, 2})
	require.NoError(t, err)
	// u·v† = [[conj(1i), 2], [1i·conj(1i), 2i]]
	require.Equal(t, []complex128{-1i, 2, 1, 2i}, o.Values())
	_, err = matrix.Outer(nil, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	col, err := matrix.Column(o, 1)
	require.NoError(t, err)
	require.Equal(t, []complex128{2, 2i}, col)
	_, err = matrix.Column(o, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestScaleAndTidy checks scaling and the zeroing threshold.
func TestScaleAndTidy(t *testing.T) {
	m := MustDense(t, 1, 3, 1, 1e-13+2i, complex(3, -1e-14))

	s, err := matrix.Scale(m, 2i)
	require.NoError(t, err)
	require.Equal(t, 2i, s.Values()[0])

	td, err := matrix.Tidy(m, 1e-12)
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 2i, 3}, td.Values())
	require.Equal(t, complex(3, -1e-14), m.Values()[2]) // input untouched

	_, err = matrix.Tidy(nil, 1e-12)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllCloseEqual distinguishes tolerance from exact comparison.
func TestAllCloseEqual(t *testing.T) {
	a := MustDense(t, 1, 2, 1, 2)
	b := MustDense(t, 1, 2, 1+1e-10, 2)

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, matrix.Equal(a, b))

	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestZerosAndIdentityLike covers the api.go convenience constructors.
func TestZerosAndIdentityLike(t *testing.T) {
	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, make([]complex128, 6), z.Values())

	id, err := matrix.IdentityLike(Ramp(t, 3, 3))
	require.NoError(t, err)
	want, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, id))

	_, err = matrix.IdentityLike(z)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
