// SPDX-License-Identifier: MIT
// Package matrix provides the complex linear-algebra kernels used by the
// quantum object model: element-wise addition/subtraction, scaling, matrix
// multiplication, Kronecker products, (conjugate) transposition and outer
// products. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opConj      = "Conj"
	opAdjoint   = "Adjoint"
	opTrace     = "Trace"
	opKron      = "Kron"
	opOuter     = "Outer"
	opColumn    = "Column"
	opAllClose  = "AllClose"
	opTidy      = "Tidy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newLike(a, a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m as a fresh Dense.
// Errors: ErrNilMatrix.
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newLike(m, m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: Validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks both B and C rows contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j accumulation order.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	res := newLike(a, rows, cols)

	var i, k, j int
	var aik complex128
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			aik = a.data[i*inner+k]
			if aik == 0 {
				continue // sparse-friendly skip; result unchanged
			}
			for j = 0; j < cols; j++ {
				res.data[i*cols+j] += aik * b.data[k*cols+j]
			}
		}
	}

	return res, nil
}

// Kron computes the Kronecker product A ⊗ B.
// Implementation:
//   - Stage 1: Validate non-nil operands.
//   - Stage 2: For every (i,j) of A, write the block A[i,j]·B at offset (i·rb, j·cb).
//
// Behavior highlights:
//   - Result is (ra·rb)×(ca·cb); row index = i·rb + k, column index = j·cb + l.
//   - Fresh allocation; operands are never aliased.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(ra·ca·rb·cb), Space O(ra·ca·rb·cb).
func Kron(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	ra, ca, rb, cb := a.r, a.c, b.r, b.c
	rows, cols := ra*rb, ca*cb
	res := newLike(a, rows, cols)

	var i, j, k, l, rowBase int
	var aij complex128
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			aij = a.data[i*ca+j]
			if aij == 0 {
				continue // zero block
			}
			for k = 0; k < rb; k++ {
				rowBase = (i*rb+k)*cols + j*cb
				for l = 0; l < cb; l++ {
					res.data[rowBase+l] = aij * b.data[k*cb+l]
				}
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ (no conjugation).
// Errors: ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transpose(m, false), nil
}

// Conj returns the element-wise complex conjugate of m.
// Errors: ErrNilMatrix.
func Conj(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConj, err)
	}
	res := newLike(m, m.r, m.c)
	for idx, v := range m.data {
		res.data[idx] = cmplx.Conj(v)
	}

	return res, nil
}

// Adjoint returns the conjugate transpose m†.
// Errors: ErrNilMatrix.
func Adjoint(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return transpose(m, true), nil
}

// transpose writes res[j,i] = m[i,j] (optionally conjugated).
func transpose(m *Dense, conj bool) *Dense {
	res := newLike(m, m.c, m.r)
	var i, j int
	var v complex128
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[i*m.c+j]
			if conj {
				v = cmplx.Conj(v)
			}
			res.data[j*m.r+i] = v
		}
	}

	return res
}

// Trace returns Σ m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Outer returns the (len(u))×(len(v)) matrix u·v†.
// Errors: ErrInvalidDimensions for empty vectors.
func Outer(u, v []complex128) (*Dense, error) {
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	var i, j int
	for i = 0; i < len(u); i++ {
		for j = 0; j < len(v); j++ {
			res.data[i*res.c+j] = u[i] * cmplx.Conj(v[j])
		}
	}

	return res, nil
}

// Column returns a copy of column j.
// Errors: ErrNilMatrix, ErrOutOfRange.
func Column(m *Dense, j int) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opColumn, ErrOutOfRange)
	}
	col := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col, nil
}

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx, av := range a.data {
		bv := b.data[idx]
		if cmplx.Abs(av-bv) > atol+rtol*cmplx.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports exact shape and element equality. Nil equals only nil.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, av := range a.data {
		if av != b.data[idx] {
			return false
		}
	}

	return true
}

// Tidy returns a copy of m with real and imaginary parts of magnitude below
// atol set to exactly zero.
// Errors: ErrNilMatrix.
func Tidy(m *Dense, atol float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTidy, err)
	}
	res := newLike(m, m.r, m.c)
	var re, im float64
	for idx, v := range m.data {
		re, im = real(v), imag(v)
		if re < atol && re > -atol {
			re = 0
		}
		if im < atol && im > -atol {
			im = 0
		}
		res.data[idx] = complex(re, im)
	}

	return res, nil
}
