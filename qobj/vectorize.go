// SPDX-License-Identifier: MIT

// Package qobj: moves between Hilbert space and Liouville space
// (column-stacking vectorization).

package qobj

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qmaps/matrix"
)

const (
	opOperatorToVector = "OperatorToVector"
	opVectorToOperator = "VectorToOperator"
	opVec2Mat          = "Vec2Mat"
	opKet2DM           = "Ket2DM"
)

// OperatorToVector stacks the columns of an operator into an operator-ket.
// Row dims of the result are the column factors followed by the row factors.
// Errors: ErrNilObject, ErrTypeKind (not an operator).
func OperatorToVector(op *Qobj) (*Qobj, error) {
	if op == nil {
		return nil, qobjErrorf(opOperatorToVector, ErrNilObject)
	}
	if op.kind != KindOper {
		return nil, NewTypeKindError(opOperatorToVector, op, "expected an operator")
	}
	rows, cols := op.data.Shape()
	t, err := matrix.Transpose(op.data)
	if err != nil {
		return nil, qobjErrorf(opOperatorToVector, err)
	}
	// Row-major Transpose holds column j contiguously at offset j*rows.
	v, err := matrix.Reshape(t, rows*cols, 1)
	if err != nil {
		return nil, qobjErrorf(opOperatorToVector, err)
	}
	side := append(append([]int(nil), op.dims[1]...), op.dims[0]...)

	return build(NewDims(side, []int{1}), v, KindOperKet, options{})
}

// VectorToOperator inverts OperatorToVector. Shuffled operator-kets are
// reshuffled to the standard layout first.
// Errors: ErrNilObject, ErrTypeKind (not an operator-ket), ErrDimsMismatch
// (row factors cannot be split into column and row halves).
func VectorToOperator(v *Qobj) (*Qobj, error) {
	if v == nil {
		return nil, qobjErrorf(opVectorToOperator, ErrNilObject)
	}
	if v.kind != KindOperKet {
		return nil, NewTypeKindError(opVectorToOperator, v, "expected an operator-ket")
	}
	if v.layout == LayoutShuffled {
		var err error
		if v, err = Reshuffle(v); err != nil {
			return nil, qobjErrorf(opVectorToOperator, err)
		}
	}
	f := v.dims[0]
	if len(f)%2 != 0 {
		return nil, qobjErrorf(opVectorToOperator, fmt.Errorf("row dims %v: %w", f, ErrDimsMismatch))
	}
	n := len(f) / 2
	colDims, rowDims := f[:n], f[n:]
	d := NewDims(rowDims, colDims)
	rows, cols := d.Size(0), d.Size(1)

	t, err := matrix.Reshape(v.data, cols, rows)
	if err != nil {
		return nil, qobjErrorf(opVectorToOperator, err)
	}
	data, err := matrix.Transpose(t)
	if err != nil {
		return nil, qobjErrorf(opVectorToOperator, err)
	}

	return build(d, data, KindOper, options{})
}

// Vec2Mat reshapes a column-stacked vector of length n² into an n×n matrix:
// out[i,c] = vec[c·n + i].
// Errors: matrix.ErrBadShape when len(vec) is not a perfect square.
func Vec2Mat(vec []complex128) (*matrix.Dense, error) {
	n := int(math.Round(math.Sqrt(float64(len(vec)))))
	if n == 0 || n*n != len(vec) {
		return nil, qobjErrorf(opVec2Mat, fmt.Errorf("length %d: %w", len(vec), matrix.ErrBadShape))
	}
	t, err := matrix.NewDenseFrom(n, n, vec)
	if err != nil {
		return nil, qobjErrorf(opVec2Mat, err)
	}

	return matrix.Transpose(t)
}

// Ket2DM returns the projector |ψ⟩⟨ψ| of a ket.
// Errors: ErrNilObject, ErrTypeKind (not a ket).
func Ket2DM(ket *Qobj) (*Qobj, error) {
	if ket == nil {
		return nil, qobjErrorf(opKet2DM, ErrNilObject)
	}
	if ket.kind != KindKet {
		return nil, NewTypeKindError(opKet2DM, ket, "expected a ket")
	}
	psi, err := matrix.Column(ket.data, 0)
	if err != nil {
		return nil, qobjErrorf(opKet2DM, err)
	}
	data, err := matrix.Outer(psi, psi)
	if err != nil {
		return nil, qobjErrorf(opKet2DM, err)
	}

	return build(NewDims(ket.dims[0], ket.dims[0]), data, KindOper, options{herm: HermTrue})
}
