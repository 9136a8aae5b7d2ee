// SPDX-License-Identifier: MIT

// Package qobj: the reshuffle permutation.
//
// A Liouville-space side with n subsystems carries 2n factors. Read them as a
// grid: Standard layout is the 2×n grid [[c_1..c_n], [r_1..r_n]] flattened row
// by row; Shuffled layout is its n×2 transpose [[c_1, r_1], …, [c_n, r_n]].
// Reshuffle transposes the grid on every vectorized side and permutes the data
// to match, so it is an involution. In Shuffled layout a Kronecker product of
// objects concatenates whole subsystems, which is why super_tensor composes
// reshuffled operands and reshuffles the aggregate back.

package qobj

import (
	"fmt"

	"github.com/katalvlaran/qmaps/matrix"
)

const opReshuffle = "Reshuffle"

// Reshuffle toggles the layout of a superoperator, operator-ket or
// operator-bra, permuting its data accordingly. Sides whose factors are all 1
// collapse to [1] and are otherwise untouched.
// Errors: ErrNilObject, ErrTypeKind (Hilbert-space kinds), ErrDimsMismatch (a
// vectorized side with an odd number of factors).
func Reshuffle(q *Qobj) (*Qobj, error) {
	if q == nil {
		return nil, qobjErrorf(opReshuffle, ErrNilObject)
	}
	if !q.kind.IsLiouville() {
		return nil, NewTypeKindError(opReshuffle, q, "reshuffle is defined for Liouville-space objects")
	}
	toShuffled := q.layout == LayoutStandard

	var newDims Dims
	var shape, axes []int
	for side := 0; side < 2; side++ {
		f, perm, err := reshuffleSide(q.dims[side], toShuffled)
		if err != nil {
			return nil, qobjErrorf(opReshuffle, err)
		}
		offset := len(shape)
		src := collapseOnes(q.dims[side])
		shape = append(shape, src...)
		for _, p := range perm {
			axes = append(axes, p+offset)
		}
		newDims[side] = f
	}

	rows, cols := q.data.Shape()
	data, err := matrix.PermuteAxes(q.data, shape, axes, rows, cols)
	if err != nil {
		return nil, qobjErrorf(opReshuffle, err)
	}
	layout := LayoutShuffled
	if !toShuffled {
		layout = LayoutStandard
	}

	// The permuted matrix is generally not Hermitian even when q is.
	return build(newDims, data, q.kind, options{rep: q.rep, layout: layout})
}

// reshuffleSide returns the permuted factor list and the axis permutation
// (output axis t takes input axis perm[t]) for one side.
func reshuffleSide(f []int, toShuffled bool) ([]int, []int, error) {
	if allOnes(f) {
		return []int{1}, []int{0}, nil
	}
	if len(f)%2 != 0 {
		return nil, nil, fmt.Errorf("factors %v: %w", f, ErrDimsMismatch)
	}
	n := len(f) / 2
	perm := make([]int, 0, len(f))
	if toShuffled {
		// [c_1..c_n, r_1..r_n] → [c_1, r_1, …, c_n, r_n]
		for i := 0; i < n; i++ {
			perm = append(perm, i, n+i)
		}
	} else {
		// [c_1, r_1, …, c_n, r_n] → [c_1..c_n, r_1..r_n]
		for i := 0; i < n; i++ {
			perm = append(perm, 2*i)
		}
		for i := 0; i < n; i++ {
			perm = append(perm, 2*i+1)
		}
	}
	out := make([]int, len(f))
	for t, p := range perm {
		out[t] = f[p]
	}

	return out, perm, nil
}

func allOnes(f []int) bool {
	for _, x := range f {
		if x != 1 {
			return false
		}
	}

	return true
}

func collapseOnes(f []int) []int {
	if allOnes(f) {
		return []int{1}
	}

	return f
}
