// SPDX-License-Identifier: MIT

// Package matrix - reshape and axis permutation of the row-major buffer.
//
// Purpose:
//   - Reinterpret a Dense as a multi-index tensor (row-major, last axis fastest),
//     permute its axes, and flatten it back into a matrix.
//   - This is the single data-movement primitive behind representation changes of
//     quantum maps (Liouville ⇄ Choi) and the reshuffling of composite superoperators.
//
// Determinism:
//   - Output is produced in row-major order via a fixed odometer walk.

package matrix

import "fmt"

const (
	opReshape     = "Reshape"
	opPermuteAxes = "PermuteAxes"
)

// Reshape returns a rows×cols copy of m sharing m's row-major element order.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrBadShape (rows*cols != m.Rows()*m.Cols()).
func Reshape(m *Dense, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opReshape, ErrInvalidDimensions)
	}
	if rows*cols != len(m.data) {
		return nil, matrixErrorf(opReshape, ErrBadShape)
	}
	res := newLike(m, rows, cols)
	copy(res.data, m.data)

	return res, nil
}

// PermuteAxes reinterprets m as a row-major tensor of the given shape, permutes
// its axes and flattens the result into a rows×cols matrix.
// Implementation:
//   - Stage 1: validate shape (positive extents, product == len(data)), axes
//     (a permutation of 0..len(shape)-1) and the target rows×cols.
//   - Stage 2: compute row-major input strides.
//   - Stage 3: walk the output tensor in row-major order with an odometer and
//     gather out[x_0..x_k] = in[y] where y[axes[t]] = x_t.
//
// Behavior highlights:
//   - Same axis semantics as numpy's transpose: output axis t is input axis axes[t].
//   - Applying a self-inverse permutation twice returns the original matrix exactly.
//
// Inputs:
//   - m: source matrix.
//   - shape: tensor extents, product must equal m.Rows()*m.Cols().
//   - axes: permutation of 0..len(shape)-1.
//   - rows, cols: shape of the flattened result.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(N·k) for N elements and k axes, Space O(N).
func PermuteAxes(m *Dense, shape, axes []int, rows, cols int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermuteAxes, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opPermuteAxes, ErrInvalidDimensions)
	}
	if err := validateAxes(shape, axes, len(m.data)); err != nil {
		return nil, matrixErrorf(opPermuteAxes, err)
	}
	if rows*cols != len(m.data) {
		return nil, matrixErrorf(opPermuteAxes, fmt.Errorf("target %dx%d: %w", rows, cols, ErrBadShape))
	}

	k := len(shape)
	// Row-major input strides: stride[k-1] = 1.
	inStride := make([]int, k)
	acc := 1
	for t := k - 1; t >= 0; t-- {
		inStride[t] = acc
		acc *= shape[t]
	}
	// Output extents and the matching input strides.
	outShape := make([]int, k)
	gather := make([]int, k)
	for t, ax := range axes {
		outShape[t] = shape[ax]
		gather[t] = inStride[ax]
	}

	res := newLike(m, rows, cols)
	idx := make([]int, k) // odometer over outShape
	src := 0              // running input offset = Σ idx[t]*gather[t]
	for dst := range res.data {
		res.data[dst] = m.data[src]
		// advance odometer (last axis fastest)
		for t := k - 1; t >= 0; t-- {
			idx[t]++
			src += gather[t]
			if idx[t] < outShape[t] {
				break
			}
			src -= gather[t] * outShape[t]
			idx[t] = 0
		}
	}

	return res, nil
}

// validateAxes checks that shape is positive with product n and axes is a permutation.
func validateAxes(shape, axes []int, n int) error {
	if len(shape) == 0 || len(shape) != len(axes) {
		return ErrBadShape
	}
	prod := 1
	for _, s := range shape {
		if s <= 0 {
			return ErrBadShape
		}
		prod *= s
	}
	if prod != n {
		return fmt.Errorf("shape %v holds %d elements, matrix has %d: %w", shape, prod, n, ErrBadShape)
	}
	seen := make([]bool, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= len(axes) || seen[ax] {
			return fmt.Errorf("axes %v: %w", axes, ErrBadShape)
		}
		seen[ax] = true
	}

	return nil
}
