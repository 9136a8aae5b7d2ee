// SPDX-License-Identifier: MIT
// Package qobj_test contains shared fixtures for the quantum object tests.
//
// Purpose:
//   - Build small, exact operators so structural assertions can use Equal.

package qobj_test

import (
	"testing"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/katalvlaran/qmaps/qobj"
	"github.com/stretchr/testify/require"
)

// mustDense builds a rows×cols matrix from row-major values or fails the test.
func mustDense(t *testing.T, rows, cols int, vals ...complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(t, err)

	return m
}

// mustOper wraps row-major values as a single-factor operator.
func mustOper(t *testing.T, rows, cols int, vals ...complex128) *qobj.Qobj {
	t.Helper()
	op, err := qobj.NewOper(mustDense(t, rows, cols, vals...))
	require.NoError(t, err)

	return op
}

// counting returns an n×n operator with entries 1..n² plus an imaginary ramp,
// so every permutation of its entries is observable.
func counting(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	vals := make([]complex128, n*n)
	for i := range vals {
		vals[i] = complex(float64(i+1), float64(i%3))
	}

	return mustDense(t, n, n, vals...)
}
