// SPDX-License-Identifier: MIT

// Package qobj: convenience constructors for common operators and states.

package qobj

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qmaps/matrix"
)

const opBasis = "Basis"

// NewOper wraps a matrix as an operator with single-factor dims [[rows],[cols]].
func NewOper(data *matrix.Dense, opts ...Option) (*Qobj, error) {
	if data == nil {
		return nil, qobjErrorf(opNew, ErrNilObject)
	}
	rows, cols := data.Shape()

	return New(NewDims([]int{rows}, []int{cols}), data, KindOper, opts...)
}

// NewKet builds a single-factor ket from amplitudes.
func NewKet(amps []complex128) (*Qobj, error) {
	data, err := matrix.NewDenseFrom(len(amps), 1, amps)
	if err != nil {
		return nil, qobjErrorf(opNew, err)
	}

	return build(NewDims([]int{len(amps)}, []int{1}), data, KindKet, options{})
}

// Identity returns the n-dimensional identity operator.
func Identity(n int) (*Qobj, error) {
	data, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, qobjErrorf(opNew, err)
	}

	return build(NewDims([]int{n}, []int{n}), data, KindOper, options{herm: HermTrue})
}

// Basis returns the k-th computational basis ket of an n-level system.
func Basis(n, k int) (*Qobj, error) {
	if k < 0 || k >= n {
		return nil, qobjErrorf(opBasis, fmt.Errorf("level %d of %d: %w", k, n, matrix.ErrOutOfRange))
	}
	amps := make([]complex128, n)
	amps[k] = 1

	return NewKet(amps)
}

// SigmaX returns the Pauli X operator.
func SigmaX() *Qobj { return pauli(0, 1, 1, 0) }

// SigmaY returns the Pauli Y operator.
func SigmaY() *Qobj { return pauli(0, -1i, 1i, 0) }

// SigmaZ returns the Pauli Z operator.
func SigmaZ() *Qobj { return pauli(1, 0, 0, -1) }

// Hadamard returns the single-qubit Hadamard gate.
func Hadamard() *Qobj {
	s := complex(1/math.Sqrt2, 0)

	return pauli(s, s, s, -s)
}

// pauli builds a Hermitian qubit operator from fixed, valid entries.
func pauli(a, b, c, d complex128) *Qobj {
	data, _ := matrix.NewDenseFrom(2, 2, []complex128{a, b, c, d}) // shape and entries are constant

	return &Qobj{dims: NewDims([]int{2}, []int{2}), data: data, kind: KindOper, herm: HermTrue}
}
