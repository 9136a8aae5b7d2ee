// SPDX-License-Identifier: MIT

// Package qobj: left/right multiplication superoperators.
//
// With column-stacking vectorization vec(A·X·B) = (Bᵀ ⊗ A)·vec(X), so
//
//	Spre(A)  = I ⊗ A   (X ↦ A·X)
//	Spost(A) = Aᵀ ⊗ I  (X ↦ X·A)

package qobj

import (
	"fmt"

	"github.com/katalvlaran/qmaps/matrix"
)

const (
	opSpre  = "Spre"
	opSpost = "Spost"
)

// Spre returns the superoperator X ↦ A·X for a square operator A.
// Errors: ErrNilObject, ErrTypeKind (A not an operator), ErrDimsMismatch
// (A's row and column factors differ).
func Spre(a *Qobj) (*Qobj, error) {
	return multiplicationSuper(opSpre, a, false)
}

// Spost returns the superoperator X ↦ X·A for a square operator A.
// Errors: as Spre.
func Spost(a *Qobj) (*Qobj, error) {
	return multiplicationSuper(opSpost, a, true)
}

func multiplicationSuper(op string, a *Qobj, right bool) (*Qobj, error) {
	if a == nil {
		return nil, qobjErrorf(op, ErrNilObject)
	}
	if a.kind != KindOper {
		return nil, NewTypeKindError(op, a, "expected an operator")
	}
	if !equalInts(a.dims[0], a.dims[1]) {
		return nil, qobjErrorf(op, fmt.Errorf("operator dims %v: %w", a.dims, ErrDimsMismatch))
	}
	id, err := matrix.IdentityLike(a.data)
	if err != nil {
		return nil, qobjErrorf(op, err)
	}

	var data *matrix.Dense
	if right {
		var at *matrix.Dense
		if at, err = matrix.Transpose(a.data); err != nil {
			return nil, qobjErrorf(op, err)
		}
		data, err = matrix.Kron(at, id)
	} else {
		data, err = matrix.Kron(id, a.data)
	}
	if err != nil {
		return nil, qobjErrorf(op, err)
	}

	side := append(append([]int(nil), a.dims[0]...), a.dims[0]...)

	return build(NewDims(side, side), data, KindSuper, options{rep: RepSuper})
}

const opSuperOp = "SuperOp"

// SuperOp returns the Liouville form of the unitary channel ρ ↦ U·ρ·U†,
// i.e. Spre(U)·Spost(U†).
// Errors: as Spre.
func SuperOp(u *Qobj) (*Qobj, error) {
	pre, err := Spre(u)
	if err != nil {
		return nil, err
	}
	ud, err := u.Dag()
	if err != nil {
		return nil, qobjErrorf(opSuperOp, err)
	}
	post, err := Spost(ud)
	if err != nil {
		return nil, err
	}

	return Mul(pre, post)
}
