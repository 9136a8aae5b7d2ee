// SPDX-License-Identifier: MIT

// Package superop - Super ⇄ Choi conversion and the representation dispatchers.
//
// Purpose:
//   - Move a superoperator between Liouville (Super) and Choi form with one
//     fixed axis permutation of its (d, d, d, d) row-major tensor.
//   - Route arbitrary inputs to the right conversion (ToSuper, ToChoi).
//
// Convention:
//   - Column-stacking vectorization, vec(X)[c·d + r] = X[r, c].
//   - With Super indexed as S[c, r, c', r'] and Choi as C[x0, x1, x2, x3],
//     C[x0, x1, x2, x3] = S[x3, x1, x2, x0]. The permutation (3, 1, 2, 0) is
//     its own inverse, so the same kernel serves both directions.

package superop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/katalvlaran/qmaps/qobj"
)

const (
	opToSuper     = "ToSuper"
	opToChoi      = "ToChoi"
	opSuperToChoi = "SuperToChoi"
	opChoiToSuper = "ChoiToSuper"
)

// superChoiAxes is the (self-inverse) Super ⇄ Choi axis permutation.
var superChoiAxes = []int{3, 1, 2, 0}

// ToSuper returns q in Liouville form.
//
//	super (RepSuper) → q itself
//	super (RepChoi)  → ChoiToSuper(q)
//	oper             → Spre(U)·Spost(U†), the unitary channel of U
//
// Every other kind fails with a *qobj.TypeKindError.
func ToSuper(q *qobj.Qobj, opts ...Option) (*qobj.Qobj, error) {
	if q == nil {
		return nil, qobj.NewTypeKindError(opToSuper, nil, "not a quantum object")
	}
	switch q.Kind() {
	case qobj.KindSuper:
		switch q.Representation() {
		case qobj.RepSuper:
			return q, nil
		case qobj.RepChoi:
			return ChoiToSuper(q, opts...)
		case qobj.RepNone:
		}
	case qobj.KindOper:
		return promoteUnitary(opToSuper, q)
	case qobj.KindKet, qobj.KindBra, qobj.KindOperKet, qobj.KindOperBra:
	}

	return nil, qobj.NewTypeKindError(opToSuper, q, "cannot convert to super representation")
}

// ToChoi returns q in Choi form.
//
//	super (RepChoi)  → q itself
//	super (RepSuper) → SuperToChoi(q)
//	oper             → SuperToChoi of the unitary channel of U
//
// Every other kind fails with a *qobj.TypeKindError.
func ToChoi(q *qobj.Qobj, opts ...Option) (*qobj.Qobj, error) {
	if q == nil {
		return nil, qobj.NewTypeKindError(opToChoi, nil, "not a quantum object")
	}
	switch q.Kind() {
	case qobj.KindSuper:
		switch q.Representation() {
		case qobj.RepChoi:
			return q, nil
		case qobj.RepSuper:
			return SuperToChoi(q, opts...)
		case qobj.RepNone:
		}
	case qobj.KindOper:
		s, err := promoteUnitary(opToChoi, q)
		if err != nil {
			return nil, err
		}
		return SuperToChoi(s, opts...)
	case qobj.KindKet, qobj.KindBra, qobj.KindOperKet, qobj.KindOperBra:
	}

	return nil, qobj.NewTypeKindError(opToChoi, q, "cannot convert to choi representation")
}

// SuperToChoi converts a Liouville-form superoperator to its Choi matrix.
// Dims are kept; the result is tagged RepChoi.
// Errors: *qobj.TypeKindError (not a RepSuper superoperator), ErrNotSquareMap.
func SuperToChoi(q *qobj.Qobj, opts ...Option) (*qobj.Qobj, error) {
	return permuteRepresentation(opSuperToChoi, q, qobj.RepSuper, qobj.RepChoi, gatherOptions(opts...))
}

// ChoiToSuper converts a Choi matrix back to Liouville form.
// Errors: *qobj.TypeKindError (not a RepChoi superoperator), ErrNotSquareMap.
func ChoiToSuper(q *qobj.Qobj, opts ...Option) (*qobj.Qobj, error) {
	return permuteRepresentation(opChoiToSuper, q, qobj.RepChoi, qobj.RepSuper, gatherOptions(opts...))
}

// permuteRepresentation applies the shared reshape-permute kernel.
// Shuffled inputs are brought back to the standard layout first, since the
// permutation assumes column factors precede row factors on each side.
func permuteRepresentation(op string, q *qobj.Qobj, from, to qobj.Representation, o options) (*qobj.Qobj, error) {
	if q == nil || q.Kind() != qobj.KindSuper || q.Representation() != from {
		return nil, qobj.NewTypeKindError(op, q, "expected a "+from.String()+" superoperator")
	}
	if q.Layout() == qobj.LayoutShuffled {
		var err error
		if q, err = qobj.Reshuffle(q); err != nil {
			return nil, superopErrorf(op, err)
		}
	}

	data := q.Data()
	d, err := blockSize(data)
	if err != nil {
		return nil, superopErrorf(op, err)
	}
	out, err := matrix.PermuteAxes(data, []int{d, d, d, d}, superChoiAxes, d*d, d*d)
	if err != nil {
		return nil, superopErrorf(op, err)
	}
	o.logger.Debug().
		Str("op", op).
		Int("block", d).
		Str("dims", q.Dims().String()).
		Msg("reshaped superoperator")

	return qobj.New(q.Dims(), out, qobj.KindSuper, qobj.WithRepresentation(to))
}

// blockSize returns d for a d²×d² matrix.
func blockSize(m *matrix.Dense) (int, error) {
	rows, cols := m.Shape()
	d := int(math.Round(math.Sqrt(float64(rows))))
	if rows != cols || d*d != rows {
		return 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrNotSquareMap)
	}

	return d, nil
}

// promoteUnitary reads a plain operator as the unitary channel ρ ↦ UρU†.
func promoteUnitary(op string, u *qobj.Qobj) (*qobj.Qobj, error) {
	s, err := qobj.SuperOp(u)
	if err != nil {
		return nil, superopErrorf(op, err)
	}

	return s, nil
}
