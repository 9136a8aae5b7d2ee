// SPDX-License-Identifier: MIT

// Package superop - Kraus decompositions.
//
// Purpose:
//   - Extract Kraus operators from a Choi matrix (eigendecomposition) and
//     rebuild Choi/Super forms from a Kraus list.
//
// Behavior highlights:
//   - ChoiToKraus returns one operator per eigenvector, d² in total, in
//     descending eigenvalue order. Near-zero terms are kept.
//   - Without WithCPCheck no positivity is enforced: a negative eigenvalue
//     yields an operator scaled by an imaginary square root (logged at warn).

package superop

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/katalvlaran/qmaps/qobj"
)

const (
	opToKraus     = "ToKraus"
	opChoiToKraus = "ChoiToKraus"
	opKrausToChoi = "KrausToChoi"
	opKrausToSup  = "KrausToSuper"
	opNewKraus    = "NewKraus"
	opKrausApply  = "Kraus.Apply"
)

// Kraus is an ordered list of operators {A_k} describing the channel
// ρ ↦ Σ_k A_k·ρ·A_k†. The list is neither canonical nor unique: any unitary
// mixing of the operators describes the same channel. It is deliberately not
// a []*qobj.Qobj so it cannot be handed to a tensor composition by accident.
type Kraus struct {
	ops []*qobj.Qobj
}

// NewKraus validates and wraps a Kraus list. All operators must be plain
// operators with identical dims.
// Errors: qobj.ErrArgument (empty list), *qobj.TypeKindError (nil or
// non-operator entry), qobj.ErrDimsMismatch.
func NewKraus(ops ...*qobj.Qobj) (Kraus, error) {
	if len(ops) == 0 {
		return Kraus{}, superopErrorf(opNewKraus, qobj.ErrArgument)
	}
	first := ops[0]
	for i, a := range ops {
		if a == nil || a.Kind() != qobj.KindOper {
			return Kraus{}, qobj.NewTypeKindError(opNewKraus, a, fmt.Sprintf("kraus operator %d is not an operator", i)).
				WithOperands(ops)
		}
		if !a.Dims().Equal(first.Dims()) {
			return Kraus{}, superopErrorf(opNewKraus,
				fmt.Errorf("operator %d dims %v, want %v: %w", i, a.Dims(), first.Dims(), qobj.ErrDimsMismatch))
		}
	}

	return Kraus{ops: append([]*qobj.Qobj(nil), ops...)}, nil
}

// Len returns the number of operators.
func (k Kraus) Len() int { return len(k.ops) }

// At returns the i-th operator. Quantum objects are immutable, so the value
// is shared, not copied.
func (k Kraus) At(i int) *qobj.Qobj { return k.ops[i] }

// Operators returns a copy of the operator list.
func (k Kraus) Operators() []*qobj.Qobj { return append([]*qobj.Qobj(nil), k.ops...) }

// Apply returns Σ_k A_k·ρ·A_k†.
// Errors: *qobj.TypeKindError (ρ not an operator), qobj.ErrDimsMismatch,
// qobj.ErrArgument (empty decomposition).
func (k Kraus) Apply(rho *qobj.Qobj) (*qobj.Qobj, error) {
	if len(k.ops) == 0 {
		return nil, superopErrorf(opKrausApply, qobj.ErrArgument)
	}
	if rho == nil || rho.Kind() != qobj.KindOper {
		return nil, qobj.NewTypeKindError(opKrausApply, rho, "expected an operator")
	}

	out := k.ops[0].Dims()
	sum, err := matrix.NewZeros(out.Size(0), out.Size(0))
	if err != nil {
		return nil, superopErrorf(opKrausApply, err)
	}
	for _, a := range k.ops {
		ar, err := qobj.Mul(a, rho)
		if err != nil {
			return nil, superopErrorf(opKrausApply, err)
		}
		ad, err := a.Dag()
		if err != nil {
			return nil, superopErrorf(opKrausApply, err)
		}
		term, err := qobj.Mul(ar, ad)
		if err != nil {
			return nil, superopErrorf(opKrausApply, err)
		}
		if sum, err = matrix.Add(sum, term.Data()); err != nil {
			return nil, superopErrorf(opKrausApply, err)
		}
	}

	return qobj.New(qobj.NewDims(out[0], out[0]), sum, qobj.KindOper)
}

// ToKraus returns a Kraus decomposition of q.
//
//	super (RepChoi)  → ChoiToKraus(q)
//	super (RepSuper) → ChoiToKraus(ToChoi(q))
//	oper             → the singleton list [U], no decomposition
//
// Every other kind fails with a *qobj.TypeKindError.
func ToKraus(q *qobj.Qobj, opts ...Option) (Kraus, error) {
	if q == nil {
		return Kraus{}, qobj.NewTypeKindError(opToKraus, nil, "not a quantum object")
	}
	switch q.Kind() {
	case qobj.KindSuper:
		switch q.Representation() {
		case qobj.RepChoi:
			return ChoiToKraus(q, opts...)
		case qobj.RepSuper:
			c, err := ToChoi(q, opts...)
			if err != nil {
				return Kraus{}, err
			}
			return ChoiToKraus(c, opts...)
		case qobj.RepNone:
		}
	case qobj.KindOper:
		return NewKraus(q)
	case qobj.KindKet, qobj.KindBra, qobj.KindOperKet, qobj.KindOperBra:
	}

	return Kraus{}, qobj.NewTypeKindError(opToKraus, q, "cannot decompose into kraus operators")
}

// ChoiToKraus diagonalizes a Choi matrix C = Σ_k λ_k v_k v_k† and returns the
// operators A_k = sqrt(λ_k)·unvec(v_k).
// Implementation:
//   - Stage 1: validate a RepChoi superoperator with a d²×d² matrix.
//   - Stage 2: optional CP check (Hermitian defect and smallest eigenvalue).
//   - Stage 3: matrix.EigenHermitian; reshape each eigenvector column-wise.
//
// Errors:
//   - *qobj.TypeKindError, ErrNotSquareMap, ErrNotCompletelyPositive (only
//     with WithCPCheck), matrix.ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(d⁶) for the eigensolver, Space O(d⁴).
func ChoiToKraus(q *qobj.Qobj, opts ...Option) (Kraus, error) {
	if q == nil || q.Kind() != qobj.KindSuper || q.Representation() != qobj.RepChoi {
		return Kraus{}, qobj.NewTypeKindError(opChoiToKraus, q, "expected a choi superoperator")
	}
	o := gatherOptions(opts...)
	if q.Layout() == qobj.LayoutShuffled {
		var err error
		if q, err = qobj.Reshuffle(q); err != nil {
			return Kraus{}, superopErrorf(opChoiToKraus, err)
		}
	}
	data := q.Data()
	d, err := blockSize(data)
	if err != nil {
		return Kraus{}, superopErrorf(opChoiToKraus, err)
	}

	defect, err := matrix.HermitianDefect(data)
	if err != nil {
		return Kraus{}, superopErrorf(opChoiToKraus, err)
	}
	vals, vecs, err := matrix.EigenHermitian(data)
	if err != nil {
		return Kraus{}, superopErrorf(opChoiToKraus, err)
	}
	minVal := vals[len(vals)-1]

	tol := matrix.DefaultEpsilon
	if o.cpCheck {
		tol = o.cpEps
	}
	if defect > tol || minVal < -tol {
		if o.cpCheck {
			return Kraus{}, superopErrorf(opChoiToKraus,
				fmt.Errorf("hermitian defect %g, min eigenvalue %g: %w", defect, minVal, ErrNotCompletelyPositive))
		}
		o.logger.Warn().
			Float64("hermitian_defect", defect).
			Float64("min_eigenvalue", minVal).
			Msg("choi matrix is not positive semidefinite")
	}

	opDims := krausDims(q.Dims(), d)
	ops := make([]*qobj.Qobj, 0, len(vals))
	for k, lambda := range vals {
		v, err := matrix.Column(vecs, k)
		if err != nil {
			return Kraus{}, superopErrorf(opChoiToKraus, err)
		}
		m, err := qobj.Vec2Mat(v)
		if err != nil {
			return Kraus{}, superopErrorf(opChoiToKraus, err)
		}
		if m, err = matrix.Scale(m, cmplx.Sqrt(complex(lambda, 0))); err != nil {
			return Kraus{}, superopErrorf(opChoiToKraus, err)
		}
		a, err := qobj.New(opDims, m, qobj.KindOper)
		if err != nil {
			return Kraus{}, superopErrorf(opChoiToKraus, err)
		}
		ops = append(ops, a)
	}
	o.logger.Debug().
		Int("count", len(ops)).
		Float64("min_eigenvalue", minVal).
		Float64("hermitian_defect", defect).
		Msg("extracted kraus operators")

	return Kraus{ops: ops}, nil
}

// krausDims recovers the operator dims from a Choi side [c..., r...]. A side
// that does not split into two halves of size d falls back to [[d], [d]].
func krausDims(dims qobj.Dims, d int) qobj.Dims {
	side := dims[0]
	if len(side)%2 == 0 {
		n := len(side) / 2
		cols, rows := side[:n], side[n:]
		if product(cols) == d && product(rows) == d {
			return qobj.NewDims(rows, cols)
		}
	}

	return qobj.NewDims([]int{d}, []int{d})
}

func product(xs []int) int {
	p := 1
	for _, x := range xs {
		p *= x
	}

	return p
}

// KrausToChoi builds Σ_k vec(A_k)·vec(A_k)† (column stacking). Block (r, c)
// of the result is Σ_k A_k[:, c]·A_k[:, r]†. The result is tagged RepChoi and
// marked Hermitian.
// Errors: qobj.ErrArgument (empty decomposition).
func KrausToChoi(k Kraus, opts ...Option) (*qobj.Qobj, error) {
	if len(k.ops) == 0 {
		return nil, superopErrorf(opKrausToChoi, qobj.ErrArgument)
	}
	o := gatherOptions(opts...)

	var sum *matrix.Dense
	var side []int
	for _, a := range k.ops {
		v, err := qobj.OperatorToVector(a)
		if err != nil {
			return nil, superopErrorf(opKrausToChoi, err)
		}
		vec := v.Data().Values()
		outer, err := matrix.Outer(vec, vec)
		if err != nil {
			return nil, superopErrorf(opKrausToChoi, err)
		}
		if sum == nil {
			sum, side = outer, v.Dims()[0]
			continue
		}
		if sum, err = matrix.Add(sum, outer); err != nil {
			return nil, superopErrorf(opKrausToChoi, err)
		}
	}
	o.logger.Debug().Int("count", len(k.ops)).Msg("assembled choi matrix from kraus operators")

	return qobj.New(qobj.NewDims(side, side), sum, qobj.KindSuper,
		qobj.WithRepresentation(qobj.RepChoi), qobj.WithHermiticity(qobj.HermTrue))
}

// KrausToSuper is ChoiToSuper(KrausToChoi(k)).
func KrausToSuper(k Kraus, opts ...Option) (*qobj.Qobj, error) {
	c, err := KrausToChoi(k, opts...)
	if err != nil {
		return nil, superopErrorf(opKrausToSup, err)
	}

	return ChoiToSuper(c, opts...)
}
