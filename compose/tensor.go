// SPDX-License-Identifier: MIT

// Package compose - Tensor and SuperTensor.
//
// Tensor rules:
//   - Hilbert-space operands may mix kinds: kets give a ket, bras give a bra,
//     anything else gives an operator.
//   - Liouville-space operands must share one kind and one layout;
//     superoperators must also share one representation.
//   - dims[side] of the result is the concatenation of every operand's
//     dims[side], in call order.
//   - Hermiticity is HermTrue only when every operand is HermTrue; anything
//     else yields HermUnknown.
//   - Layout is Shuffled only when every operand is Shuffled.
//   - The auto-tidy policy runs on the fresh result.

package compose

import (
	"fmt"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/katalvlaran/qmaps/qobj"
)

// Tensor returns the Kronecker product q_1 ⊗ q_2 ⊗ … ⊗ q_k.
// A single operand is returned unchanged.
// Errors:
//   - qobj.ErrArgument: no operands.
//   - *qobj.TypeKindError: nil operand, Liouville-space operands of different
//     kinds or layouts, a Liouville-space operand mixed with a Hilbert-space
//     one, or superoperators with different representations.
func (c *Composer) Tensor(qs ...*qobj.Qobj) (*qobj.Qobj, error) {
	if err := checkOperands(opTensor, qs); err != nil {
		return nil, err
	}
	if len(qs) == 1 {
		return qs[0], nil
	}
	kind, err := tensorKind(qs)
	if err != nil {
		return nil, err
	}
	first := qs[0]

	datas := make([]*matrix.Dense, len(qs))
	var rows, cols []int
	herm := qobj.HermTrue
	for i, q := range qs {
		datas[i] = q.Data()
		d := q.Dims()
		rows = append(rows, d[0]...)
		cols = append(cols, d[1]...)
		if q.Hermiticity() != qobj.HermTrue {
			herm = qobj.HermUnknown
		}
	}
	data, err := matrix.KronAll(datas...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensor, err)
	}

	opts := []qobj.Option{qobj.WithHermiticity(herm), qobj.WithLayout(first.Layout())}
	if kind == qobj.KindSuper {
		opts = append(opts, qobj.WithRepresentation(first.Representation()))
	}
	out, err := qobj.New(qobj.NewDims(rows, cols), data, kind, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensor, err)
	}
	c.log.Debug().
		Int("operands", len(qs)).
		Str("kind", kind.String()).
		Str("dims", out.Dims().String()).
		Msg("tensor product")

	return c.tidyup(out)
}

// tensorKind returns the kind of a product of at least two non-nil operands.
// Layout is uniform across Liouville-space operands, so the result layout is
// the first operand's.
func tensorKind(qs []*qobj.Qobj) (qobj.Kind, error) {
	first := qs[0]
	liouville := first.Kind().IsLiouville()
	kets, bras := true, true
	for _, q := range qs {
		switch {
		case q.Kind().IsLiouville() != liouville:
			return 0, qobj.NewTypeKindError(opTensor, q, "cannot mix Hilbert-space and Liouville-space operands").
				WithOperands(qs)
		case liouville && q.Kind() != first.Kind():
			return 0, qobj.NewTypeKindError(opTensor, q, "operands of different kinds").WithOperands(qs)
		case q.Representation() != first.Representation():
			return 0, qobj.NewTypeKindError(opTensor, q, "superoperators in different representations").
				WithOperands(qs)
		case q.Layout() != first.Layout():
			return 0, qobj.NewTypeKindError(opTensor, q, "operands in different layouts").WithOperands(qs)
		}
		kets = kets && q.Kind() == qobj.KindKet
		bras = bras && q.Kind() == qobj.KindBra
	}

	switch {
	case liouville:
		return first.Kind(), nil
	case kets:
		return qobj.KindKet, nil
	case bras:
		return qobj.KindBra, nil
	default:
		return qobj.KindOper, nil
	}
}

// tidyup applies the effective auto-tidy policy.
func (c *Composer) tidyup(q *qobj.Qobj) (*qobj.Qobj, error) {
	on := qobj.AutoTidyup()
	if c.tidy != nil {
		on = *c.tidy
	}
	if !on {
		return q, nil
	}
	out, err := q.Tidyup(qobj.AutoTidyupAtol())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensor, err)
	}

	return out, nil
}

// SuperTensor returns the tensor product of Liouville-space objects, acting
// on vectorized operators of the joint system.
// Operands must be uniformly RepSuper superoperators, operator-kets or
// operator-bras. Operator-bras are handled through their adjoints.
// Implementation:
//   - Stage 1: bring every operand to the Shuffled layout (qobj.Reshuffle).
//   - Stage 2: Tensor the shuffled operands; whole subsystems concatenate.
//   - Stage 3: Reshuffle the aggregate back to the Standard layout.
//
// Errors:
//   - qobj.ErrArgument, *qobj.TypeKindError (nil, mixed kinds, Choi or other
//     non-Liouville operands).
func (c *Composer) SuperTensor(qs ...*qobj.Qobj) (*qobj.Qobj, error) {
	if err := checkOperands(opSuperTensor, qs); err != nil {
		return nil, err
	}
	first := qs[0]
	for _, q := range qs {
		if q.Kind() != first.Kind() {
			return nil, qobj.NewTypeKindError(opSuperTensor, q, "operands of different kinds").WithOperands(qs)
		}
		switch q.Kind() {
		case qobj.KindSuper:
			if q.Representation() != qobj.RepSuper {
				return nil, qobj.NewTypeKindError(opSuperTensor, q, "superoperators must be in super representation").
					WithOperands(qs)
			}
		case qobj.KindOperKet, qobj.KindOperBra:
		case qobj.KindOper, qobj.KindKet, qobj.KindBra:
			return nil, qobj.NewTypeKindError(opSuperTensor, q, "expected Liouville-space operands").
				WithOperands(qs)
		}
	}

	if first.Kind() == qobj.KindOperBra {
		kets, err := adjoints(opSuperTensor, qs)
		if err != nil {
			return nil, err
		}
		out, err := c.SuperTensor(kets...)

		return dagResult(opSuperTensor, out, err)
	}
	if len(qs) == 1 {
		return first, nil
	}

	shuffled := make([]*qobj.Qobj, len(qs))
	for i, q := range qs {
		s, err := withLayout(q, qobj.LayoutShuffled)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opSuperTensor, err)
		}
		shuffled[i] = s
	}
	joint, err := c.Tensor(shuffled...)
	if err != nil {
		return nil, err
	}
	out, err := withLayout(joint, qobj.LayoutStandard)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSuperTensor, err)
	}
	c.log.Debug().
		Int("operands", len(qs)).
		Str("dims", out.Dims().String()).
		Msg("super tensor product")

	return out, nil
}

// withLayout reshuffles q unless it already has layout l.
func withLayout(q *qobj.Qobj, l qobj.Layout) (*qobj.Qobj, error) {
	if q.Layout() == l {
		return q, nil
	}

	return qobj.Reshuffle(q)
}
