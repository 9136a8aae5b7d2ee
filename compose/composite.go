// SPDX-License-Identifier: MIT

package compose

import (
	"fmt"

	"github.com/katalvlaran/qmaps/qobj"
)

// family groups kinds that Composite may combine after promotion.
type family int

const (
	familyOperator family = iota // oper, super
	familyKet                    // ket, operator-ket
	familyBra                    // bra, operator-bra
)

func familyOf(k qobj.Kind) family {
	switch k {
	case qobj.KindOper, qobj.KindSuper:
		return familyOperator
	case qobj.KindKet, qobj.KindOperKet:
		return familyKet
	case qobj.KindBra, qobj.KindOperBra:
		return familyBra
	default:
		return -1
	}
}

// Composite tensors operands of one family, promoting into Liouville space
// when the family is mixed:
//
//	operator-like: any superoperator → every operand through Promoter.ToSuper,
//	               then SuperTensor; otherwise Tensor.
//	ket-like:      any operator-ket → every ket becomes vec(|ψ⟩⟨ψ|),
//	               then SuperTensor; otherwise Tensor.
//	bra-like:      Composite of the adjoints, adjointed.
//
// Errors: qobj.ErrArgument, *qobj.TypeKindError (nil operand or operands
// from different families), and any promotion error.
func (c *Composer) Composite(qs ...*qobj.Qobj) (*qobj.Qobj, error) {
	if err := checkOperands(opComposite, qs); err != nil {
		return nil, err
	}
	fam := familyOf(qs[0].Kind())
	for _, q := range qs[1:] {
		if familyOf(q.Kind()) != fam {
			return nil, qobj.NewTypeKindError(opComposite, q, "operands from different families").WithOperands(qs)
		}
	}

	switch fam {
	case familyOperator:
		if !anyKind(qs, qobj.KindSuper) {
			return c.Tensor(qs...)
		}
		promoted := make([]*qobj.Qobj, len(qs))
		for i, q := range qs {
			s, err := c.promoter.ToSuper(q)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opComposite, err)
			}
			promoted[i] = s
		}
		c.log.Debug().Int("operands", len(qs)).Msg("promoted operators to superoperators")

		return c.SuperTensor(promoted...)

	case familyKet:
		if !anyKind(qs, qobj.KindOperKet) {
			return c.Tensor(qs...)
		}
		promoted := make([]*qobj.Qobj, len(qs))
		for i, q := range qs {
			if q.Kind() == qobj.KindOperKet {
				promoted[i] = q
				continue
			}
			v, err := c.vectorizedProjector(q)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opComposite, err)
			}
			promoted[i] = v
		}
		c.log.Debug().Int("operands", len(qs)).Msg("promoted kets to operator-kets")

		return c.SuperTensor(promoted...)

	case familyBra:
		kets, err := adjoints(opComposite, qs)
		if err != nil {
			return nil, err
		}
		out, err := c.Composite(kets...)

		return dagResult(opComposite, out, err)
	}

	return nil, qobj.NewTypeKindError(opComposite, qs[0], "unsupported kind").WithOperands(qs)
}

// vectorizedProjector maps |ψ⟩ to vec(|ψ⟩⟨ψ|).
func (c *Composer) vectorizedProjector(ket *qobj.Qobj) (*qobj.Qobj, error) {
	rho, err := c.promoter.Ket2DM(ket)
	if err != nil {
		return nil, err
	}

	return c.promoter.OperatorToVector(rho)
}

func anyKind(qs []*qobj.Qobj, k qobj.Kind) bool {
	for _, q := range qs {
		if q.Kind() == k {
			return true
		}
	}

	return false
}
