// SPDX-License-Identifier: MIT

// Package compose: the Composer type and package-level entry points.

package compose

import (
	"fmt"

	"github.com/katalvlaran/qmaps/qobj"
	"github.com/katalvlaran/qmaps/superop"
	"github.com/rs/zerolog"
)

const (
	opTensor      = "Tensor"
	opSuperTensor = "SuperTensor"
	opComposite   = "Composite"

	panicNilPromoter = "compose: New: promoter must not be nil"
)

// Promoter lifts operands into Liouville space. superop.Promoter implements it.
type Promoter interface {
	// ToSuper returns the Liouville form of a superoperator or, for a plain
	// operator, of its unitary channel.
	ToSuper(q *qobj.Qobj) (*qobj.Qobj, error)
	// Ket2DM returns the projector of a ket.
	Ket2DM(ket *qobj.Qobj) (*qobj.Qobj, error)
	// OperatorToVector returns the column-stacked operator-ket of an operator.
	OperatorToVector(op *qobj.Qobj) (*qobj.Qobj, error)
}

// Composer builds composite objects. It is immutable and safe for concurrent use.
type Composer struct {
	promoter Promoter
	log      zerolog.Logger
	tidy     *bool // nil: follow qobj.AutoTidyup
}

// New returns a Composer that promotes mixed operands with p.
// Panics when p is nil (programmer error).
func New(p Promoter, opts ...Option) *Composer {
	if p == nil {
		panic(panicNilPromoter)
	}
	c := &Composer{promoter: p, log: zerolog.Nop()}
	for _, set := range opts {
		set(c)
	}
	c.log = c.log.With().Str("component", "compose").Logger()

	return c
}

var defaultComposer = New(superop.Promoter{})

// Tensor is (*Composer).Tensor on a composer backed by superop.Promoter.
func Tensor(qs ...*qobj.Qobj) (*qobj.Qobj, error) { return defaultComposer.Tensor(qs...) }

// SuperTensor is (*Composer).SuperTensor on the default composer.
func SuperTensor(qs ...*qobj.Qobj) (*qobj.Qobj, error) { return defaultComposer.SuperTensor(qs...) }

// Composite is (*Composer).Composite on the default composer.
func Composite(qs ...*qobj.Qobj) (*qobj.Qobj, error) { return defaultComposer.Composite(qs...) }

// checkOperands rejects an empty list and nil operands.
func checkOperands(op string, qs []*qobj.Qobj) error {
	if len(qs) == 0 {
		return fmt.Errorf("%s: %w", op, qobj.ErrArgument)
	}
	for i, q := range qs {
		if q == nil {
			return qobj.NewTypeKindError(op, nil, fmt.Sprintf("operand %d is not a quantum object", i)).
				WithOperands(qs)
		}
	}

	return nil
}

// adjoints returns the adjoint of every operand.
func adjoints(op string, qs []*qobj.Qobj) ([]*qobj.Qobj, error) {
	out := make([]*qobj.Qobj, len(qs))
	for i, q := range qs {
		d, err := q.Dag()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out[i] = d
	}

	return out, nil
}

// dagResult adjoints a result produced from adjoint operands.
func dagResult(op string, q *qobj.Qobj, err error) (*qobj.Qobj, error) {
	if err != nil {
		return nil, err
	}
	d, err := q.Dag()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}
