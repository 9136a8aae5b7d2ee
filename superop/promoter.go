// SPDX-License-Identifier: MIT

package superop

import "github.com/katalvlaran/qmaps/qobj"

// Promoter lifts operands into Liouville space for tensor composition:
// operators to superoperators, kets to projectors, operators to
// operator-kets. The zero value is ready to use.
type Promoter struct {
	opts []Option
}

// NewPromoter returns a Promoter whose ToSuper conversions use opts.
func NewPromoter(opts ...Option) Promoter {
	return Promoter{opts: append([]Option(nil), opts...)}
}

// ToSuper is superop.ToSuper with the promoter's options.
func (p Promoter) ToSuper(q *qobj.Qobj) (*qobj.Qobj, error) { return ToSuper(q, p.opts...) }

// Ket2DM is qobj.Ket2DM.
func (p Promoter) Ket2DM(ket *qobj.Qobj) (*qobj.Qobj, error) { return qobj.Ket2DM(ket) }

// OperatorToVector is qobj.OperatorToVector.
func (p Promoter) OperatorToVector(op *qobj.Qobj) (*qobj.Qobj, error) {
	return qobj.OperatorToVector(op)
}
