// SPDX-License-Identifier: MIT

package superop

import "github.com/katalvlaran/qmaps/qobj"

const opApply = "Apply"

// Apply evaluates the map m on the operator rho via vectorization:
// unvec(ToSuper(m)·vec(rho)). m may be a Super or Choi superoperator or a
// plain operator (unitary channel).
// Errors: as ToSuper, plus qobj.ErrDimsMismatch when rho does not fit m.
func Apply(m, rho *qobj.Qobj, opts ...Option) (*qobj.Qobj, error) {
	s, err := ToSuper(m, opts...)
	if err != nil {
		return nil, err
	}
	v, err := qobj.OperatorToVector(rho)
	if err != nil {
		return nil, superopErrorf(opApply, err)
	}
	out, err := qobj.Mul(s, v)
	if err != nil {
		return nil, superopErrorf(opApply, err)
	}
	res, err := qobj.VectorToOperator(out)
	if err != nil {
		return nil, superopErrorf(opApply, err)
	}

	return res, nil
}
