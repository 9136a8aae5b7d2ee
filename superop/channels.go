// SPDX-License-Identifier: MIT

// Package superop - reference qubit channels.
//
// These fixtures pin the conversion conventions: the depolarizing pair is the
// canonical Super/Choi reference, and amplitude damping is the smallest
// channel whose Kraus operators are not unitary.

package superop

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/katalvlaran/qmaps/qobj"
)

const (
	opDepolarizing     = "Depolarizing"
	opAmplitudeDamping = "AmplitudeDamping"
)

// qubitSide is the Liouville side of a single qubit: [col, row].
var qubitSide = []int{2, 2}

// DepolarizingSuper returns the Liouville matrix of the qubit channel with
// depolarization parameter pe:
//
//	[[1-pe/2, 0,    0,    pe/2  ],
//	 [0,      1-pe, 0,    0     ],
//	 [0,      0,    1-pe, 0     ],
//	 [pe/2,   0,    0,    1-pe/2]]
//
// Errors: ErrChannelParameter when pe is outside [0, 1].
func DepolarizingSuper(pe float64) (*qobj.Qobj, error) {
	if err := checkProbability(opDepolarizing, pe); err != nil {
		return nil, err
	}
	data, err := matrix.NewDenseReal(4, 4, []float64{
		1 - pe/2, 0, 0, pe / 2,
		0, 1 - pe, 0, 0,
		0, 0, 1 - pe, 0,
		pe / 2, 0, 0, 1 - pe/2,
	})
	if err != nil {
		return nil, superopErrorf(opDepolarizing, err)
	}

	return qobj.New(qobj.NewDims(qubitSide, qubitSide), data, qobj.KindSuper,
		qobj.WithRepresentation(qobj.RepSuper), qobj.WithHermiticity(qobj.HermTrue))
}

// DepolarizingChoi returns the Choi matrix of the same channel:
//
//	[[1-pe/2, 0,    0,    1-pe  ],
//	 [0,      pe/2, 0,    0     ],
//	 [0,      0,    pe/2, 0     ],
//	 [1-pe,   0,    0,    1-pe/2]]
//
// Errors: ErrChannelParameter when pe is outside [0, 1].
func DepolarizingChoi(pe float64) (*qobj.Qobj, error) {
	if err := checkProbability(opDepolarizing, pe); err != nil {
		return nil, err
	}
	data, err := matrix.NewDenseReal(4, 4, []float64{
		1 - pe/2, 0, 0, 1 - pe,
		0, pe / 2, 0, 0,
		0, 0, pe / 2, 0,
		1 - pe, 0, 0, 1 - pe/2,
	})
	if err != nil {
		return nil, superopErrorf(opDepolarizing, err)
	}

	return qobj.New(qobj.NewDims(qubitSide, qubitSide), data, qobj.KindSuper,
		qobj.WithRepresentation(qobj.RepChoi), qobj.WithHermiticity(qobj.HermTrue))
}

// AmplitudeDamping returns the Kraus operators of qubit energy relaxation
// with decay probability gamma:
//
//	A0 = [[1, 0], [0, sqrt(1-gamma)]]    A1 = [[0, sqrt(gamma)], [0, 0]]
//
// Errors: ErrChannelParameter when gamma is outside [0, 1].
func AmplitudeDamping(gamma float64) (Kraus, error) {
	if err := checkProbability(opAmplitudeDamping, gamma); err != nil {
		return Kraus{}, err
	}
	a0, err := matrix.NewDenseReal(2, 2, []float64{1, 0, 0, math.Sqrt(1 - gamma)})
	if err != nil {
		return Kraus{}, superopErrorf(opAmplitudeDamping, err)
	}
	a1, err := matrix.NewDenseReal(2, 2, []float64{0, math.Sqrt(gamma), 0, 0})
	if err != nil {
		return Kraus{}, superopErrorf(opAmplitudeDamping, err)
	}
	k0, err := qobj.NewOper(a0)
	if err != nil {
		return Kraus{}, superopErrorf(opAmplitudeDamping, err)
	}
	k1, err := qobj.NewOper(a1)
	if err != nil {
		return Kraus{}, superopErrorf(opAmplitudeDamping, err)
	}

	return NewKraus(k0, k1)
}

func checkProbability(op string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return superopErrorf(op, fmt.Errorf("%g: %w", p, ErrChannelParameter))
	}

	return nil
}
