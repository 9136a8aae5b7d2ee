// SPDX-License-Identifier: MIT

// Package qobj: closed enums and the Dims value type.

package qobj

import (
	"fmt"
	"strings"
)

// Kind classifies which space a quantum object lives in.
type Kind int

const (
	// KindOper is a plain operator on a Hilbert space.
	KindOper Kind = iota
	// KindSuper is a linear map on operators (Liouville or Choi matrix).
	KindSuper
	// KindKet is a column state vector.
	KindKet
	// KindBra is a row state vector.
	KindBra
	// KindOperKet is a vectorized operator (column in Liouville space).
	KindOperKet
	// KindOperBra is the adjoint of an operator-ket.
	KindOperBra
)

// String returns the short type label used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindOper:
		return "oper"
	case KindSuper:
		return "super"
	case KindKet:
		return "ket"
	case KindBra:
		return "bra"
	case KindOperKet:
		return "operator-ket"
	case KindOperBra:
		return "operator-bra"
	default:
		if k < 0 {
			return "nil"
		}
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k >= KindOper && k <= KindOperBra }

// IsLiouville reports whether objects of kind k index vectorized operators.
func (k Kind) IsLiouville() bool {
	return k == KindSuper || k == KindOperKet || k == KindOperBra
}

// Representation says how a superoperator encodes its map.
// RepNone is the only legal value for every kind except KindSuper.
type Representation int

const (
	// RepNone marks objects that are not superoperators.
	RepNone Representation = iota
	// RepSuper is the Liouville (supermatrix) form: vec(Λ(ρ)) = S·vec(ρ).
	RepSuper
	// RepChoi is the Choi matrix Σ_k vec(A_k) vec(A_k)†.
	RepChoi
)

// String returns the representation tag.
func (r Representation) String() string {
	switch r {
	case RepNone:
		return "none"
	case RepSuper:
		return "super"
	case RepChoi:
		return "choi"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// Hermiticity is a cached tri-state flag.
type Hermiticity int

const (
	// HermUnknown means Hermiticity has not been established.
	HermUnknown Hermiticity = iota
	// HermTrue means the object is known to be Hermitian.
	HermTrue
	// HermFalse means the object is known not to be Hermitian.
	HermFalse
)

func (h Hermiticity) String() string {
	switch h {
	case HermTrue:
		return "true"
	case HermFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Layout tracks how the factors of a vectorized index are ordered.
type Layout int

const (
	// LayoutStandard lists all bra-space factors, then all ket-space factors.
	LayoutStandard Layout = iota
	// LayoutShuffled interleaves bra/ket factors subsystem by subsystem.
	LayoutShuffled
)

func (l Layout) String() string {
	if l == LayoutShuffled {
		return "shuffled"
	}

	return "standard"
}

// Dims holds the tensor-factor sizes of the row (output) space in Dims[0] and
// of the column (input) space in Dims[1], slowest factor first.
type Dims [2][]int

// NewDims builds Dims from the two factor lists (copied).
func NewDims(rows, cols []int) Dims {
	return Dims{append([]int(nil), rows...), append([]int(nil), cols...)}
}

// Clone returns an independent copy.
func (d Dims) Clone() Dims { return NewDims(d[0], d[1]) }

// Size returns the product of the factors on the given side (0 rows, 1 cols).
func (d Dims) Size(side int) int {
	p := 1
	for _, f := range d[side] {
		p *= f
	}

	return p
}

// Equal reports factor-wise equality of both sides.
func (d Dims) Equal(o Dims) bool {
	return equalInts(d[0], o[0]) && equalInts(d[1], o[1])
}

func (d Dims) String() string {
	return fmt.Sprintf("[%s, %s]", formatInts(d[0]), formatInts(d[1]))
}

func (d Dims) valid() bool {
	for side := 0; side < 2; side++ {
		if len(d[side]) == 0 {
			return false
		}
		for _, f := range d[side] {
			if f <= 0 {
				return false
			}
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
