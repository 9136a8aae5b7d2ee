// SPDX-License-Identifier: MIT

// Package qobj - the Qobj value type.
//
// Purpose:
//   - Bind a complex matrix to its factor structure, kind and representation.
//   - Enforce the invariants at construction so downstream code can trust them:
//     dims agree with the data shape; a representation exists iff kind is super.
//
// Lifecycle:
//   - Immutable after construction. Accessors return copies; operations return
//     freshly built objects.

package qobj

import (
	"fmt"

	"github.com/katalvlaran/qmaps/matrix"
)

const (
	opNew    = "New"
	opDag    = "Dag"
	opMul    = "Mul"
	opTidyup = "Tidyup"
)

// Qobj is an immutable quantum object.
type Qobj struct {
	dims   Dims
	data   *matrix.Dense
	kind   Kind
	rep    Representation
	herm   Hermiticity
	layout Layout
}

// New validates and builds a quantum object. data is copied.
// Implementation:
//   - Stage 1: non-nil data, valid kind, positive dims whose products match the shape.
//   - Stage 2: vector kinds must have a unit column (ket-likes) or row (bra-likes).
//   - Stage 3: representation invariant: RepSuper is the default for KindSuper,
//     any representation on another kind is a TypeKind error.
//
// Errors:
//   - ErrNilObject, ErrDimsMismatch, ErrTypeKind.
func New(dims Dims, data *matrix.Dense, kind Kind, opts ...Option) (*Qobj, error) {
	if data == nil {
		return nil, qobjErrorf(opNew, ErrNilObject)
	}

	return build(dims.Clone(), data.Clone(), kind, gatherOptions(opts...))
}

// build validates and takes ownership of dims and data.
func build(dims Dims, data *matrix.Dense, kind Kind, o options) (*Qobj, error) {
	if !kind.Valid() {
		return nil, &TypeKindError{Op: opNew, Kind: kind, Rep: o.rep, Reason: "unknown kind"}
	}
	if !dims.valid() {
		return nil, qobjErrorf(opNew, fmt.Errorf("dims %v: %w", dims, ErrDimsMismatch))
	}
	rows, cols := data.Shape()
	if dims.Size(0) != rows || dims.Size(1) != cols {
		return nil, qobjErrorf(opNew, fmt.Errorf("dims %v for %dx%d data: %w", dims, rows, cols, ErrDimsMismatch))
	}
	switch kind {
	case KindKet, KindOperKet:
		if cols != 1 {
			return nil, qobjErrorf(opNew, fmt.Errorf("%s with %d columns: %w", kind, cols, ErrDimsMismatch))
		}
	case KindBra, KindOperBra:
		if rows != 1 {
			return nil, qobjErrorf(opNew, fmt.Errorf("%s with %d rows: %w", kind, rows, ErrDimsMismatch))
		}
	case KindOper, KindSuper:
	}

	rep := o.rep
	switch {
	case kind == KindSuper && rep == RepNone:
		rep = RepSuper
	case kind == KindSuper && rep != RepSuper && rep != RepChoi:
		return nil, &TypeKindError{Op: opNew, Kind: kind, Rep: rep, Reason: "unknown representation"}
	case kind != KindSuper && rep != RepNone:
		return nil, &TypeKindError{Op: opNew, Kind: kind, Rep: rep, Reason: "representation is only defined for superoperators"}
	}

	layout := o.layout
	if !kind.IsLiouville() {
		layout = LayoutStandard
	}

	return &Qobj{dims: dims, data: data, kind: kind, rep: rep, herm: o.herm, layout: layout}, nil
}

// Dims returns a copy of the factor structure.
func (q *Qobj) Dims() Dims { return q.dims.Clone() }

// Data returns a copy of the underlying matrix.
func (q *Qobj) Data() *matrix.Dense { return q.data.Clone() }

// Kind returns the object's kind.
func (q *Qobj) Kind() Kind { return q.kind }

// Representation returns the superoperator representation (RepNone otherwise).
func (q *Qobj) Representation() Representation { return q.rep }

// Hermiticity returns the cached tri-state flag without computing anything.
func (q *Qobj) Hermiticity() Hermiticity { return q.herm }

// Layout returns the factor layout (always LayoutStandard for Hilbert-space kinds).
func (q *Qobj) Layout() Layout { return q.layout }

// Shape returns the data shape.
func (q *Qobj) Shape() (rows, cols int) { return q.data.Shape() }

// IsHermitian returns the cached flag when known, otherwise checks the data
// within matrix.DefaultEpsilon. The result is not cached.
func (q *Qobj) IsHermitian() bool {
	switch q.herm {
	case HermTrue:
		return true
	case HermFalse:
		return false
	case HermUnknown:
	}

	return matrix.IsHermitian(q.data)
}

// Dag returns the conjugate transpose. Kets become bras, operator-kets become
// operator-bras (and back); dims sides swap; representation and layout are kept.
func (q *Qobj) Dag() (*Qobj, error) {
	data, err := matrix.Dagger(q.data)
	if err != nil {
		return nil, qobjErrorf(opDag, err)
	}
	kind := q.kind
	switch q.kind {
	case KindKet:
		kind = KindBra
	case KindBra:
		kind = KindKet
	case KindOperKet:
		kind = KindOperBra
	case KindOperBra:
		kind = KindOperKet
	case KindOper, KindSuper:
	}

	return build(NewDims(q.dims[1], q.dims[0]), data, kind,
		options{rep: q.rep, herm: q.herm, layout: q.layout})
}

// Mul returns the product a·b with kind bookkeeping:
//
//	oper·oper → oper         super·super → super (both Liouville form)
//	oper·ket  → ket          bra·oper    → bra
//	super·operator-ket → operator-ket
//	operator-bra·super → operator-bra
//	ket·bra → oper           bra·ket → oper (1×1)
//	operator-ket·operator-bra → super
//
// Errors: ErrNilObject, ErrDimsMismatch (a's column dims differ from b's row
// dims), ErrTypeKind (any other pairing).
func Mul(a, b *Qobj) (*Qobj, error) {
	if a == nil || b == nil {
		return nil, qobjErrorf(opMul, ErrNilObject)
	}
	kind, rep, ok := mulKind(a, b)
	if !ok {
		return nil, NewTypeKindError(opMul, b, "cannot multiply "+a.kind.String()+" by "+b.kind.String()).
			WithOperands([]*Qobj{a, b})
	}
	if !equalInts(a.dims[1], b.dims[0]) {
		return nil, qobjErrorf(opMul, fmt.Errorf("%v · %v: %w", a.dims, b.dims, ErrDimsMismatch))
	}
	data, err := matrix.Mul(a.data, b.data)
	if err != nil {
		return nil, qobjErrorf(opMul, err)
	}

	return build(NewDims(a.dims[0], b.dims[1]), data, kind, options{rep: rep, layout: a.layout})
}

func mulKind(a, b *Qobj) (Kind, Representation, bool) {
	switch {
	case a.kind == KindOper && b.kind == KindOper:
		return KindOper, RepNone, true
	case a.kind == KindSuper && b.kind == KindSuper:
		if a.rep != RepSuper || b.rep != RepSuper {
			return 0, 0, false
		}
		return KindSuper, RepSuper, true
	case a.kind == KindOper && b.kind == KindKet:
		return KindKet, RepNone, true
	case a.kind == KindBra && b.kind == KindOper:
		return KindBra, RepNone, true
	case a.kind == KindSuper && b.kind == KindOperKet:
		if a.rep != RepSuper {
			return 0, 0, false
		}
		return KindOperKet, RepNone, true
	case a.kind == KindOperBra && b.kind == KindSuper:
		if b.rep != RepSuper {
			return 0, 0, false
		}
		return KindOperBra, RepNone, true
	case a.kind == KindKet && b.kind == KindBra, a.kind == KindBra && b.kind == KindKet:
		return KindOper, RepNone, true
	case a.kind == KindOperKet && b.kind == KindOperBra:
		return KindSuper, RepSuper, true
	default:
		return 0, 0, false
	}
}

// Tidyup returns a copy with real/imaginary parts below atol zeroed.
func (q *Qobj) Tidyup(atol float64) (*Qobj, error) {
	data, err := matrix.Tidy(q.data, atol)
	if err != nil {
		return nil, qobjErrorf(opTidyup, err)
	}

	return build(q.dims.Clone(), data, q.kind, options{rep: q.rep, herm: q.herm, layout: q.layout})
}

// Equal reports exact equality of kind, representation, layout, dims and data.
func Equal(a, b *Qobj) bool {
	if a == nil || b == nil {
		return a == b
	}

	return sameType(a, b) && matrix.Equal(a.data, b.data)
}

// AllClose is Equal with an absolute element tolerance on the data.
func AllClose(a, b *Qobj, atol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameType(a, b) {
		return false
	}
	ok, err := matrix.AllClose(a.data, b.data, 0, atol)

	return err == nil && ok
}

func sameType(a, b *Qobj) bool {
	return a.kind == b.kind && a.rep == b.rep && a.layout == b.layout && a.dims.Equal(b.dims)
}

// String renders a header line followed by the data rows.
func (q *Qobj) String() string {
	rows, cols := q.data.Shape()
	header := fmt.Sprintf("Quantum object: dims = %v, shape = (%d, %d), type = %s", q.dims, rows, cols, q.kind)
	if q.kind == KindSuper {
		header += ", superrep = " + q.rep.String()
	}
	if q.kind == KindOper || q.kind == KindSuper {
		header += ", isherm = " + q.herm.String()
	}

	return header + "\n" + q.data.String()
}
