// SPDX-License-Identifier: MIT
// Package qobj: sentinel errors and the TypeKindError diagnostic type.
// All operations return these sentinels (possibly wrapped); tests match them
// with errors.Is / errors.As.

package qobj

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTypeKind is matched by every *TypeKindError: an operand's kind or
	// representation is unsupported by the requested operation.
	ErrTypeKind = errors.New("qobj: unsupported kind")

	// ErrArgument is returned when a variadic composition receives no operands.
	ErrArgument = errors.New("qobj: at least one operand is required")

	// ErrDimsMismatch signals dims that disagree with the data shape or with
	// another operand.
	ErrDimsMismatch = errors.New("qobj: dims mismatch")

	// ErrNilObject indicates a nil *Qobj (or nil data) where a value is required.
	ErrNilObject = errors.New("qobj: nil quantum object")
)

// TypeKindError reports the offending kind/representation pair so callers can
// diagnose a rejected call without re-inspecting its inputs.
type TypeKindError struct {
	Op     string         // operation that rejected the operand
	Kind   Kind           // kind of the offending operand
	Rep    Representation // its representation (RepNone for non-superoperators)
	Kinds  []Kind         // kinds of all operands for multi-operand calls
	Reason string         // short human explanation
}

// NewTypeKindError builds a TypeKindError for a single offending object.
// A nil object is reported as a missing operand.
func NewTypeKindError(op string, q *Qobj, reason string) *TypeKindError {
	e := &TypeKindError{Op: op, Reason: reason}
	if q != nil {
		e.Kind, e.Rep = q.kind, q.rep
	} else {
		e.Kind = Kind(-1)
	}

	return e
}

// WithOperands attaches the kinds of every operand (nil operands as Kind(-1)).
func (e *TypeKindError) WithOperands(qs []*Qobj) *TypeKindError {
	e.Kinds = make([]Kind, len(qs))
	for i, q := range qs {
		if q == nil {
			e.Kinds[i] = Kind(-1)
			continue
		}
		e.Kinds[i] = q.kind
	}

	return e
}

func (e *TypeKindError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "qobj: %s: unsupported type=%s superrep=%s", e.Op, e.Kind, e.Rep)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Kinds) > 0 {
		parts := make([]string, len(e.Kinds))
		for i, k := range e.Kinds {
			parts[i] = k.String()
		}
		fmt.Fprintf(&b, " (operands [%s])", strings.Join(parts, ", "))
	}

	return b.String()
}

// Is makes errors.Is(err, ErrTypeKind) hold for every TypeKindError.
func (e *TypeKindError) Is(target error) bool { return target == ErrTypeKind }

// qobjErrorf wraps err with an operation tag, preserving it for errors.Is.
func qobjErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
