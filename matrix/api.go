// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// IdentityLike returns the identity with the row count of a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.r)
}

// Dagger is an alias of Adjoint (physics notation, A†).
func Dagger(m *Dense) (*Dense, error) { return Adjoint(m) }

// KronAll folds Kron left to right: ms[0] ⊗ ms[1] ⊗ … ⊗ ms[k-1].
// A single operand is cloned so the result never aliases an input.
// Errors: ErrNilMatrix (empty list or nil operand).
//
// Complexity:
//   - Time O(Π rows·cols), Space O(Π rows·cols) per step.
func KronAll(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKron, ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	out := ms[0].Clone()
	var err error
	for _, m := range ms[1:] {
		if out, err = Kron(out, m); err != nil {
			return nil, err
		}
	}

	return out, nil
}
