// SPDX-License-Identifier: MIT
// Package superop: sentinel errors.
//
// Kind/representation rejections are reported with *qobj.TypeKindError so
// every package shares a single TypeKind contract (errors.Is(err, qobj.ErrTypeKind)).

package superop

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCompletelyPositive is returned by Kraus extraction under
	// WithCPCheck when the Choi matrix is not Hermitian positive semidefinite
	// within the configured tolerance.
	ErrNotCompletelyPositive = errors.New("superop: map is not completely positive")

	// ErrNotSquareMap signals a superoperator whose matrix is not d²×d².
	ErrNotSquareMap = errors.New("superop: matrix is not d²×d²")

	// ErrChannelParameter is returned by the reference channel builders for a
	// parameter outside [0, 1].
	ErrChannelParameter = errors.New("superop: channel parameter out of range")
)

// superopErrorf wraps err with an operation tag, preserving it for errors.Is.
func superopErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
