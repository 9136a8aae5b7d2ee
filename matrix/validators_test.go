// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qmaps/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)
	sq := MustDense(t, 2, 2)

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(a))

	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))

	require.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(sq))

	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, b), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}
