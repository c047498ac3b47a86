package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fctp/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateShapes(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateShape(a, 2, 3))
	require.ErrorIs(t, matrix.ValidateShape(a, 3, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 1, 1), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
}

func TestValidateFiniteNonNegative(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFiniteNonNegative(m))

	require.NoError(t, m.Set(1, 1, -0.5))
	err = matrix.ValidateFiniteNonNegative(m)
	require.ErrorIs(t, err, matrix.ErrNegative)
	require.Contains(t, err.Error(), "(1,1)")

	require.ErrorIs(t, matrix.ValidateFiniteNonNegative(nil), matrix.ErrNilMatrix)
}
