package transport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fctp/matrix"
	"github.com/katalvlaran/fctp/transport"
)

func TestAllocation_Basics(t *testing.T) {
	_, err := transport.NewAllocation(0, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = transport.NewAllocationFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 3, a.Cols())
	require.Equal(t, 6, a.RowSum(0))
	require.Equal(t, 15, a.RowSum(1))
	require.Equal(t, 9, a.ColSum(2))
	require.Equal(t, 21, a.Total())

	a.Set(0, 0, 10)
	a.Add(0, 0, -3)
	require.Equal(t, 7, a.At(0, 0))
	require.Equal(t, []int{7, 2, 3}, a.Row(0))
	require.Panics(t, func() { a.At(2, 0) })
	require.Panics(t, func() { a.Row(-1) })
	require.Equal(t, "[7 2 3]\n[4 5 6]\n", a.String())
}

func TestAllocation_CloneAndCopy(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	b := mustRows(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	c := a.Clone()
	require.True(t, c.Equal(a))
	c.Set(0, 0, 99)
	require.Equal(t, 1, a.At(0, 0), "clone must not alias")

	require.NoError(t, c.CopyRowsFrom(b, 1, 3))
	require.Equal(t, [][]int{{99, 2}, {9, 10}, {11, 12}}, c.ToRows())

	require.ErrorIs(t, c.CopyRowsFrom(b, 2, 4), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, c.CopyRowsFrom(mustRows(t, [][]int{{1}}), 0, 1), transport.ErrShapeMismatch)

	require.NoError(t, c.CopyFrom(a))
	require.True(t, c.Equal(a))
	require.False(t, c.Equal(mustRows(t, [][]int{{1, 2}})))
}
