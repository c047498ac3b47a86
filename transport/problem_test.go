package transport_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fctp/matrix"
	"github.com/katalvlaran/fctp/transport"
)

func TestNewProblem_Valid(t *testing.T) {
	p := textbook(t)

	require.Equal(t, 2, p.Sources())
	require.Equal(t, 2, p.Destinations())
	require.Equal(t, 50, p.TotalSupply())
	require.Equal(t, 50, p.TotalDemand())
	require.Equal(t, transport.Balanced, p.Balance())
	require.Equal(t, 30, p.SupplyAt(1))
	require.Equal(t, 25, p.DemandAt(0))

	// Accessors hand out copies.
	s := p.Supply()
	s[0] = 999
	require.Equal(t, 20, p.SupplyAt(0))
	uc := p.UnitCost()
	require.NoError(t, uc.Set(0, 0, 100))
	again, err := p.UnitCost().At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, again)
}

func TestNewProblem_Malformed(t *testing.T) {
	zero2 := [][]float64{{0, 0}, {0, 0}}
	cases := []struct {
		name   string
		supply []int
		demand []int
		unit   [][]float64
		fixed  [][]float64
		cause  error
	}{
		{"no sources", nil, []int{1}, [][]float64{{1}}, [][]float64{{1}}, nil},
		{"no destinations", []int{1}, []int{}, [][]float64{{1}}, [][]float64{{1}}, nil},
		{"negative supply", []int{-1, 2}, []int{1, 1}, zero2, zero2, nil},
		{"negative demand", []int{1, 2}, []int{1, -1}, zero2, zero2, nil},
		{"unit rows", []int{1, 2}, []int{1, 2}, [][]float64{{1, 2}}, zero2, matrix.ErrDimensionMismatch},
		{"fixed cols", []int{1, 2}, []int{1, 2}, zero2, [][]float64{{1}, {2}}, matrix.ErrDimensionMismatch},
		{"ragged", []int{1, 2}, []int{1, 2}, [][]float64{{1, 2}, {3}}, zero2, matrix.ErrBadShape},
		{"nan", []int{1, 2}, []int{1, 2}, [][]float64{{1, math.NaN()}, {3, 4}}, zero2, matrix.ErrNaNInf},
		{"negative cost", []int{1, 2}, []int{1, 2}, zero2, [][]float64{{1, -2}, {3, 4}}, matrix.ErrNegative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transport.NewProblem(tc.supply, tc.demand, tc.unit, tc.fixed)
			require.ErrorIs(t, err, transport.ErrMalformedInput)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	one := [][]float64{{1}}
	over, err := transport.NewProblem([]int{5}, []int{3}, one, one)
	require.NoError(t, err)
	require.Equal(t, transport.OverSupplied, over.Balance())

	under, err := transport.NewProblem([]int{3}, []int{5}, one, one)
	require.NoError(t, err)
	require.Equal(t, transport.UnderSupplied, under.Balance())
	require.Equal(t, "under-supplied", under.Balance().String())
	require.Equal(t, "unknown", transport.Balance(42).String())
}
