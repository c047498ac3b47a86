package transport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fctp/transport"
)

// textbook is the 2×2 balanced instance used across the package tests.
// Its exact optimum ships 20 units 0→0, 5 units 1→0 and 25 units 1→1 for 85.
func textbook(t *testing.T) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblem(
		[]int{20, 30},
		[]int{25, 25},
		[][]float64{{2, 3}, {4, 1}},
		[][]float64{{0, 0}, {0, 0}},
	)
	require.NoError(t, err)

	return p
}

// withFixed is a 3×4 balanced instance with non-zero fixed charges.
func withFixed(t *testing.T) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblem(
		[]int{30, 25, 45},
		[]int{20, 30, 15, 35},
		[][]float64{{4, 6, 9, 5}, {7, 3, 4, 8}, {5, 8, 2, 6}},
		[][]float64{{40, 35, 50, 30}, {45, 40, 30, 55}, {35, 60, 40, 45}},
	)
	require.NoError(t, err)

	return p
}

func mustRows(t *testing.T, rows [][]int) *transport.Allocation {
	t.Helper()
	a, err := transport.NewAllocationFromRows(rows)
	require.NoError(t, err)

	return a
}
