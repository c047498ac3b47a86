package genetic

import (
	"math/rand"

	"github.com/katalvlaran/fctp/transport"
)

// Mutate makes at most one transfer attempt on a, in place.
//
// With probability rate it draws a row i and two columns j, k; when j ≠ k
// and a(i,j) > 0 it moves a uniform amount in [1, a(i,j)] from (i,j) to
// (i,k). The row total is unchanged; column totals may change. Drawing
// j == k or an empty source cell is a silent no-op.
//
// Returns true when units moved. rate ≤ 0 never mutates.
//
// Complexity: O(1).
func Mutate(a *transport.Allocation, rate float64, rng *rand.Rand) bool {
	if rng.Float64() >= rate {
		return false
	}

	var (
		i = rng.Intn(a.Rows())
		j = rng.Intn(a.Cols())
		k = rng.Intn(a.Cols())
	)
	if j == k || a.At(i, j) <= 0 {
		return false
	}
	amount := 1 + rng.Intn(a.At(i, j))
	a.Add(i, j, -amount)
	a.Add(i, k, amount)

	return true
}
