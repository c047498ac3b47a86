package genetic

import (
	"math/rand"

	"github.com/katalvlaran/fctp/transport"
)

// Crossover builds a child from a single row cut k drawn uniformly from
// [1, Rows−1]: rows [0,k) come from p1 and rows [k,Rows) from p2.
//
// Each parent's rows keep their own totals, but the spliced columns may
// exceed demand; see transport.Check and transport.Repair.
//
// Errors: transport.ErrShapeMismatch for parents of different shapes,
// ErrInvalidConfiguration when Rows < 2.
//
// Complexity: O(S·D).
func Crossover(p1, p2 *transport.Allocation, rng *rand.Rand) (*transport.Allocation, error) {
	child, _ := transport.NewAllocation(p1.Rows(), p1.Cols())
	if _, err := crossoverInto(child, p1, p2, rng); err != nil {
		return nil, err
	}

	return child, nil
}

// CrossoverAt is Crossover with an explicit cut k ∈ [1, Rows−1].
func CrossoverAt(p1, p2 *transport.Allocation, k int) (*transport.Allocation, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, err
	}
	if k < 1 || k >= p1.Rows() {
		return nil, errorf(ErrInvalidConfiguration, "cut %d outside [1,%d]", k, p1.Rows()-1)
	}
	child, _ := transport.NewAllocation(p1.Rows(), p1.Cols())
	spliceRows(child, p1, p2, k)

	return child, nil
}

// crossoverInto writes the child into dst (same shape as the parents) and
// returns the cut it drew. dst must not alias either parent.
func crossoverInto(dst, p1, p2 *transport.Allocation, rng *rand.Rand) (int, error) {
	if err := checkParents(p1, p2); err != nil {
		return 0, err
	}
	k := 1 + rng.Intn(p1.Rows()-1)
	spliceRows(dst, p1, p2, k)

	return k, nil
}

func checkParents(p1, p2 *transport.Allocation) error {
	if !p1.SameShape(p2) {
		return transport.ErrShapeMismatch
	}
	if p1.Rows() < 2 {
		return errorf(ErrInvalidConfiguration, "crossover needs at least 2 sources, got %d", p1.Rows())
	}

	return nil
}

func spliceRows(dst, p1, p2 *transport.Allocation, k int) {
	// Shapes are checked by the callers; the copies cannot fail.
	_ = dst.CopyRowsFrom(p1, 0, k)
	_ = dst.CopyRowsFrom(p2, k, p1.Rows())
}
