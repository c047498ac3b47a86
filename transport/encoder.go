package transport

// Greedy builds one allocation by row-major first-fit filling.
//
// Sources are visited in index order and, inside each source, destinations in
// index order. Cell (i, j) receives
//
//	min(supply[i] − shipped from i so far, demand[j] − shipped into j by rows 0..i−1)
//
// whenever both terms are positive. A source whose supply is exhausted ships
// nothing further, and a destination once saturated receives nothing from
// later sources. There is no backtracking, so the result is feasible
// (row sums ≤ supply, column sums ≤ demand) but generally not optimal; on a
// balanced or over-supplied instance every demand is met.
//
// Returns ErrMalformedInput when either vector is empty.
//
// Complexity: O(S·D) time, O(D) extra space.
func Greedy(supply, demand []int) (*Allocation, error) {
	return greedyOrdered(supply, demand, nil, nil)
}

// GreedyOrdered is Greedy over a caller-chosen visiting order. rowOrder and
// colOrder must be permutations of 0..S−1 and 0..D−1; nil selects the natural
// order. Cells are still addressed by their original indices.
//
// Complexity: O(S·D) time, O(D) extra space.
func GreedyOrdered(supply, demand, rowOrder, colOrder []int) (*Allocation, error) {
	if rowOrder != nil && !isPermutation(rowOrder, len(supply)) {
		return nil, malformed(nil, "row order is not a permutation of %d sources", len(supply))
	}
	if colOrder != nil && !isPermutation(colOrder, len(demand)) {
		return nil, malformed(nil, "column order is not a permutation of %d destinations", len(demand))
	}

	return greedyOrdered(supply, demand, rowOrder, colOrder)
}

func greedyOrdered(supply, demand, rowOrder, colOrder []int) (*Allocation, error) {
	a, err := NewAllocation(len(supply), len(demand))
	if err != nil {
		return nil, malformed(err, "encoder needs at least one source and one destination")
	}

	var (
		placed    = make([]int, len(demand)) // column totals of rows already filled
		r, c      int
		i, j      int
		remSupply int
		remDemand int
		amount    int
	)
	for r = 0; r < len(supply); r++ {
		i = pick(rowOrder, r)
		remSupply = supply[i]
		for c = 0; c < len(demand) && remSupply > 0; c++ {
			j = pick(colOrder, c)
			remDemand = demand[j] - placed[j]
			if remDemand <= 0 {
				continue
			}
			amount = min(remSupply, remDemand)
			a.Set(i, j, amount)
			placed[j] += amount
			remSupply -= amount
		}
	}

	return a, nil
}

func pick(order []int, k int) int {
	if order == nil {
		return k
	}

	return order[k]
}

func isPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
