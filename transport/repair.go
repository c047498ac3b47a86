package transport

// Repair projects a back onto the feasible region of p, in place.
//
// Stages:
//  1. Clamp negative cells to zero.
//  2. Trim over-shipped destinations, taking units from the last source first.
//  3. Trim over-shipped sources, taking units from the last destination first.
//  4. Top up routes already in use with min(remaining supply, remaining demand).
//  5. Top up any remaining route in row-major order.
//
// Afterwards Check(a, p) is Feasible, and Complete whenever total supply is at
// least total demand. Stage 4 runs before stage 5 so that repair prefers links
// that already pay their fixed charge.
//
// Complexity: O(S·D).
func Repair(a *Allocation, p *Problem) error {
	if a == nil || a.rows != p.Sources() || a.cols != p.Destinations() {
		return ErrShapeMismatch
	}

	var (
		i, j   int
		k      int
		excess int
		take   int
	)

	// Stage 1.
	for k = range a.data {
		if a.data[k] < 0 {
			a.data[k] = 0
		}
	}

	// Stage 2.
	for j = 0; j < a.cols; j++ {
		excess = a.ColSum(j) - p.demand[j]
		for i = a.rows - 1; i >= 0 && excess > 0; i-- {
			take = min(a.data[i*a.cols+j], excess)
			a.data[i*a.cols+j] -= take
			excess -= take
		}
	}

	// Stage 3.
	for i = 0; i < a.rows; i++ {
		excess = a.RowSum(i) - p.supply[i]
		for j = a.cols - 1; j >= 0 && excess > 0; j-- {
			take = min(a.data[i*a.cols+j], excess)
			a.data[i*a.cols+j] -= take
			excess -= take
		}
	}

	var (
		remSupply = make([]int, a.rows)
		remDemand = make([]int, a.cols)
	)
	for i = 0; i < a.rows; i++ {
		remSupply[i] = p.supply[i] - a.RowSum(i)
	}
	for j = 0; j < a.cols; j++ {
		remDemand[j] = p.demand[j] - a.ColSum(j)
	}

	fill := func(usedOnly bool) {
		for i = 0; i < a.rows; i++ {
			for j = 0; j < a.cols && remSupply[i] > 0; j++ {
				if usedOnly && a.data[i*a.cols+j] == 0 {
					continue
				}
				take = min(remSupply[i], remDemand[j])
				if take <= 0 {
					continue
				}
				a.data[i*a.cols+j] += take
				remSupply[i] -= take
				remDemand[j] -= take
			}
		}
	}
	// Stages 4 and 5.
	fill(true)
	fill(false)

	return nil
}
