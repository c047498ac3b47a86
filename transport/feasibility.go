package transport

// Imbalance describes one row or column whose shipped total differs from its limit.
type Imbalance struct {
	Index   int // source or destination index
	Shipped int // row or column total of the allocation
	Limit   int // supply or demand of that node
}

// Report is the feasibility state of an allocation against a Problem.
//
// Crossover and mutation may leave an individual over-shipping some
// destination; the report makes that intermediate state explicit instead of
// hiding it inside the operators.
type Report struct {
	OverShippedSources      []Imbalance // row total > supply
	OverShippedDestinations []Imbalance // column total > demand
	UnusedSupply            []Imbalance // row total < supply
	UnmetDemand             []Imbalance // column total < demand
	NegativeCells           int         // cells with a negative amount
}

// Feasible reports whether no node is over-shipped and no cell is negative.
func (r Report) Feasible() bool {
	return len(r.OverShippedSources) == 0 && len(r.OverShippedDestinations) == 0 && r.NegativeCells == 0
}

// Complete reports whether the allocation is feasible and meets every demand.
func (r Report) Complete() bool {
	return r.Feasible() && len(r.UnmetDemand) == 0
}

// Check compares the row and column totals of a with p's supply and demand.
//
// Complexity: O(S·D).
func Check(a *Allocation, p *Problem) (Report, error) {
	if a == nil || a.rows != p.Sources() || a.cols != p.Destinations() {
		return Report{}, ErrShapeMismatch
	}

	var (
		rep  Report
		i, j int
		sum  int
	)
	for _, v := range a.data {
		if v < 0 {
			rep.NegativeCells++
		}
	}
	for i = 0; i < a.rows; i++ {
		sum = a.RowSum(i)
		switch {
		case sum > p.supply[i]:
			rep.OverShippedSources = append(rep.OverShippedSources, Imbalance{Index: i, Shipped: sum, Limit: p.supply[i]})
		case sum < p.supply[i]:
			rep.UnusedSupply = append(rep.UnusedSupply, Imbalance{Index: i, Shipped: sum, Limit: p.supply[i]})
		}
	}
	for j = 0; j < a.cols; j++ {
		sum = a.ColSum(j)
		switch {
		case sum > p.demand[j]:
			rep.OverShippedDestinations = append(rep.OverShippedDestinations, Imbalance{Index: j, Shipped: sum, Limit: p.demand[j]})
		case sum < p.demand[j]:
			rep.UnmetDemand = append(rep.UnmetDemand, Imbalance{Index: j, Shipped: sum, Limit: p.demand[j]})
		}
	}

	return rep, nil
}
