package transport

import (
	"github.com/katalvlaran/fctp/matrix"
)

// Balance classifies an instance by comparing total supply and total demand.
type Balance int

const (
	// Balanced: total supply equals total demand.
	Balanced Balance = iota
	// OverSupplied: total supply exceeds total demand; some capacity stays unused.
	OverSupplied
	// UnderSupplied: total demand exceeds total supply; some demand stays unmet.
	UnderSupplied
)

// String returns a lower-case label suitable for logs.
func (b Balance) String() string {
	switch b {
	case Balanced:
		return "balanced"
	case OverSupplied:
		return "over-supplied"
	case UnderSupplied:
		return "under-supplied"
	default:
		return "unknown"
	}
}

// Problem is an immutable fixed-charge transportation instance.
//
// Invariants (enforced by the constructors):
//   - len(supply) ≥ 1, len(demand) ≥ 1, every quantity ≥ 0.
//   - unitCost and fixedCost are sources×destinations, finite and ≥ 0.
//
// Totals are not required to balance; see Balance.
type Problem struct {
	supply    []int
	demand    []int
	unitCost  *matrix.Dense
	fixedCost *matrix.Dense
}

// NewProblem validates and copies the given data into a Problem.
// All failures wrap ErrMalformedInput.
//
// Complexity: O(S·D).
func NewProblem(supply, demand []int, unitCost, fixedCost [][]float64) (*Problem, error) {
	if len(supply) == 0 || len(demand) == 0 {
		return nil, malformed(nil, "supply and demand must be non-empty (got %d sources, %d destinations)",
			len(supply), len(demand))
	}

	uc, err := matrix.NewDenseFromRows(unitCost)
	if err != nil {
		return nil, malformed(err, "unit cost")
	}
	fc, err := matrix.NewDenseFromRows(fixedCost)
	if err != nil {
		return nil, malformed(err, "fixed cost")
	}

	return NewProblemFromDense(supply, demand, uc, fc)
}

// NewProblemFromDense builds a Problem around existing cost matrices.
// The matrices are cloned; the caller keeps ownership of its copies.
//
// Complexity: O(S·D).
func NewProblemFromDense(supply, demand []int, unitCost, fixedCost *matrix.Dense) (*Problem, error) {
	var (
		s   = len(supply)
		d   = len(demand)
		i   int
		err error
	)
	if s == 0 || d == 0 {
		return nil, malformed(nil, "supply and demand must be non-empty (got %d sources, %d destinations)", s, d)
	}
	for i = 0; i < s; i++ {
		if supply[i] < 0 {
			return nil, malformed(nil, "supply[%d] = %d is negative", i, supply[i])
		}
	}
	for i = 0; i < d; i++ {
		if demand[i] < 0 {
			return nil, malformed(nil, "demand[%d] = %d is negative", i, demand[i])
		}
	}
	if err = matrix.ValidateShape(unitCost, s, d); err != nil {
		return nil, malformed(err, "unit cost")
	}
	if err = matrix.ValidateShape(fixedCost, s, d); err != nil {
		return nil, malformed(err, "fixed cost")
	}
	if err = matrix.ValidateFiniteNonNegative(unitCost); err != nil {
		return nil, malformed(err, "unit cost")
	}
	if err = matrix.ValidateFiniteNonNegative(fixedCost); err != nil {
		return nil, malformed(err, "fixed cost")
	}

	return &Problem{
		supply:    append([]int(nil), supply...),
		demand:    append([]int(nil), demand...),
		unitCost:  unitCost.Clone().(*matrix.Dense),
		fixedCost: fixedCost.Clone().(*matrix.Dense),
	}, nil
}

// Sources returns the number of supply nodes.
func (p *Problem) Sources() int { return len(p.supply) }

// Destinations returns the number of demand nodes.
func (p *Problem) Destinations() int { return len(p.demand) }

// Supply returns a copy of the supply vector.
func (p *Problem) Supply() []int { return append([]int(nil), p.supply...) }

// Demand returns a copy of the demand vector.
func (p *Problem) Demand() []int { return append([]int(nil), p.demand...) }

// SupplyAt returns the capacity of source i.
func (p *Problem) SupplyAt(i int) int { return p.supply[i] }

// DemandAt returns the requirement of destination j.
func (p *Problem) DemandAt(j int) int { return p.demand[j] }

// UnitCost returns a copy of the per-unit cost matrix.
func (p *Problem) UnitCost() *matrix.Dense { return p.unitCost.Clone().(*matrix.Dense) }

// FixedCost returns a copy of the fixed-charge matrix.
func (p *Problem) FixedCost() *matrix.Dense { return p.fixedCost.Clone().(*matrix.Dense) }

// TotalSupply returns the sum of all capacities.
func (p *Problem) TotalSupply() int { return sumInts(p.supply) }

// TotalDemand returns the sum of all requirements.
func (p *Problem) TotalDemand() int { return sumInts(p.demand) }

// Balance compares total supply against total demand.
func (p *Problem) Balance() Balance {
	var (
		s = p.TotalSupply()
		d = p.TotalDemand()
	)
	switch {
	case s == d:
		return Balanced
	case s > d:
		return OverSupplied
	default:
		return UnderSupplied
	}
}

// NewAllocation returns an all-zero allocation shaped for p.
func (p *Problem) NewAllocation() *Allocation {
	a, _ := NewAllocation(p.Sources(), p.Destinations()) // shape is positive by construction

	return a
}

func sumInts(xs []int) int {
	var total int
	for _, x := range xs {
		total += x
	}

	return total
}
