package transport

import (
	"fmt"

	"github.com/katalvlaran/fctp/matrix"
)

// Route is one used transportation link of an allocation.
// Cost is Amount·unitCost + fixedCost for that cell.
type Route struct {
	Supplier int     `json:"supplier" yaml:"supplier"`
	Consumer int     `json:"consumer" yaml:"consumer"`
	Amount   int     `json:"amount" yaml:"amount"`
	Cost     float64 `json:"cost" yaml:"cost"`
}

// Fitness returns the total cost of a: the sum over cells with a positive
// amount of amount·unitCost + fixedCost. Lower is better. The all-zero
// allocation costs 0.
//
// Returns ErrShapeMismatch when the three shapes disagree.
//
// Complexity: O(S·D).
func Fitness(a *Allocation, unitCost, fixedCost *matrix.Dense) (float64, error) {
	if err := checkCostShapes(a, unitCost, fixedCost); err != nil {
		return 0, err
	}

	return fitness(a, unitCost, fixedCost), nil
}

// Cost is Fitness against p's cost tables.
func (p *Problem) Cost(a *Allocation) (float64, error) {
	return Fitness(a, p.unitCost, p.fixedCost)
}

// Routes lists the cells of a with a positive amount in row-major
// (supplier, consumer) order, each priced like Fitness prices it.
//
// Complexity: O(S·D).
func (p *Problem) Routes(a *Allocation) ([]Route, error) {
	if err := checkCostShapes(a, p.unitCost, p.fixedCost); err != nil {
		return nil, err
	}

	var (
		out    []Route
		i, j   int
		amount int
		uc, fc []float64
	)
	for i = 0; i < a.rows; i++ {
		uc, fc = p.unitCost.RawRow(i), p.fixedCost.RawRow(i)
		for j = 0; j < a.cols; j++ {
			amount = a.data[i*a.cols+j]
			if amount > 0 {
				out = append(out, Route{
					Supplier: i,
					Consumer: j,
					Amount:   amount,
					Cost:     float64(amount)*uc[j] + fc[j],
				})
			}
		}
	}

	return out, nil
}

// RoutesCost sums the Cost field of routes.
func RoutesCost(routes []Route) float64 {
	var total float64
	for _, r := range routes {
		total += r.Cost
	}

	return total
}

func fitness(a *Allocation, unitCost, fixedCost *matrix.Dense) float64 {
	var (
		total  float64
		i, j   int
		amount int
		uc, fc []float64
	)
	for i = 0; i < a.rows; i++ {
		uc, fc = unitCost.RawRow(i), fixedCost.RawRow(i)
		for j = 0; j < a.cols; j++ {
			amount = a.data[i*a.cols+j]
			if amount > 0 {
				total += float64(amount)*uc[j] + fc[j]
			}
		}
	}

	return total
}

func checkCostShapes(a *Allocation, unitCost, fixedCost *matrix.Dense) error {
	if a == nil || unitCost == nil || fixedCost == nil {
		return fmt.Errorf("nil operand: %w", ErrShapeMismatch)
	}
	if unitCost.Rows() != a.rows || unitCost.Cols() != a.cols ||
		fixedCost.Rows() != a.rows || fixedCost.Cols() != a.cols {
		return fmt.Errorf("allocation %dx%d, unit cost %dx%d, fixed cost %dx%d: %w",
			a.rows, a.cols, unitCost.Rows(), unitCost.Cols(), fixedCost.Rows(), fixedCost.Cols(), ErrShapeMismatch)
	}

	return nil
}
