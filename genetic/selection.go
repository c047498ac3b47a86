package genetic

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/fctp/transport"
)

// weightEps keeps MaxMinusCost weights strictly positive.
const weightEps = 1e-9

// Selector samples population indices with probability proportional to a
// weight derived from each individual's cost. Build one per generation; it
// only reads the fitness slice during construction.
type Selector struct {
	cum []float64 // cum[k] = w_0 + … + w_k
}

// NewSelector validates fitnesses, applies policy and prepares cumulative
// weights for O(log n) sampling.
//
// Errors:
//   - ErrInvalidWeights: empty input, a negative/NaN/Inf fitness, or a total weight of 0.
//   - ErrInvalidConfiguration: unknown policy.
//
// Complexity: O(n).
func NewSelector(fitnesses []float64, policy WeightPolicy) (*Selector, error) {
	if len(fitnesses) == 0 {
		return nil, errorf(ErrInvalidWeights, "empty fitness vector")
	}

	var (
		k     int
		f     float64
		worst float64
		zeros int
	)
	for k, f = range fitnesses {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return nil, errorf(ErrInvalidWeights, "fitness[%d] = %v", k, f)
		}
		worst = math.Max(worst, f)
		if f == 0 {
			zeros++
		}
	}

	var (
		cum   = make([]float64, len(fitnesses))
		w     float64
		total float64
	)
	for k, f = range fitnesses {
		switch policy {
		case CostWeight:
			w = f
		case InverseCost:
			switch {
			case zeros == 0:
				w = 1 / f
			case f == 0:
				w = 1
			default:
				w = 0
			}
		case MaxMinusCost:
			w = worst - f + weightEps
		default:
			return nil, errorf(ErrInvalidConfiguration, "unknown weight policy %d", int(policy))
		}
		total += w
		cum[k] = total
	}
	if total <= 0 || math.IsInf(total, 0) {
		return nil, errorf(ErrInvalidWeights, "total weight %v under policy %s", total, policy)
	}

	return &Selector{cum: cum}, nil
}

// Pick draws one index. Individuals with weight 0 are never returned.
//
// Complexity: O(log n).
func (s *Selector) Pick(rng *rand.Rand) int {
	var (
		n     = len(s.cum)
		total = s.cum[n-1]
		r     = rng.Float64() * total
	)
	k := sort.Search(n, func(i int) bool { return s.cum[i] > r })
	if k == n {
		// r rounded up to total: fall back to the last index with positive weight.
		k = n - 1
		for k > 0 && s.cum[k] == s.cum[k-1] {
			k--
		}
	}

	return k
}

// SelectParent returns the population member chosen by one fitness-proportional
// draw. The returned allocation is the member itself, not a copy; callers must
// not modify it.
//
// Complexity: O(n).
func SelectParent(population []*transport.Allocation, fitnesses []float64, policy WeightPolicy, rng *rand.Rand) (*transport.Allocation, error) {
	if len(population) != len(fitnesses) {
		return nil, errorf(ErrInvalidWeights, "%d individuals but %d fitness values", len(population), len(fitnesses))
	}
	sel, err := NewSelector(fitnesses, policy)
	if err != nil {
		return nil, err
	}

	return population[sel.Pick(rng)], nil
}
