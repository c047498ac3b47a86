package transport

import (
	"math"
	"math/rand"
)

// Value ranges used by Generate.
const (
	genDemandMin    = 40
	genDemandMax    = 150
	genUnitCostMin  = 2
	genUnitCostMax  = 10
	genFixedCostMin = 30
	genFixedCostMax = 70
	genSupplyFactor = 1.25 // total supply target relative to total demand
)

// Generate draws a random over-supplied instance with integer costs.
//
//   - demand_j ∈ [40, 150].
//   - base = ceil(⌊Σdemand / S⌋ · 1.25); supply_i ∈ [ceil(0.6·base), ceil(1.5·base)].
//   - If Σsupply < ceil(1.25·Σdemand), every source gets
//     ⌊(ceil(1.25·Σdemand) − Σsupply) / S⌋ + S extra units.
//   - unit cost ∈ [2, 10], fixed cost ∈ [30, 70].
//
// A nil rng uses a fixed default seed. Non-positive sizes wrap ErrMalformedInput.
//
// Complexity: O(S·D).
func Generate(sources, destinations int, rng *rand.Rand) (*Problem, error) {
	if sources <= 0 || destinations <= 0 {
		return nil, malformed(nil, "generate needs positive sizes, got %dx%d", sources, destinations)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var (
		demand = make([]int, destinations)
		supply = make([]int, sources)
		total  int
		i, j   int
	)
	for j = range demand {
		demand[j] = uniformInt(rng, genDemandMin, genDemandMax)
		total += demand[j]
	}

	var (
		base   = math.Ceil(float64(total/sources) * genSupplyFactor)
		lo     = int(math.Ceil(base * 0.6))
		hi     = int(math.Ceil(base * 1.5))
		target = int(math.Ceil(float64(total) * genSupplyFactor))
	)
	for i = range supply {
		supply[i] = uniformInt(rng, lo, hi)
	}
	if got := sumInts(supply); got < target {
		extra := (target-got)/sources + sources
		for i = range supply {
			supply[i] += extra
		}
	}

	var (
		unit  = make([][]float64, sources)
		fixed = make([][]float64, sources)
	)
	for i = 0; i < sources; i++ {
		unit[i] = make([]float64, destinations)
		for j = 0; j < destinations; j++ {
			unit[i][j] = float64(uniformInt(rng, genUnitCostMin, genUnitCostMax))
		}
	}
	for i = 0; i < sources; i++ {
		fixed[i] = make([]float64, destinations)
		for j = 0; j < destinations; j++ {
			fixed[i][j] = float64(uniformInt(rng, genFixedCostMin, genFixedCostMax))
		}
	}

	return NewProblem(supply, demand, unit, fixed)
}

// uniformInt draws from the closed interval [lo, hi].
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}
