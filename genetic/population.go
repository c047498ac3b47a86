package genetic

import (
	"math/rand"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/fctp/transport"
)

// seedPopulation builds size individuals according to policy.
//
// GreedySeeding runs the encoder once and clones the result. ShuffledSeeding
// draws its visiting orders from a stream derived from rng, so switching the
// policy does not shift the draws of the main loop.
func seedPopulation(p *transport.Problem, size int, policy SeedingPolicy, rng *rand.Rand) ([]*transport.Allocation, error) {
	var (
		pop    = make([]*transport.Allocation, size)
		supply = p.Supply()
		demand = p.Demand()
		k      int
	)
	switch policy {
	case GreedySeeding:
		proto, err := transport.Greedy(supply, demand)
		if err != nil {
			return nil, err
		}
		for k = range pop {
			pop[k] = proto.Clone()
		}

	case ShuffledSeeding:
		var (
			sub = deriveRNG(rng, streamSeeding)
			err error
		)
		for k = range pop {
			pop[k], err = transport.GreedyOrdered(supply, demand,
				permRange(len(supply), sub), permRange(len(demand), sub))
			if err != nil {
				return nil, err
			}
		}

	default:
		return nil, errorf(ErrInvalidConfiguration, "unknown seeding policy %d", int(policy))
	}

	return pop, nil
}

// evaluate writes the cost of pop[k] into scores[k].
//
// With workers > 1 the population is split over a bounded conc pool. Each
// goroutine writes only its own scores slot and reads the shared, immutable
// cost tables, so results are identical to the sequential path.
func evaluate(p *transport.Problem, pop []*transport.Allocation, scores []float64, workers int) error {
	if workers <= 1 || len(pop) == 1 {
		var err error
		for k := range pop {
			if scores[k], err = p.Cost(pop[k]); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wp    = pool.New().WithMaxGoroutines(workers).WithErrors()
		chunk = (len(pop) + workers - 1) / workers
	)
	for lo := 0; lo < len(pop); lo += chunk {
		hi := min(lo+chunk, len(pop))
		wp.Go(func() error {
			var err error
			for k := lo; k < hi; k++ {
				if scores[k], err = p.Cost(pop[k]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return wp.Wait()
}
