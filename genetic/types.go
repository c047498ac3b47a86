package genetic

import (
	"errors"
	"math/rand"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/fctp/transport"
)

// ErrInvalidConfiguration reports run parameters outside their domain:
// PopulationSize < 1, Generations < 1, MutationRate ∉ [0,1], Workers < 0,
// an unknown policy, or fewer than two sources (no crossover cut exists).
var ErrInvalidConfiguration = errors.New("genetic: invalid configuration")

// ErrInvalidWeights reports a fitness vector that cannot drive proportional
// selection: a negative, NaN or infinite weight, or all weights zero.
var ErrInvalidWeights = errors.New("genetic: invalid selection weights")

// WeightPolicy maps population costs to selection weights.
type WeightPolicy int

const (
	// CostWeight uses the cost itself as the weight (the default;
	// costlier individuals are more likely parents).
	CostWeight WeightPolicy = iota
	// InverseCost uses 1/cost; if some individual costs 0, the zero-cost
	// individuals share all the weight.
	InverseCost
	// MaxMinusCost uses max(cost) − cost + ε, so the cheapest individual has
	// the largest weight and no weight is zero.
	MaxMinusCost
)

// String returns the policy name used in flags and logs.
func (w WeightPolicy) String() string {
	switch w {
	case CostWeight:
		return "cost"
	case InverseCost:
		return "inverse"
	case MaxMinusCost:
		return "max-minus"
	default:
		return "unknown"
	}
}

// ParseWeightPolicy is the inverse of WeightPolicy.String.
func ParseWeightPolicy(s string) (WeightPolicy, error) {
	for _, w := range []WeightPolicy{CostWeight, InverseCost, MaxMinusCost} {
		if w.String() == s {
			return w, nil
		}
	}

	return 0, errorf(ErrInvalidConfiguration, "unknown weight policy %q", s)
}

// SeedingPolicy selects how the initial population is built.
type SeedingPolicy int

const (
	// GreedySeeding clones one transport.Greedy allocation into every slot,
	// so the initial population is uniform.
	GreedySeeding SeedingPolicy = iota
	// ShuffledSeeding runs transport.GreedyOrdered with a fresh random
	// source and destination order per individual.
	ShuffledSeeding
)

// String returns the policy name used in flags and logs.
func (s SeedingPolicy) String() string {
	switch s {
	case GreedySeeding:
		return "greedy"
	case ShuffledSeeding:
		return "shuffled"
	default:
		return "unknown"
	}
}

// ParseSeedingPolicy is the inverse of SeedingPolicy.String.
func ParseSeedingPolicy(s string) (SeedingPolicy, error) {
	for _, p := range []SeedingPolicy{GreedySeeding, ShuffledSeeding} {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, errorf(ErrInvalidConfiguration, "unknown seeding policy %q", s)
}

// Observer receives the statistics of every evaluated generation,
// synchronously, on the goroutine running Solve.
type Observer func(GenerationStats)

// Options configures one Solve run. Start from DefaultOptions or NewOptions.
type Options struct {
	// Generations is the exact number of replacement cycles (≥ 1).
	Generations int

	// PopulationSize is the number of individuals per generation (≥ 1).
	PopulationSize int

	// MutationRate is the probability of one mutation attempt per child, in [0,1].
	MutationRate float64

	// Weighting selects the cost → selection weight transform.
	Weighting WeightPolicy

	// Seeding selects the initial population builder.
	Seeding SeedingPolicy

	// Repair applies transport.Repair to every child after mutation.
	Repair bool

	// Workers bounds the goroutines used for fitness evaluation; 0 and 1 both
	// mean sequential evaluation.
	Workers int

	// Seed seeds the run when Rand is nil. Seed==0 selects defaultRNGSeed.
	Seed int64

	// Rand, when non-nil, is the random source for the run. It is not safe
	// for concurrent use; do not share it between concurrent Solve calls.
	Rand *rand.Rand

	// Logger receives run-level (V(0)) and per-generation (V(1)) records.
	Logger logr.Logger

	// Observer, when non-nil, is called once per evaluated generation.
	Observer Observer
}

// DefaultOptions returns the default configuration: 50 generations of 20
// individuals, mutation rate 0.1, cost-proportional selection, greedy seeding,
// no repair, sequential evaluation, default seed and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Generations:    50,
		PopulationSize: 20,
		MutationRate:   0.1,
		Weighting:      CostWeight,
		Seeding:        GreedySeeding,
		Workers:        1,
		Logger:         logr.Discard(),
	}
}

// GenerationStats summarizes the costs of one evaluated population.
// Generation 0 is the seeded population.
type GenerationStats struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	BestIndex  int     `json:"best_index"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
	Worst      float64 `json:"worst"`
}

// Result is the outcome of a Solve run. It is owned by the caller.
type Result struct {
	// Routes lists the used routes of Best in row-major order.
	Routes []transport.Route

	// BestFitness is the total cost of Best (the minimum of the final population).
	BestFitness float64

	// Best is the cheapest individual of the final population.
	Best *transport.Allocation

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Generations is the number of completed replacement cycles.
	Generations int

	// Mutations counts mutation calls that moved units.
	Mutations int

	// History holds one entry per evaluated generation, starting at 0.
	History []GenerationStats
}

// ElapsedSeconds returns Elapsed in seconds.
func (r Result) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}
