// Package genetic - the evolution loop.
//
// Solve is the single entry point: it validates inputs, seeds and evaluates
// the population, then runs exactly Generations replacement cycles. Two
// population buffers alternate between generations so children never alias
// their parents.
package genetic

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/fctp/transport"
)

// Solve runs the genetic algorithm on p and returns the cheapest individual of
// the final population.
//
// Contracts:
//   - p must be non-nil (transport.ErrMalformedInput otherwise).
//   - opts must pass validation (ErrInvalidConfiguration otherwise).
//   - ctx is checked between generations; cancellation returns ctx.Err()
//     wrapped, with a zero Result.
//
// Errors are fatal: no partial Result is returned.
//
// Complexity: O(G·N·(S·D + log N)) for G generations of N individuals.
func Solve(ctx context.Context, p *transport.Problem, opts Options) (Result, error) {
	start := time.Now()

	if p == nil {
		return Result{}, fmt.Errorf("%w: nil problem", transport.ErrMalformedInput)
	}
	if err := validateOptions(p, opts); err != nil {
		return Result{}, err
	}

	var (
		log = opts.Logger
		rng = opts.Rand
	)
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}
	log.Info("starting genetic search",
		"sources", p.Sources(), "destinations", p.Destinations(),
		"balance", p.Balance().String(),
		"generations", opts.Generations, "population", opts.PopulationSize,
		"mutationRate", opts.MutationRate, "weighting", opts.Weighting.String(),
		"seeding", opts.Seeding.String(), "repair", opts.Repair, "workers", opts.Workers)
	if p.Balance() == transport.UnderSupplied {
		log.Info("total supply is below total demand; some demand will stay unmet",
			"supply", p.TotalSupply(), "demand", p.TotalDemand())
	}

	// Stage 1: seeding.
	pop, err := seedPopulation(p, opts.PopulationSize, opts.Seeding, rng)
	if err != nil {
		return Result{}, err
	}
	if opts.Repair {
		for _, ind := range pop {
			if err = transport.Repair(ind, p); err != nil {
				return Result{}, err
			}
		}
	}
	next := make([]*transport.Allocation, opts.PopulationSize)
	for k := range next {
		next[k] = p.NewAllocation()
	}

	// Stage 2: initial evaluation.
	scores := make([]float64, opts.PopulationSize)
	if err = evaluate(p, pop, scores, opts.Workers); err != nil {
		return Result{}, err
	}
	history := make([]GenerationStats, 0, opts.Generations+1)
	history = append(history, record(opts, summarize(0, scores)))

	// Stage 3: generations.
	var (
		gen       int
		slot      int
		sel       *Selector
		mutations int
	)
	for gen = 1; gen <= opts.Generations; gen++ {
		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("genetic: stopped before generation %d: %w", gen, err)
		}

		sel, err = NewSelector(scores, opts.Weighting)
		if err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", gen, err)
		}
		for slot = 0; slot < opts.PopulationSize; slot++ {
			var (
				first  = pop[sel.Pick(rng)]
				second = pop[sel.Pick(rng)]
			)
			if _, err = crossoverInto(next[slot], first, second, rng); err != nil {
				return Result{}, err
			}
			if Mutate(next[slot], opts.MutationRate, rng) {
				mutations++
			}
			if opts.Repair {
				if err = transport.Repair(next[slot], p); err != nil {
					return Result{}, err
				}
			}
		}
		pop, next = next, pop

		if err = evaluate(p, pop, scores, opts.Workers); err != nil {
			return Result{}, err
		}
		history = append(history, record(opts, summarize(gen, scores)))
	}

	// Stage 4: extract the cheapest individual.
	final := history[len(history)-1]
	best := pop[final.BestIndex].Clone()
	routes, err := p.Routes(best)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Routes:      routes,
		BestFitness: final.Best,
		Best:        best,
		Generations: opts.Generations,
		Mutations:   mutations,
		History:     history,
		Elapsed:     time.Since(start),
	}
	log.Info("genetic search finished",
		"bestFitness", res.BestFitness, "routes", len(res.Routes),
		"mutations", mutations, "elapsed", res.Elapsed.String())

	return res, nil
}

// record logs and forwards one generation summary.
func record(opts Options, st GenerationStats) GenerationStats {
	opts.Logger.V(1).Info("generation evaluated",
		"generation", st.Generation, "best", st.Best, "mean", st.Mean,
		"stdDev", st.StdDev, "worst", st.Worst)
	if opts.Observer != nil {
		opts.Observer(st)
	}

	return st
}

// validateOptions checks opts against the run domain and p's shape.
//
// Complexity: O(1).
func validateOptions(p *transport.Problem, opts Options) error {
	switch {
	case opts.PopulationSize < 1:
		return errorf(ErrInvalidConfiguration, "population size must be ≥ 1, got %d", opts.PopulationSize)
	case opts.Generations < 1:
		return errorf(ErrInvalidConfiguration, "generations must be ≥ 1, got %d", opts.Generations)
	case math.IsNaN(opts.MutationRate) || opts.MutationRate < 0 || opts.MutationRate > 1:
		return errorf(ErrInvalidConfiguration, "mutation rate must be in [0,1], got %v", opts.MutationRate)
	case opts.Workers < 0:
		return errorf(ErrInvalidConfiguration, "workers must be ≥ 0, got %d", opts.Workers)
	case opts.Weighting.String() == "unknown":
		return errorf(ErrInvalidConfiguration, "unknown weight policy %d", int(opts.Weighting))
	case opts.Seeding.String() == "unknown":
		return errorf(ErrInvalidConfiguration, "unknown seeding policy %d", int(opts.Seeding))
	case p.Sources() < 2:
		return errorf(ErrInvalidConfiguration, "crossover needs at least 2 sources, got %d", p.Sources())
	}

	return nil
}
