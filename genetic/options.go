// Package genetic - functional options.
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Constructors panic only on programmer errors (nil Rand, nil Observer,
//     negative Workers). Run parameters are validated by Solve, which reports
//     ErrInvalidConfiguration instead of panicking.

package genetic

import (
	"math/rand"

	"github.com/go-logr/logr"
)

// Option customizes Options.
type Option func(*Options)

// NewOptions returns DefaultOptions with opts applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithGenerations sets the number of replacement cycles.
func WithGenerations(n int) Option {
	return func(o *Options) { o.Generations = n }
}

// WithPopulationSize sets the number of individuals per generation.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithMutationRate sets the per-child mutation probability.
func WithMutationRate(rate float64) Option {
	return func(o *Options) { o.MutationRate = rate }
}

// WithWeighting selects the selection weight transform.
func WithWeighting(w WeightPolicy) Option {
	return func(o *Options) { o.Weighting = w }
}

// WithSeeding selects the initial population builder.
func WithSeeding(s SeedingPolicy) Option {
	return func(o *Options) { o.Seeding = s }
}

// WithRepair toggles transport.Repair on every child.
func WithRepair(on bool) Option {
	return func(o *Options) { o.Repair = on }
}

// WithWorkers bounds evaluation goroutines. Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("genetic: WithWorkers(n<0)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithSeed seeds a fresh generator for the run (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand provides an explicit generator. Panics on nil; prefer WithSeed
// for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("genetic: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithLogger sets the run logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithObserver registers a per-generation callback. Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("genetic: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = fn }
}
