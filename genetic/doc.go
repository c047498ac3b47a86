// Package genetic implements a genetic-algorithm optimizer for the
// fixed-charge transportation problem described by package transport.
//
// Pipeline (one call to Solve):
//
//	Seeding    — PopulationSize individuals from the greedy encoder.
//	Evaluating — the cost of every individual (optionally on Workers goroutines).
//	per generation:
//	  Selecting   — two parents, fitness-proportional, with replacement.
//	  Recombining — single-cut row crossover, then one mutation attempt.
//	  Evaluating  — the whole replacement population.
//	Terminated — after exactly Generations cycles; the cheapest individual wins.
//
// Fitness is a cost: lower is better. The default WeightPolicy, CostWeight,
// samples parents with weight equal to their cost, so expensive individuals
// are picked more often. InverseCost and MaxMinusCost favour cheap ones.
//
// Crossover and mutation keep every row total but may over-ship destinations;
// Options.Repair projects each child back with transport.Repair.
//
// Determinism: all randomness flows from one *rand.Rand (Options.Rand, or a
// stream seeded from Options.Seed with seed==0 mapped to a fixed default).
// Identical inputs and seed give identical results, with any Workers value.
//
// Errors: ErrInvalidConfiguration, ErrInvalidWeights, and
// transport.ErrMalformedInput for bad problem data; check with errors.Is.
package genetic
