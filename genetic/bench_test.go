// Benchmarks for the genetic operators and a full Solve, on generated
// instances with a fixed seed.
package genetic_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fctp/genetic"
	"github.com/katalvlaran/fctp/transport"
)

// benchSizes are the square instance sizes to benchmark.
var benchSizes = []int{8, 32, 96}

// sinks to defeat dead-code elimination
var (
	sinkA *transport.Allocation
	sinkB bool
	sinkF float64
)

func mustGenerate(b *testing.B, n int) *transport.Problem {
	b.Helper()
	p, err := transport.Generate(n, n, rand.New(rand.NewSource(int64(n))))
	if err != nil {
		b.Fatalf("Generate(%d,%d): %v", n, n, err)
	}

	return p
}

func mustGreedy(b *testing.B, p *transport.Problem) *transport.Allocation {
	b.Helper()
	a, err := transport.Greedy(p.Supply(), p.Demand())
	if err != nil {
		b.Fatalf("Greedy: %v", err)
	}

	return a
}

func BenchmarkCrossover(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p := mustGenerate(b, n)
			a := mustGreedy(b, p)
			rng := rand.New(rand.NewSource(1))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := genetic.Crossover(a, a, rng)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = c
			}
		})
	}
}

func BenchmarkMutate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := mustGreedy(b, mustGenerate(b, n))
			rng := rand.New(rand.NewSource(2))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = genetic.Mutate(a, 1, rng)
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				p := mustGenerate(b, n)
				opts := genetic.NewOptions(
					genetic.WithGenerations(20),
					genetic.WithPopulationSize(32),
					genetic.WithWorkers(workers),
					genetic.WithSeed(3),
				)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					res, err := genetic.Solve(context.Background(), p, opts)
					if err != nil {
						b.Fatal(err)
					}
					sinkF = res.BestFitness
				}
			})
		}
	}
}
