package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summarize computes the GenerationStats of one evaluated population.
// scores must be non-empty. StdDev is the sample standard deviation and is
// 0 for a single individual.
func summarize(generation int, scores []float64) GenerationStats {
	var (
		best     = floats.MinIdx(scores)
		mean, sd float64
	)
	if len(scores) > 1 {
		mean, sd = stat.MeanStdDev(scores, nil)
	} else {
		mean = scores[0]
	}

	return GenerationStats{
		Generation: generation,
		Best:       scores[best],
		BestIndex:  best,
		Mean:       mean,
		StdDev:     sd,
		Worst:      floats.Max(scores),
	}
}
