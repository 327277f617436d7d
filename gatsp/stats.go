package gatsp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises the fitness distribution of one generation.
// A degenerate (+Inf) fitness makes Mean and Stdev non-finite.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Stdev      float64 // Sample standard deviation.
}

// String renders the stats on one line.
func (s GenerationStats) String() string {
	return fmt.Sprintf("generation %d: best %.6f worst %.6f mean %.6f stdev %.6f",
		s.Generation, s.Best, s.Worst, s.Mean, s.Stdev)
}

// fitnesses extracts the fitness column of tours.
func fitnesses(tours []*Tour) []float64 {
	values := make([]float64, len(tours))
	for i, t := range tours {
		values[i] = t.Fitness
	}
	return values
}

// computeStats calculates GenerationStats for a non-empty set of tours.
func computeStats(generation int, tours []*Tour) GenerationStats {
	values := fitnesses(tours)
	s := GenerationStats{
		Generation: generation,
		Best:       floats.Max(values),
		Worst:      floats.Min(values),
		Mean:       stat.Mean(values, nil),
	}
	if len(values) > 1 {
		s.Stdev = stat.StdDev(values, nil)
	}
	return s
}
