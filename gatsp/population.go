package gatsp

import (
	"fmt"
	"math/rand"
	"slices"
)

// Population holds the current generation of tours and advances it under the
// fixed replacement policy of its Reproduction. Its size never changes.
type Population struct {
	Config       *Config // Private copy taken at construction; never the caller's.
	Problem      *Problem
	Reproduction *Reproduction
	Generation   int // Number of completed AdvanceGeneration calls.

	tours []*Tour
	rng   *rand.Rand
}

// NewPopulation validates config and creates a population of randomly
// shuffled tours. All randomness of the population is drawn from rng.
func NewPopulation(config *Config, rng *rand.Rand) (*Population, error) {
	p, err := newPopulation(config, rng)
	if err != nil {
		return nil, err
	}
	p.tours = p.Reproduction.CreateNewPopulation(p.Config.Population.PopSize, rng)
	return p, nil
}

// NewPopulationFromTours is like NewPopulation but starts from the given
// tours. Their fitness is recomputed under the configured fitness function.
func NewPopulationFromTours(config *Config, tours []*Tour, rng *rand.Rand) (*Population, error) {
	p, err := newPopulation(config, rng)
	if err != nil {
		return nil, err
	}
	if len(tours) != p.Config.Population.PopSize {
		return nil, fmt.Errorf("config error: got %d initial tours for pop_size %d: %w",
			len(tours), p.Config.Population.PopSize, ErrConfig)
	}
	n := p.Problem.NumCities()
	p.tours = make([]*Tour, len(tours))
	for i, t := range tours {
		if err := t.Validate(n); err != nil {
			return nil, fmt.Errorf("config error: initial tour %d: %v: %w", i, err, ErrConfig)
		}
		p.tours[i] = NewTour(append([]int(nil), t.Order...), p.Problem)
	}
	return p, nil
}

// newPopulation validates and keeps a copy of config, so later edits to the
// caller's value cannot reach a running population.
func newPopulation(config *Config, rng *rand.Rand) (*Population, error) {
	cfg := *config
	cfg.Cities = slices.Clone(config.Cities)
	config = &cfg

	if err := config.Validate(); err != nil {
		return nil, err
	}
	fitness, err := FitnessByName(config.Simulation.Fitness)
	if err != nil {
		return nil, err
	}
	problem := NewProblem(config.Cities, fitness)
	reproduction, err := NewReproduction(&config.Reproduction, config.Population.PopSize, problem)
	if err != nil {
		return nil, err
	}
	return &Population{
		Config:       config,
		Problem:      problem,
		Reproduction: reproduction,
		rng:          rng,
	}, nil
}

// Size returns the number of tours in every generation.
func (p *Population) Size() int {
	return len(p.tours)
}

// FindFittest returns a copy of the tour with the greatest fitness. On ties
// the earliest tour wins. A +Inf fitness beats every finite one.
func (p *Population) FindFittest() *Tour {
	if len(p.tours) == 0 {
		return nil
	}
	fittest := p.tours[0]
	for _, t := range p.tours[1:] {
		if t.Fitness > fittest.Fitness {
			fittest = t
		}
	}
	return fittest.Clone()
}

// AdvanceGeneration replaces the population with the next generation. An
// error is always an ErrInvariantViolation: the operators produced a
// population of the wrong size or a tour that is not a permutation.
func (p *Population) AdvanceGeneration() error {
	next, err := p.Reproduction.Reproduce(p.tours, p.rng)
	if err != nil {
		return fmt.Errorf("generation %d: %w", p.Generation+1, err)
	}
	n := p.Problem.NumCities()
	for i, t := range next {
		if err := t.Validate(n); err != nil {
			return fmt.Errorf("generation %d, tour %d: %w", p.Generation+1, i, err)
		}
	}
	p.tours = next
	p.Generation++
	return nil
}

// Tours returns copies of the current generation in its current order.
func (p *Population) Tours() []*Tour {
	out := make([]*Tour, len(p.tours))
	for i, t := range p.tours {
		out[i] = t.Clone()
	}
	return out
}

// Snapshot returns copies of the k fittest tours, best first.
func (p *Population) Snapshot(k int) []*Tour {
	ranked := p.Tours()
	sortByFitness(ranked)
	if k >= 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// Stats summarises the fitness of the current generation.
func (p *Population) Stats() GenerationStats {
	return computeStats(p.Generation, p.tours)
}
