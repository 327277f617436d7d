package gatsp

import (
	"fmt"
	"math/rand"
	"sort"
)

// MinPopulationSize is the smallest population the replacement policy accepts.
const MinPopulationSize = 3

// ReplacementPlan fixes how each generation is rebuilt. It is computed once
// from the configuration and never changes during a run:
//
//	next = elites[EliteCount] ++ offspring[OffspringCount] ++ lowest[DiversityFloor]
//
// and EliteCount + OffspringCount + DiversityFloor == PopulationSize.
type ReplacementPlan struct {
	PopulationSize int
	BreedingCount  int // Top tours eligible as parents.
	EliteCount     int // Top tours copied unchanged.
	OffspringCount int // Children bred from the breeding pool.
	DiversityFloor int // Bottom tours copied unchanged.
}

// NewReplacementPlan derives the plan for a population of popSize:
//
//	BreedingCount  = floor(popSize * CrossoverRate)
//	EliteCount     = floor(BreedingCount * SurvivalRate), unless Elitism is set
//	OffspringCount = popSize - EliteCount - DiversityFloor
func NewReplacementPlan(popSize int, cfg *ReproductionConfig) (ReplacementPlan, error) {
	if popSize < MinPopulationSize {
		return ReplacementPlan{}, fmt.Errorf("pop_size = %d, need at least %d: %w",
			popSize, MinPopulationSize, ErrPopulationTooSmall)
	}
	if cfg.DiversityFloor < 0 {
		return ReplacementPlan{}, fmt.Errorf("diversity_floor = %d cannot be negative: %w",
			cfg.DiversityFloor, ErrConfig)
	}

	breeding := int(float64(popSize) * cfg.CrossoverRate)
	elites := int(float64(breeding) * cfg.SurvivalRate)
	if cfg.Elitism != DeriveElitism {
		if cfg.Elitism < 0 {
			return ReplacementPlan{}, fmt.Errorf("elitism = %d cannot be negative: %w", cfg.Elitism, ErrConfig)
		}
		elites = cfg.Elitism
	}

	if popSize-elites < cfg.DiversityFloor {
		return ReplacementPlan{}, fmt.Errorf("pop_size %d leaves no room for %d elites and a diversity floor of %d: %w",
			popSize, elites, cfg.DiversityFloor, ErrPopulationTooSmall)
	}
	offspring := popSize - elites - cfg.DiversityFloor
	if offspring > 0 && breeding == 0 {
		return ReplacementPlan{}, fmt.Errorf("crossover_rate %v selects no parents for %d offspring: %w",
			cfg.CrossoverRate, offspring, ErrEmptyBreedingPool)
	}

	return ReplacementPlan{
		PopulationSize: popSize,
		BreedingCount:  breeding,
		EliteCount:     elites,
		OffspringCount: offspring,
		DiversityFloor: cfg.DiversityFloor,
	}, nil
}

// Reproduction builds each new generation from the previous one.
type Reproduction struct {
	Config  *ReproductionConfig
	Plan    ReplacementPlan
	Problem *Problem
}

// NewReproduction creates a reproduction manager, validating the plan.
func NewReproduction(config *ReproductionConfig, popSize int, problem *Problem) (*Reproduction, error) {
	plan, err := NewReplacementPlan(popSize, config)
	if err != nil {
		return nil, err
	}
	return &Reproduction{Config: config, Plan: plan, Problem: problem}, nil
}

// CreateNewPopulation creates popSize randomly shuffled tours.
func (r *Reproduction) CreateNewPopulation(popSize int, rng *rand.Rand) []*Tour {
	tours := make([]*Tour, popSize)
	for i := range tours {
		tours[i] = NewRandomTour(r.Problem, rng)
	}
	return tours
}

// sortByFitness orders tours best first. Ties keep their relative order.
func sortByFitness(tours []*Tour) {
	sort.SliceStable(tours, func(i, j int) bool {
		return tours[i].Fitness > tours[j].Fitness
	})
}

// Reproduce creates the next generation from current, which it sorts in
// place (best first). Elites and diversity-floor tours are copies, so the
// mutation pass never touches a tour of the previous generation.
func (r *Reproduction) Reproduce(current []*Tour, rng *rand.Rand) ([]*Tour, error) {
	plan := r.Plan
	if len(current) != plan.PopulationSize {
		return nil, invariantf("population has %d tours, plan expects %d", len(current), plan.PopulationSize)
	}

	// --- Step 1: Rank ---
	sortByFitness(current)
	breedingPool := current[:plan.BreedingCount]

	next := make([]*Tour, 0, plan.PopulationSize)

	// --- Step 2: Elites ---
	for _, t := range current[:plan.EliteCount] {
		next = append(next, t.Clone())
	}

	// --- Step 3: Offspring ---
	// Mothers cycle through the pool in rank order; fathers are drawn
	// uniformly with replacement and may be the mother herself.
	for i := 0; i < plan.OffspringCount; i++ {
		mother := breedingPool[i%len(breedingPool)]
		father := breedingPool[rng.Intn(len(breedingPool))]
		next = append(next, mother.Breed(father, r.Problem, rng))
	}

	// --- Step 4: Diversity floor ---
	for _, t := range current[len(current)-plan.DiversityFloor:] {
		next = append(next, t.Clone())
	}

	if len(next) != plan.PopulationSize {
		return nil, invariantf("next generation has %d tours, want %d (elites %d, offspring %d, floor %d)",
			len(next), plan.PopulationSize, plan.EliteCount, plan.OffspringCount, plan.DiversityFloor)
	}

	// --- Step 5: Mutation ---
	for _, t := range next {
		if rng.Float64() < r.Config.MutationRate {
			t.Mutate(r.Problem, rng)
		}
	}

	return next, nil
}
