package gatsp

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Simulation drives a Population for a fixed number of generations and keeps
// the best tour seen in any generation, not only the last one.
type Simulation struct {
	Config     *Config
	Population *Population
	Best       *Tour     // Best tour seen so far; nil before Run.
	RunID      uuid.UUID // Tags every log entry of this simulation.
	Logger     logrus.FieldLogger

	reporters ReporterSet
}

// NewSimulation validates config and creates a simulation with a fresh
// random population. Randomness is seeded from config.Simulation.Seed. The
// simulation works on its own copy of config.
func NewSimulation(config *Config) (*Simulation, error) {
	pop, err := NewPopulation(config, NewRNG(config.Simulation.Seed))
	if err != nil {
		return nil, err
	}
	return NewSimulationFromPopulation(pop), nil
}

// NewSimulationFromPopulation wraps an existing population.
func NewSimulationFromPopulation(pop *Population) *Simulation {
	runID := uuid.New()
	return &Simulation{
		Config:     pop.Config,
		Population: pop,
		RunID:      runID,
		Logger:     logrus.StandardLogger().WithField("run", runID.String()),
	}
}

// AddReporter registers a reporter for every following generation.
func (s *Simulation) AddReporter(r Reporter) {
	s.reporters = append(s.reporters, r)
}

// Run advances the population exactly MaxIterations times and returns the
// best tour found. There is no early stopping. An error means an invariant
// was violated; the best tour found up to that point is returned with it.
func (s *Simulation) Run() (*Tour, error) {
	maxIterations := s.Config.Simulation.MaxIterations
	s.Logger.WithFields(logrus.Fields{
		"cities":         s.Population.Problem.NumCities(),
		"pop_size":       s.Population.Size(),
		"max_iterations": maxIterations,
		"plan":           fmt.Sprintf("%+v", s.Population.Reproduction.Plan),
	}).Info("starting iterations")

	fittest := s.Population.FindFittest()
	s.Best = fittest
	s.reporters.FoundBest(s.Population.Generation, fittest)

	for i := 0; i < maxIterations; i++ {
		gen := s.Population.Generation + 1
		s.reporters.StartGeneration(gen)

		if err := s.Population.AdvanceGeneration(); err != nil {
			s.Logger.WithError(err).WithField("generation", gen).Error("run aborted")
			return s.Best.Clone(), err
		}

		challenger := s.Population.FindFittest()
		if challenger.Fitness > s.Best.Fitness {
			s.Best = challenger
			s.reporters.FoundBest(gen, challenger)
		}

		if len(s.reporters) > 0 {
			s.reporters.EndGeneration(gen, s.Population, s.Population.Stats())
		}
	}

	s.Logger.WithFields(logrus.Fields{
		"generations": s.Population.Generation,
		"fitness":     s.Best.Fitness,
		"path_length": PathLength(s.Best.Order, s.Population.Problem.Cities),
	}).Info("run finished")

	return s.Best.Clone(), nil
}
