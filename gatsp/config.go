package gatsp

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/ini.v1"
)

// DeriveElitism leaves the elite count to be derived from survival_rate.
const DeriveElitism = -1

// Config stores every parameter of a run.
type Config struct {
	Simulation   SimulationConfig
	Population   PopulationConfig
	Reproduction ReproductionConfig
	Cities       Cities
}

// SimulationConfig holds parameters of the evolution driver.
type SimulationConfig struct {
	MaxIterations int    `ini:"max_iterations"`
	Seed          int64  `ini:"seed"`    // 0 = seed from the clock
	Fitness       string `ini:"fitness"` // "open" or "closed"
}

// PopulationConfig holds parameters of the population itself.
type PopulationConfig struct {
	PopSize int `ini:"pop_size"`
}

// ReproductionConfig holds the generational replacement parameters.
type ReproductionConfig struct {
	CrossoverRate  float64 `ini:"crossover_rate"`  // Fraction of the sorted population forming the breeding pool.
	MutationRate   float64 `ini:"mutation_rate"`   // Per-tour probability of a swap mutation each generation.
	SurvivalRate   float64 `ini:"survival_rate"`   // Fraction of the breeding pool carried forward unchanged.
	DiversityFloor int     `ini:"diversity_floor"` // Lowest-fitness tours carried forward unchanged.
	Elitism        int     `ini:"elitism"`         // Explicit elite count; DeriveElitism to use SurvivalRate.
}

// DefaultConfig returns the parameters of the reference nine-city run,
// without any cities.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			MaxIterations: 100,
			Fitness:       FitnessOpen,
		},
		Population: PopulationConfig{
			PopSize: 100,
		},
		Reproduction: ReproductionConfig{
			CrossoverRate:  0.8,
			MutationRate:   0.001,
			SurvivalRate:   0.2,
			DiversityFloor: 2,
			Elitism:        DeriveElitism,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file. Keys missing
// from the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		UnescapeValueCommentSymbols: true, // Allow # or ; inside quoted values
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()

	if err := cfg.Section("Simulation").MapTo(&config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to map [Simulation] section: %w", err)
	}
	if err := cfg.Section("Population").MapTo(&config.Population); err != nil {
		return nil, fmt.Errorf("failed to map [Population] section: %w", err)
	}
	if err := cfg.Section("Reproduction").MapTo(&config.Reproduction); err != nil {
		return nil, fmt.Errorf("failed to map [Reproduction] section: %w", err)
	}
	config.Simulation.Fitness = strings.ToLower(strings.TrimSpace(config.Simulation.Fitness))

	if key, err := cfg.Section("Cities").GetKey("points"); err == nil {
		cities, err := ParseCities(key.Strings(" "))
		if err != nil {
			return nil, fmt.Errorf("failed to parse [Cities] points: %w", err)
		}
		config.Cities = cities
	}

	return config, nil
}

// Validate rejects configurations that cannot run. It is called before the
// first generation so that no error surfaces mid-run.
func (c *Config) Validate() error {
	if err := c.Cities.validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Simulation.MaxIterations < 0 {
		return fmt.Errorf("config error: max_iterations cannot be negative: %w", ErrConfig)
	}
	if _, err := FitnessByName(c.Simulation.Fitness); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	rates := []struct {
		name  string
		value float64
	}{
		{"crossover_rate", c.Reproduction.CrossoverRate},
		{"mutation_rate", c.Reproduction.MutationRate},
		{"survival_rate", c.Reproduction.SurvivalRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || r.value < 0 || r.value > 1 {
			return fmt.Errorf("config error: %s = %v: %w", r.name, r.value, ErrRateOutOfRange)
		}
	}

	if _, err := NewReplacementPlan(c.Population.PopSize, &c.Reproduction); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
