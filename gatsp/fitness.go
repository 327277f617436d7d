package gatsp

import (
	"fmt"
	"strings"
)

// FitnessFunc scores a city ordering. Selection only ever assumes that a
// higher score is better, so any function honouring that can be swapped in.
type FitnessFunc func(order []int, cities Cities) float64

// PathLength is the sum of consecutive edge lengths along order, without an
// edge back to the start.
func PathLength(order []int, cities Cities) float64 {
	cost := 0.0
	for i := 0; i+1 < len(order); i++ {
		cost += cities.Distance(order[i], order[i+1])
	}
	return cost
}

// TourLength is PathLength plus the closing edge from the last city back to
// the first.
func TourLength(order []int, cities Cities) float64 {
	if len(order) < 2 {
		return 0
	}
	return PathLength(order, cities) + cities.Distance(order[len(order)-1], order[0])
}

// OpenPathFitness is the default fitness: the reciprocal of the open path
// length. Shorter paths score higher. A zero-length path (one city, or all
// cities coincident) scores +Inf, which beats every finite fitness.
func OpenPathFitness(order []int, cities Cities) float64 {
	return 1 / PathLength(order, cities)
}

// ClosedTourFitness is the reciprocal of the closed cycle length.
func ClosedTourFitness(order []int, cities Cities) float64 {
	return 1 / TourLength(order, cities)
}

// Fitness function names accepted by the configuration.
const (
	FitnessOpen   = "open"
	FitnessClosed = "closed"
)

// FitnessByName resolves a configured fitness function name.
func FitnessByName(name string) (FitnessFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FitnessOpen:
		return OpenPathFitness, nil
	case FitnessClosed:
		return ClosedTourFitness, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFitness)
}
