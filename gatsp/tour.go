package gatsp

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	cp "github.com/jinzhu/copier"
	"github.com/samber/lo"
)

// Tour is one candidate solution: a permutation of city indices and the
// fitness of that ordering. Every operator keeps the two fields consistent.
type Tour struct {
	Order   []int   // Visit order; a permutation of 0..n-1.
	Fitness float64 // Score of Order under the run's FitnessFunc. Higher is better.
}

// NewTour scores order and wraps it in a Tour. The slice is retained.
func NewTour(order []int, problem *Problem) *Tour {
	return &Tour{Order: order, Fitness: problem.Evaluate(order)}
}

// NewRandomTour creates a Tour from a uniformly shuffled ordering of all cities.
func NewRandomTour(problem *Problem, rng *rand.Rand) *Tour {
	order := identity(problem.NumCities())
	shuffleInts(order, rng)
	return NewTour(order, problem)
}

// Breed performs ordered crossover with t as the mother and other as the
// father. A crossover point c is drawn from [0, n); the child starts with
// t.Order[:c] and continues with the father's cities that are not already in
// that prefix, in the father's order. The child is always a permutation.
func (t *Tour) Breed(other *Tour, problem *Problem, rng *rand.Rand) *Tour {
	return NewTour(crossoverOrder(t.Order, other.Order, rng), problem)
}

func crossoverOrder(mother, father []int, rng *rand.Rand) []int {
	point := rng.Intn(len(mother))
	motherDNA := mother[:point]

	taken := make([]bool, len(mother))
	for _, city := range motherDNA {
		taken[city] = true
	}
	fatherDNA := lo.Filter(father, func(city int, _ int) bool {
		return !taken[city]
	})

	child := make([]int, 0, len(mother))
	child = append(child, motherDNA...)
	return append(child, fatherDNA...)
}

// Mutate swaps two positions drawn independently from [0, n) and rescores
// the tour. Both draws may land on the same position, leaving the order
// unchanged.
func (t *Tour) Mutate(problem *Problem, rng *rand.Rand) {
	n := len(t.Order)
	i := rng.Intn(n)
	j := rng.Intn(n)
	t.Order[i], t.Order[j] = t.Order[j], t.Order[i]
	t.Fitness = problem.Evaluate(t.Order)
}

// Clone returns a deep copy that shares nothing with t.
func (t *Tour) Clone() *Tour {
	clone := &Tour{}
	if err := cp.CopyWithOption(clone, t, cp.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("gatsp: copying tour: %v", err))
	}
	return clone
}

// Length returns the number of cities in the tour.
func (t *Tour) Length() int { return len(t.Order) }

// Validate checks that Order is a permutation of 0..n-1.
func (t *Tour) Validate(n int) error {
	if len(t.Order) != n {
		return invariantf("tour has %d cities, want %d", len(t.Order), n)
	}
	seen := make([]bool, n)
	for i, city := range t.Order {
		if city < 0 || city >= n {
			return invariantf("city index %d at position %d out of range [0, %d)", city, i, n)
		}
		if seen[city] {
			return invariantf("city index %d repeated at position %d", city, i)
		}
		seen[city] = true
	}
	return nil
}

// String renders the tour as "Fitness: f, Path: a->b->c".
func (t *Tour) String() string {
	parts := lo.Map(t.Order, func(city int, _ int) string {
		return strconv.Itoa(city)
	})
	return fmt.Sprintf("Fitness: %v, Path: %s", t.Fitness, strings.Join(parts, "->"))
}
