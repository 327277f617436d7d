package gatsp

// Problem binds the coordinate space to the fitness function used to score
// orderings of it. It is shared read-only by every tour of a run.
type Problem struct {
	Cities  Cities
	Fitness FitnessFunc
}

// NewProblem creates a Problem. A nil fitness selects OpenPathFitness.
func NewProblem(cities Cities, fitness FitnessFunc) *Problem {
	if fitness == nil {
		fitness = OpenPathFitness
	}
	return &Problem{Cities: cities, Fitness: fitness}
}

// Evaluate scores order.
func (p *Problem) Evaluate(order []int) float64 {
	return p.Fitness(order, p.Cities)
}

// NumCities returns the tour length every ordering must have.
func (p *Problem) NumCities() int {
	return len(p.Cities)
}
