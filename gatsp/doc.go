// Package gatsp approximates the Euclidean Travelling Salesman Problem with a
// genetic algorithm.
//
// A Tour is a permutation of city indices scored by a FitnessFunc. The default,
// OpenPathFitness, is the reciprocal of the open path length (no edge back to
// the start), which turns "shortest path" into "highest fitness". Selection
// code only ever assumes that higher is better, so ClosedTourFitness or any
// other FitnessFunc can be swapped in through the configuration.
//
// Each generation is rebuilt under a fixed ReplacementPlan: the population is
// sorted best first, the top BreedingCount tours form the breeding pool, the
// top EliteCount tours are copied unchanged, OffspringCount children are bred
// by ordered crossover, and the DiversityFloor lowest tours are copied
// unchanged. Every tour of the new generation is then swap-mutated with
// probability MutationRate.
//
// All randomness is drawn from one *rand.Rand; a non-zero seed makes a run
// reproducible.
package gatsp
