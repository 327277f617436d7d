// Package gatsp provides a Go implementation of a genetic algorithm for the
// Euclidean Travelling Salesman Problem.
//
// The algorithm lives in the gatsp subpackage; cmd/tspga is a command line
// front end and examples/square a minimal programmatic run.
//
// Basic usage:
//
//	// Load configuration
//	config, err := gatsp.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create a simulation; the configuration is validated here
//	sim, err := gatsp.NewSimulation(config)
//	if err != nil {
//		log.Fatalf("Error creating simulation: %v", err)
//	}
//
//	best, err := sim.Run()
//	if err != nil {
//		log.Fatalf("Error running simulation: %v", err)
//	}
//	fmt.Println(best)
package gatsp
