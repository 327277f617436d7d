package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/baldhumanity/gatsp/gatsp"
	"github.com/baldhumanity/gatsp/gatsp/render"
)

type options struct {
	configPath string
	citiesPath string
	seed       int64
	iterations int
	popSize    int
	showTop    int
	imagePath  string
	verbose    bool
	jsonLogs   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "tspga",
		Short:         "Approximate a Euclidean TSP path with a genetic algorithm",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "./configs/nine-cities.ini", "INI configuration file")
	flags.StringVar(&opts.citiesPath, "cities", "", "TOML city list replacing the [Cities] section")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 = nondeterministic)")
	flags.IntVarP(&opts.iterations, "iterations", "n", 0, "override max_iterations")
	flags.IntVarP(&opts.popSize, "pop-size", "p", 0, "override pop_size")
	flags.IntVar(&opts.showTop, "show-generation", 0, "log the top N tours of every generation")
	flags.StringVarP(&opts.imagePath, "out", "o", "", "write a plot of the best tour (png, svg, pdf)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every generation")
	flags.BoolVar(&opts.jsonLogs, "json", false, "log as JSON")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if opts.jsonLogs {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	config, err := gatsp.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.citiesPath != "" {
		cities, err := gatsp.LoadCities(opts.citiesPath)
		if err != nil {
			return err
		}
		config.Cities = cities
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Simulation.Seed = opts.seed
	}
	if flags.Changed("iterations") {
		config.Simulation.MaxIterations = opts.iterations
	}
	if flags.Changed("pop-size") {
		config.Population.PopSize = opts.popSize
	}

	sim, err := gatsp.NewSimulation(config)
	if err != nil {
		return err
	}
	sim.Logger = logger.WithField("run", sim.RunID.String())
	sim.AddReporter(gatsp.NewLogReporter(sim.Logger, opts.showTop))

	best, err := sim.Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), best)

	if opts.imagePath != "" {
		if err := render.SaveTour(opts.imagePath, config.Cities, best); err != nil {
			return err
		}
		logger.WithField("path", opts.imagePath).Info("saved tour plot")
	}
	return nil
}
