package gatsp

import (
	"math/rand"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRun_AbortReturnsCopyOfBest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cities = Cities{NewCity(0, 0), NewCity(1, 0), NewCity(1, 1), NewCity(0, 1)}
	cfg.Population.PopSize = 10
	pop, err := NewPopulation(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// Drop a tour so the first generation trips the size check.
	pop.tours = pop.tours[:len(pop.tours)-1]

	sim := NewSimulationFromPopulation(pop)
	logger, hook := logtest.NewNullLogger()
	sim.Logger = logger

	best, err := sim.Run()
	require.ErrorIs(t, err, ErrInvariantViolation)
	require.NotNil(t, best)
	require.Equal(t, sim.Best, best)
	require.NotSame(t, sim.Best, best)
	require.Equal(t, "run aborted", hook.LastEntry().Message)

	best.Order[0] = -1
	require.NoError(t, sim.Best.Validate(4))
}
