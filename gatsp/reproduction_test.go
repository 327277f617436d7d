package gatsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/gatsp/gatsp"
)

func reproductionConfig(crossover, survival float64) *gatsp.ReproductionConfig {
	return &gatsp.ReproductionConfig{
		CrossoverRate:  crossover,
		MutationRate:   0.01,
		SurvivalRate:   survival,
		DiversityFloor: 2,
		Elitism:        gatsp.DeriveElitism,
	}
}

func TestNewReplacementPlan(t *testing.T) {
	cases := []struct {
		popSize   int
		crossover float64
		survival  float64
		want      gatsp.ReplacementPlan
	}{
		{100, 0.8, 0.2, gatsp.ReplacementPlan{PopulationSize: 100, BreedingCount: 80, EliteCount: 16, OffspringCount: 82, DiversityFloor: 2}},
		{20, 0.8, 0.2, gatsp.ReplacementPlan{PopulationSize: 20, BreedingCount: 16, EliteCount: 3, OffspringCount: 15, DiversityFloor: 2}},
		{3, 0.5, 0.0, gatsp.ReplacementPlan{PopulationSize: 3, BreedingCount: 1, EliteCount: 0, OffspringCount: 1, DiversityFloor: 2}},
		{10, 1.0, 1.0, gatsp.ReplacementPlan{PopulationSize: 10, BreedingCount: 10, EliteCount: 10, OffspringCount: -2, DiversityFloor: 2}},
	}
	for _, tc := range cases[:3] {
		plan, err := gatsp.NewReplacementPlan(tc.popSize, reproductionConfig(tc.crossover, tc.survival))
		require.NoError(t, err)
		require.Equal(t, tc.want, plan)
		require.Equal(t, plan.PopulationSize, plan.EliteCount+plan.OffspringCount+plan.DiversityFloor)
	}

	// Every elite slot taken leaves no room for the diversity floor.
	last := cases[3]
	_, err := gatsp.NewReplacementPlan(last.popSize, reproductionConfig(last.crossover, last.survival))
	require.ErrorIs(t, err, gatsp.ErrPopulationTooSmall)
}

func TestNewReplacementPlan_Rejects(t *testing.T) {
	t.Run("below minimum size", func(t *testing.T) {
		_, err := gatsp.NewReplacementPlan(2, reproductionConfig(0.8, 0.2))
		require.ErrorIs(t, err, gatsp.ErrPopulationTooSmall)
		require.ErrorIs(t, err, gatsp.ErrConfig)
	})

	t.Run("elites crowd out the floor", func(t *testing.T) {
		_, err := gatsp.NewReplacementPlan(3, reproductionConfig(1, 1))
		require.ErrorIs(t, err, gatsp.ErrPopulationTooSmall)
	})

	t.Run("empty breeding pool", func(t *testing.T) {
		_, err := gatsp.NewReplacementPlan(10, reproductionConfig(0, 0.2))
		require.ErrorIs(t, err, gatsp.ErrEmptyBreedingPool)
		require.ErrorIs(t, err, gatsp.ErrConfig)
	})

	t.Run("negative floor", func(t *testing.T) {
		cfg := reproductionConfig(0.8, 0.2)
		cfg.DiversityFloor = -1
		_, err := gatsp.NewReplacementPlan(10, cfg)
		require.ErrorIs(t, err, gatsp.ErrConfig)
	})

	t.Run("negative elitism", func(t *testing.T) {
		cfg := reproductionConfig(0.8, 0.2)
		cfg.Elitism = -5
		_, err := gatsp.NewReplacementPlan(10, cfg)
		require.ErrorIs(t, err, gatsp.ErrConfig)
	})
}

func TestNewReplacementPlan_ExplicitElitism(t *testing.T) {
	cfg := reproductionConfig(0.8, 0.2)
	cfg.Elitism = 5
	cfg.DiversityFloor = 0

	plan, err := gatsp.NewReplacementPlan(20, cfg)
	require.NoError(t, err)
	require.Equal(t, 16, plan.BreedingCount)
	require.Equal(t, 5, plan.EliteCount)
	require.Equal(t, 15, plan.OffspringCount)
	require.Equal(t, 0, plan.DiversityFloor)
}

func TestNewReplacementPlan_NoOffspringNeedsNoParents(t *testing.T) {
	cfg := reproductionConfig(0, 0)
	cfg.DiversityFloor = 3

	plan, err := gatsp.NewReplacementPlan(3, cfg)
	require.NoError(t, err)
	require.Equal(t, 0, plan.OffspringCount)
}
