package gatsp_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baldhumanity/gatsp/gatsp"
)

func unitSquare() gatsp.Cities {
	return gatsp.Cities{
		gatsp.NewCity(0, 0),
		gatsp.NewCity(1, 0),
		gatsp.NewCity(1, 1),
		gatsp.NewCity(0, 1),
	}
}

func TestCities_Distance(t *testing.T) {
	cities := gatsp.Cities{gatsp.NewCity(0, 0), gatsp.NewCity(3, 4)}

	require.Equal(t, 5.0, cities.Distance(0, 1))
	require.Equal(t, 5.0, cities.Distance(1, 0))
	require.Equal(t, 0.0, cities.Distance(1, 1))
}

func TestParseCities(t *testing.T) {
	cities, err := gatsp.ParseCities([]string{"1,3", " 2.5 , -1 ", ""})
	require.NoError(t, err)
	require.Equal(t, gatsp.Cities{gatsp.NewCity(1, 3), gatsp.NewCity(2.5, -1)}, cities)

	_, err = gatsp.ParseCities([]string{"1;3"})
	require.ErrorIs(t, err, gatsp.ErrBadCity)
	require.ErrorIs(t, err, gatsp.ErrConfig)

	_, err = gatsp.ParseCities([]string{"x,3"})
	require.ErrorIs(t, err, gatsp.ErrBadCity)
}

func TestLoadCities(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cities.toml")
	data := "[[city]]\nx = 0.0\ny = 0.0\n\n[[city]]\nx = 3.0\ny = 4.0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cities, err := gatsp.LoadCities(path)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	require.Equal(t, gatsp.NewCity(3, 4), cities[1])
}

func TestLoadCities_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := gatsp.LoadCities(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing here\n"), 0o644))
	_, err = gatsp.LoadCities(empty)
	require.True(t, errors.Is(err, gatsp.ErrNoCities), "got %v", err)
}

func TestConfig_RejectsNonFiniteCity(t *testing.T) {
	cfg := gatsp.DefaultConfig()
	cfg.Cities = gatsp.Cities{gatsp.NewCity(0, 0), gatsp.NewCity(math.NaN(), 1)}

	require.ErrorIs(t, cfg.Validate(), gatsp.ErrBadCity)
}
