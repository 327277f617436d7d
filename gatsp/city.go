package gatsp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// City is a fixed point in the plane.
type City struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// NewCity creates a City at (x, y).
func NewCity(x, y float64) City {
	return City{X: x, Y: y}
}

// Cities is the read-only coordinate space shared by every tour.
// Indices into it are the genes of a Tour.
type Cities []City

// Distance returns the Euclidean distance between cities i and j.
// Indices are trusted; tours only ever hold valid indices.
func (c Cities) Distance(i, j int) float64 {
	a, b := c[i], c[j]
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Len returns the number of cities.
func (c Cities) Len() int { return len(c) }

// validate rejects empty lists and non-finite coordinates.
func (c Cities) validate() error {
	if len(c) == 0 {
		return ErrNoCities
	}
	for i, city := range c {
		if math.IsNaN(city.X) || math.IsInf(city.X, 0) || math.IsNaN(city.Y) || math.IsInf(city.Y, 0) {
			return fmt.Errorf("city %d (%v, %v): %w", i, city.X, city.Y, ErrBadCity)
		}
	}
	return nil
}

// ParseCities parses "x,y" pairs such as the [Cities] points key of the
// configuration file.
func ParseCities(points []string) (Cities, error) {
	cities := make(Cities, 0, len(points))
	for _, p := range points {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		xs, ys, ok := strings.Cut(p, ",")
		if !ok {
			return nil, fmt.Errorf("point %q is not an x,y pair: %w", p, ErrBadCity)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", p, ErrBadCity)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", p, ErrBadCity)
		}
		cities = append(cities, NewCity(x, y))
	}
	return cities, nil
}

// cityFile is the TOML layout read by LoadCities:
//
//	[[city]]
//	x = 1.0
//	y = 3.0
type cityFile struct {
	City []City `toml:"city"`
}

// LoadCities reads a TOML city list from filePath.
func LoadCities(filePath string) (Cities, error) {
	var f cityFile
	if _, err := toml.DecodeFile(filePath, &f); err != nil {
		return nil, fmt.Errorf("failed to load cities file '%s': %w", filePath, err)
	}
	cities := Cities(f.City)
	if err := cities.validate(); err != nil {
		return nil, fmt.Errorf("cities file '%s': %w", filePath, err)
	}
	return cities, nil
}
