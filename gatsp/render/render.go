// Package render draws tours as images.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/baldhumanity/gatsp/gatsp"
)

// ErrEmptyTour is returned for a tour that visits no city.
var ErrEmptyTour = errors.New("render: tour has no cities")

// DefaultSize is the width and height of saved images.
const DefaultSize = 6 * vg.Inch

// TourPlot builds a plot of tour over cities: every city as a point, the
// visit order as a polyline, and the start city labelled.
func TourPlot(cities gatsp.Cities, tour *gatsp.Tour) (*plot.Plot, error) {
	if len(tour.Order) == 0 {
		return nil, fmt.Errorf("cannot plot tour: %w", ErrEmptyTour)
	}
	if err := tour.Validate(len(cities)); err != nil {
		return nil, fmt.Errorf("cannot plot tour: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("fitness %.6f, length %.4f", tour.Fitness, gatsp.PathLength(tour.Order, cities))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	path := make(plotter.XYs, len(tour.Order))
	for i, idx := range tour.Order {
		path[i].X = cities[idx].X
		path[i].Y = cities[idx].Y
	}

	line, points, err := plotter.NewLinePoints(path)
	if err != nil {
		return nil, fmt.Errorf("failed to build tour line: %w", err)
	}
	p.Add(line, points)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    path[:1],
		Labels: []string{fmt.Sprintf("start %d", tour.Order[0])},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build start label: %w", err)
	}
	p.Add(labels)

	return p, nil
}

// SaveTour renders tour and writes it to filePath. The image format follows
// the file extension (png, svg, pdf, ...).
func SaveTour(filePath string, cities gatsp.Cities, tour *gatsp.Tour) error {
	p, err := TourPlot(cities, tour)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultSize, DefaultSize, filePath); err != nil {
		return fmt.Errorf("failed to save tour plot '%s': %w", filePath, err)
	}
	return nil
}
