// Package plot turns a decoded sample buffer into a line chart and writes it
// to an image file. Rendering is done with go-chart; the sample index is the
// implicit x coordinate.
package plot

import (
	"errors"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNoSamples reports an attempt to plot an empty sample buffer.
var ErrNoSamples = errors.New("no samples to plot")

// Options is the plot geometry the renderer applies.
type Options struct {
	// FigWidth and FigHeight are the figure dimensions in figure units.
	FigWidth  int
	FigHeight int
	// DPI is the number of pixels per figure unit.
	DPI float64
	// HideXTickLabels blanks the x-axis tick labels. The axis line itself
	// stays visible.
	HideXTickLabels bool
}

// DefaultOptions returns the standard trace-inspection geometry: a 12x7
// figure at 100 DPI with the x tick label track suppressed.
func DefaultOptions() Options {
	return Options{FigWidth: 12, FigHeight: 7, DPI: 100, HideXTickLabels: true}
}

func (o Options) pixelSize() (w, h int) {
	return int(float64(o.FigWidth) * o.DPI), int(float64(o.FigHeight) * o.DPI)
}

// Build constructs a chart with a single connected line through the points
// (i, samples[i]). The y axis auto-scales to the data range; no title,
// legend, or gridlines are added. An empty buffer is an error rather than a
// blank chart.
func Build(samples []float32, opts Options) (chart.Chart, error) {
	if len(samples) == 0 {
		return chart.Chart{}, ErrNoSamples
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	minY := math.MaxFloat64
	maxY := -math.MaxFloat64
	for i, s := range samples {
		v := float64(s)
		xs[i] = float64(i)
		ys[i] = v
		if !math.IsNaN(v) {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
	}
	// Pad to at least two X values for go-chart
	if len(xs) == 1 {
		xs = append(xs, 1)
		ys = append(ys, ys[0])
	}

	// Always fix the y range from the NaN-skipped scan: go-chart's own
	// auto range folds NaN samples into tick generation and never finishes.
	// Constant series widen because go-chart rejects a zero-delta range.
	var yAxis chart.YAxis
	if haveY := minY != math.MaxFloat64 && maxY != -math.MaxFloat64; haveY {
		if minY == maxY {
			yAxis.Range = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
		} else {
			yAxis.Range = &chart.ContinuousRange{Min: minY, Max: maxY}
		}
	}

	var xAxis chart.XAxis
	if opts.HideXTickLabels {
		xAxis.ValueFormatter = func(interface{}) string { return "" }
	}

	w, h := opts.pixelSize()
	return chart.Chart{
		Width:  w,
		Height: h,
		DPI:    opts.DPI,
		XAxis:  xAxis,
		YAxis:  yAxis,
		Series: []chart.Series{chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: chart.ColorBlue},
		}},
	}, nil
}
