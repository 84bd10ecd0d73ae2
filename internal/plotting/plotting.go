// Package plotting renders signature coefficient series, either as
// terminal line charts (asciigraph) or as PNG/SVG files (gonum/plot).
package plotting

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/pathsig/matrix"
)

// ErrNoSeries indicates nothing plottable was selected.
var ErrNoSeries = errors.New("plotting: no series")

const (
	DefaultHeight = 10
	DefaultWidth  = 72
)

// Series extracts the first k rows of a (M, T) sliding-window output,
// dropping leading columns that are NaN in every selected row. It returns
// the series and the index of the first kept column.
func Series(out matrix.Reader, k int) ([][]float64, int, error) {
	if err := matrix.ValidateNotNil(out); err != nil {
		return nil, 0, fmt.Errorf("plotting: %w", err)
	}
	if k < 1 {
		return nil, 0, ErrNoSeries
	}
	if k > out.Rows() {
		k = out.Rows()
	}

	first := out.Cols()
	for j := 0; j < out.Cols() && first == out.Cols(); j++ {
		for i := 0; i < k; i++ {
			v, err := out.At(i, j)
			if err != nil {
				return nil, 0, fmt.Errorf("plotting: %w", err)
			}
			if !math.IsNaN(v) {
				first = j
				break
			}
		}
	}
	if first == out.Cols() {
		return nil, 0, ErrNoSeries
	}

	series := make([][]float64, k)
	for i := range series {
		row := make([]float64, 0, out.Cols()-first)
		for j := first; j < out.Cols(); j++ {
			v, err := out.At(i, j)
			if err != nil {
				return nil, 0, fmt.Errorf("plotting: %w", err)
			}
			row = append(row, v)
		}
		series[i] = row
	}

	return series, first, nil
}

// Terminal draws series as one ASCII chart with an optional legend.
func Terminal(series [][]float64, legends []string, caption string) (string, error) {
	if len(series) == 0 {
		return "", ErrNoSeries
	}
	opts := []asciigraph.Option{
		asciigraph.Height(DefaultHeight),
		asciigraph.Width(DefaultWidth),
		asciigraph.Caption(caption),
	}
	if len(legends) == len(series) {
		colors := make([]asciigraph.AnsiColor, len(series))
		for i := range colors {
			colors[i] = palette[i%len(palette)]
		}
		opts = append(opts, asciigraph.SeriesColors(colors...), asciigraph.SeriesLegends(legends...))
	}

	return asciigraph.PlotMany(series, opts...), nil
}

var palette = []asciigraph.AnsiColor{
	asciigraph.Blue, asciigraph.Red, asciigraph.Green, asciigraph.Yellow,
	asciigraph.Magenta, asciigraph.Cyan,
}

// WritePNG saves series as a line plot. x values start at offset so the
// axis shows original sample indices. The format follows the file
// extension (.png, .svg, .pdf).
func WritePNG(name string, series [][]float64, legends []string, title string, offset int) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"
	p.Y.Label.Text = "coefficient"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		xys := make(plotter.XYs, 0, len(s))
		for j, v := range s {
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(offset + j), Y: v})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting: series %d: %w", i, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if i < len(legends) {
			p.Legend.Add(legends[i], line)
		}
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, name)
}
