// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// gonumFormats are the extensions plot.Save understands.
var gonumFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// Gonum renders with gonum.org/v1/plot and saves to a file.
type Gonum struct {
	p      *plot.Plot
	path   string
	width  vg.Length
	height vg.Length
	lines  int
}

var _ Renderer = (*Gonum)(nil)

// NewGonum prepares a chart saved to path on Render. The file extension
// selects the format.
func NewGonum(path string, opts ...Option) (*Gonum, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !gonumFormats[ext] {
		return nil, fmt.Errorf("NewGonum(%q): %w", path, ErrUnsupportedFormat)
	}
	o := gatherOptions(opts...)

	p := plot.New()
	p.Add(plotter.NewGrid())

	return &Gonum{
		p:      p,
		path:   path,
		width:  vg.Length(o.width) * vg.Inch,
		height: vg.Length(o.height) * vg.Inch,
	}, nil
}

func (g *Gonum) SetTitle(title string)  { g.p.Title.Text = title }
func (g *Gonum) SetXLabel(label string) { g.p.X.Label.Text = label }
func (g *Gonum) SetYLabel(label string) { g.p.Y.Label.Text = label }

// Line adds a polyline. NaN/±Inf points are rejected by plotter.
func (g *Gonum) Line(xs, ys []float64) error {
	if err := checkSeries(xs, ys); err != nil {
		return err
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("chart: gonum line: %w", err)
	}
	l.Color = plotutil.Color(g.lines)
	g.lines++
	g.p.Add(l)

	return nil
}

// Render writes the chart to the configured path.
func (g *Gonum) Render() error {
	if g.lines == 0 {
		return ErrNoSeries
	}
	if err := g.p.Save(g.width, g.height, g.path); err != nil {
		return fmt.Errorf("chart: save %s: %w", g.path, err)
	}

	return nil
}

// Path returns the output file.
func (g *Gonum) Path() string { return g.path }
