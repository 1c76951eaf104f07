// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// GoChart renders with github.com/wcharczuk/go-chart/v2 into an io.Writer.
type GoChart struct {
	w       io.Writer
	format  string
	width   int
	height  int
	title   string
	xLabel  string
	yLabel  string
	series  []gochart.Series
	yMin    float64
	yMax    float64
	hasData bool
}

var _ Renderer = (*GoChart)(nil)

// NewGoChart writes the chart to w on Render, as PNG (default) or SVG.
func NewGoChart(w io.Writer, opts ...Option) (*GoChart, error) {
	o := gatherOptions(opts...)
	if o.format != "png" && o.format != "svg" {
		return nil, fmt.Errorf("NewGoChart(%q): %w", o.format, ErrUnsupportedFormat)
	}

	return &GoChart{
		w:      w,
		format: o.format,
		width:  int(o.width * pixelsPerInch),
		height: int(o.height * pixelsPerInch),
	}, nil
}

func (c *GoChart) SetTitle(title string)  { c.title = title }
func (c *GoChart) SetXLabel(label string) { c.xLabel = label }
func (c *GoChart) SetYLabel(label string) { c.yLabel = label }

// Line adds a continuous series.
func (c *GoChart) Line(xs, ys []float64) error {
	if err := checkSeries(xs, ys); err != nil {
		return err
	}
	for _, y := range ys {
		if !c.hasData || y < c.yMin {
			c.yMin = y
		}
		if !c.hasData || y > c.yMax {
			c.yMax = y
		}
		c.hasData = true
	}
	c.series = append(c.series, gochart.ContinuousSeries{
		XValues: append([]float64(nil), xs...),
		YValues: append([]float64(nil), ys...),
	})

	return nil
}

// Render draws every series and writes the encoded image.
func (c *GoChart) Render() error {
	if len(c.series) == 0 {
		return ErrNoSeries
	}

	ch := gochart.Chart{
		Title:  c.title,
		Width:  c.width,
		Height: c.height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  gochart.XAxis{Name: c.xLabel},
		YAxis:  gochart.YAxis{Name: c.yLabel},
		Series: c.series,
	}
	// go-chart refuses a zero-height data range; pad flat solutions.
	if c.yMin == c.yMax {
		ch.YAxis.Range = &gochart.ContinuousRange{Min: c.yMin - 1, Max: c.yMax + 1}
	}

	provider := gochart.PNG
	if c.format == "svg" {
		provider = gochart.SVG
	}
	if err := ch.Render(provider, c.w); err != nil {
		return fmt.Errorf("chart: go-chart render: %w", err)
	}

	return nil
}
