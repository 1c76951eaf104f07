// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"strings"
)

// Renderer is the plotting collaborator: labels, one or more line series,
// then a single Render that produces the output.
type Renderer interface {
	SetTitle(title string)
	SetXLabel(label string)
	SetYLabel(label string)
	Line(xs, ys []float64) error
	Render() error
}

// Labels groups the three texts of a chart.
type Labels struct {
	Title string
	X     string
	Y     string
}

// Plot labels r, adds one line through (xs[i], ys[i]) and renders it.
func Plot(r Renderer, l Labels, xs, ys []float64) error {
	r.SetTitle(l.Title)
	r.SetXLabel(l.X)
	r.SetYLabel(l.Y)
	if err := r.Line(xs, ys); err != nil {
		return err
	}

	return r.Render()
}

// checkSeries is the shared precondition of every backend's Line.
func checkSeries(xs, ys []float64) error {
	if len(xs) == 0 || len(ys) == 0 {
		return ErrEmptySeries
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}

	return nil
}

// ---------- options ----------

const (
	// DefaultWidth and DefaultHeight are in inches.
	DefaultWidth  = 6.0
	DefaultHeight = 4.0

	// pixelsPerInch converts inch sizes for raster-only backends.
	pixelsPerInch = 96
)

// Option configures a backend.
type Option func(*options)

type options struct {
	width  float64 // inches
	height float64 // inches
	format string  // GoChart only: "png" or "svg"
}

// WithSize sets the chart size in inches. Panics on non-positive values.
func WithSize(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic("chart: WithSize: width and height must be > 0")
	}

	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithFormat selects the GoChart output format ("png" or "svg").
// The Gonum backend derives its format from the file extension instead.
func WithFormat(format string) Option {
	return func(o *options) { o.format = strings.ToLower(format) }
}

func gatherOptions(opts ...Option) options {
	o := options{width: DefaultWidth, height: DefaultHeight, format: "png"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
