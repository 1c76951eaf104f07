// SPDX-License-Identifier: MIT

package bvp

import (
	"log/slog"

	"github.com/katalvlaran/lvlode/chart"
	"github.com/katalvlaran/lvlode/internal/logger"
	"github.com/katalvlaran/lvlode/ode"
)

// Default chart texts.
const (
	DefaultTitle  = "Analytical Solution of the Boundary Value Problem"
	DefaultXLabel = "x"
	DefaultYLabel = "u(x)"
)

// Option configures SolveAndPlot.
type Option func(*options)

type options struct {
	labels  chart.Labels
	solver  []ode.Option
	logger  *slog.Logger
	axisTol float64
}

// WithLabels overrides the chart title and axis labels. Empty fields keep
// their defaults.
func WithLabels(l chart.Labels) Option {
	return func(o *options) {
		if l.Title != "" {
			o.labels.Title = l.Title
		}
		if l.X != "" {
			o.labels.X = l.X
		}
		if l.Y != "" {
			o.labels.Y = l.Y
		}
	}
}

// WithSolverOptions forwards options to ode.Solve.
func WithSolverOptions(opts ...ode.Option) Option {
	return func(o *options) { o.solver = append(o.solver, opts...) }
}

// WithLogger routes debug/info records of the pipeline to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAxisTolerance sets the tolerance used to check that the plotted axis
// coincides with the evaluation points (see grid.Consistent).
func WithAxisTolerance(tol float64) Option {
	return func(o *options) { o.axisTol = tol }
}

func gatherOptions(opts ...Option) options {
	o := options{
		labels: chart.Labels{Title: DefaultTitle, X: DefaultXLabel, Y: DefaultYLabel},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
