// SPDX-License-Identifier: MIT

package bvp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlode/chart"
	"github.com/katalvlaran/lvlode/grid"
	"github.com/katalvlaran/lvlode/ode"
)

// ErrNilRenderer indicates SolveAndPlot was called without a renderer.
var ErrNilRenderer = errors.New("bvp: renderer is nil")

// SolveAndPlot solves p, builds the plot axis with grid.Linspace(0, L, N+1),
// checks it against the evaluation points and renders one line through r.
//
// Errors from ode (ErrInvalidProblem, ErrDegenerateBoundary, ErrOverflow)
// and grid.ErrAxisMismatch are returned before r is used. Renderer errors are
// returned together with the computed Result.
func SolveAndPlot(p ode.Problem, r chart.Renderer, opts ...Option) (ode.Result, error) {
	if r == nil {
		return ode.Result{}, ErrNilRenderer
	}
	o := gatherOptions(opts...)
	log := o.logger.With("alpha", p.Alpha, "beta", p.Beta, "gamma", p.Gamma, "L", p.L, "N", p.N)

	res, err := ode.Solve(p, o.solver...)
	if err != nil {
		log.Error("bvp.solve_failed", "err", err)
		return ode.Result{}, err
	}
	log.Debug("bvp.classified", "delta", res.Delta, "case", res.Case.String())

	xs, err := Axis(res, o.axisTol)
	if err != nil {
		log.Error("bvp.axis_mismatch", "err", err)
		return ode.Result{}, err
	}

	if err = chart.Plot(r, o.labels, xs, res.Grid.Values); err != nil {
		log.Error("bvp.render_failed", "err", err)
		return res, fmt.Errorf("bvp: render: %w", err)
	}
	log.Info("bvp.rendered", "case", res.Case.Kind.String(), "points", res.Grid.Len())

	return res, nil
}

// Axis returns the plot abscissae for res: N+1 evenly spaced values on
// [0, L], verified to coincide with the points the grid was sampled at.
func Axis(res ode.Result, tol float64) ([]float64, error) {
	xs, err := grid.Linspace(0, res.Problem.L, res.Grid.Len())
	if err != nil {
		return nil, err
	}
	if err = grid.Consistent(xs, res.Grid.Abscissae(), tol); err != nil {
		return nil, err
	}

	return xs, nil
}
