// SPDX-License-Identifier: MIT

package ode

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlode/solution"
)

// Evaluate samples the solution of p on x_i = i·L/N, i = 0..N.
// Values[N] is p.UL verbatim. See Solve for the errors returned.
func Evaluate(p Problem, opts ...Option) (SampleGrid, error) {
	res, err := Solve(p, opts...)
	if err != nil {
		return SampleGrid{}, err
	}

	return res.Grid, nil
}

// Solve validates p, classifies its roots once and samples the matching
// closed form.
//
// Errors:
//   - ErrInvalidProblem     — see Problem.Validate.
//   - ErrDegenerateBoundary — complex roots with |sin(ω·L)| ≤ resonance tolerance.
//   - ErrOverflow           — non-finite exponential, constant or sample.
func Solve(p Problem, opts ...Option) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	delta := Discriminant(p.Alpha, p.Beta, p.Gamma)
	rc := classify(p.Alpha, p.Beta, p.Gamma, delta, o)

	ev, err := newEvaluator(p, rc, o)
	if err != nil {
		return Result{}, err
	}

	h := p.Step()
	values := make([]float64, p.N+1)
	values[p.N] = p.UL

	if err = fill(values[:p.N], h, ev, o.workers); err != nil {
		return Result{}, err
	}

	return Result{
		Problem: p,
		Delta:   delta,
		Case:    rc,
		Grid:    SampleGrid{Step: h, Values: values},
	}, nil
}

// ValueAt evaluates the closed-form solution of p at an arbitrary x.
// Unlike the grid, ValueAt(p, p.L) is computed from the formula, so it
// exposes any mismatch with p.UL (e.g. under solution.RepeatedLegacy).
func ValueAt(p Problem, x float64, opts ...Option) (float64, error) {
	const op = "ValueAt"

	if err := p.Validate(); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)
	rc := classify(p.Alpha, p.Beta, p.Gamma, Discriminant(p.Alpha, p.Beta, p.Gamma), o)

	ev, err := newEvaluator(p, rc, o)
	if err != nil {
		return 0, err
	}
	v := ev.at(x)
	if !isFinite(v) {
		return 0, odeErrorf(op, ErrOverflow, "u(%v) = %v", x, v)
	}

	return v, nil
}

// evaluator is a RootCase with its constants already solved and checked.
type evaluator struct {
	rc RootCase
	c  solution.Constants
}

// newEvaluator solves the constants for rc and rejects degenerate or
// saturated configurations before any sample is computed.
func newEvaluator(p Problem, rc RootCase, o Options) (evaluator, error) {
	const op = "evaluate"

	var c solution.Constants
	switch rc.Kind {
	case RealDistinct:
		e1, e2 := math.Exp(rc.R1*p.L), math.Exp(rc.R2*p.L)
		if !isFinite(e1) || !isFinite(e2) {
			return evaluator{}, odeErrorf(op, ErrOverflow, "e^(r·L) overflows for r1=%g, r2=%g, L=%g", rc.R1, rc.R2, p.L)
		}
		if e1-e2 == 0 {
			return evaluator{}, odeErrorf(op, ErrOverflow, "e^(r1·L) and e^(r2·L) are indistinguishable for r1=%g, r2=%g, L=%g", rc.R1, rc.R2, p.L)
		}
		c = solution.RealDistinctConstants(p.U0, p.L, p.UL, rc.R1, rc.R2)

	case RealRepeated:
		erl := math.Exp(rc.R * p.L)
		if !isFinite(erl) || erl == 0 {
			return evaluator{}, odeErrorf(op, ErrOverflow, "e^(r·L) = %v for r=%g, L=%g", erl, rc.R, p.L)
		}
		c = solution.RealRepeatedConstants(p.U0, p.L, p.UL, rc.R, o.repeated)

	case ComplexConjugate:
		s := math.Sin(rc.Omega * p.L)
		if math.Abs(s) <= o.resonanceTol {
			return evaluator{}, odeErrorf(op, ErrDegenerateBoundary, "sin(omega·L) = %g for omega=%g, L=%g", s, rc.Omega, p.L)
		}
		epl := math.Exp(rc.Phi * p.L)
		if !isFinite(epl) || epl == 0 {
			return evaluator{}, odeErrorf(op, ErrOverflow, "e^(phi·L) = %v for phi=%g, L=%g", epl, rc.Phi, p.L)
		}
		c = solution.ComplexConjugateConstants(p.U0, p.L, p.UL, rc.Phi, rc.Omega)
	}

	if !c.Finite() {
		return evaluator{}, odeErrorf(op, ErrOverflow, "constants k1=%v, k2=%v", c.K1, c.K2)
	}

	return evaluator{rc: rc, c: c}, nil
}

func (e evaluator) at(x float64) float64 {
	switch e.rc.Kind {
	case RealDistinct:
		return solution.RealDistinctAt(x, e.c, e.rc.R1, e.rc.R2)
	case RealRepeated:
		return solution.RealRepeatedAt(x, e.c, e.rc.R)
	default:
		return solution.ComplexConjugateAt(x, e.c, e.rc.Phi, e.rc.Omega)
	}
}

// fill writes u(i·h) into dst[i]. With workers > 1 the index range is split
// into contiguous chunks; each goroutine owns a disjoint sub-slice.
func fill(dst []float64, h float64, ev evaluator, workers int) error {
	n := len(dst)
	if workers <= 1 || n < 2*workers {
		return fillRange(dst, 0, n, h, ev)
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error { return fillRange(dst, lo, hi, h, ev) })
	}

	return g.Wait()
}

func fillRange(dst []float64, lo, hi int, h float64, ev evaluator) error {
	for i := lo; i < hi; i++ {
		x := float64(i) * h
		v := ev.at(x)
		if !isFinite(v) {
			return odeErrorf("evaluate", ErrOverflow, "u(%v) = %v at index %d", x, v, i)
		}
		dst[i] = v
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
