// SPDX-License-Identifier: MIT

// Package lvlode solves and plots the boundary value problem
//
//	α·u'' + β·u' + γ·u = 0,   u(0) = u0,   u(L) = uL
//
// in closed form, for constant real coefficients and α ≠ 0.
//
// The characteristic polynomial αr² + βr + γ has discriminant Δ = β² − 4αγ,
// and its sign picks one of three solution families:
//
//	Δ > 0   u(x) = k1·e^(r1·x) + k2·e^(r2·x)
//	Δ = 0   u(x) = (k1 + k2·x)·e^(r·x)
//	Δ < 0   u(x) = e^(φ·x)·(k1·cos(ωx) + k2·sin(ωx))
//
// with k1, k2 fixed by the two boundary values. Nothing is integrated
// numerically: every sample is an exact formula evaluation.
//
// Layout:
//
//	solution/ — the three closed forms and their constant solvers
//	ode/      — Problem, Classify, Evaluate/Solve/ValueAt, error sentinels
//	grid/     — uniform axes (Linspace, Stepped) and their consistency check
//	chart/    — Renderer interface; gonum/plot and go-chart backends, Recorder
//	bvp/      — SolveAndPlot: solve, build the axis, draw one line
//	config/   — YAML/TOML problem files
//	cmd/odeplot, internal/cli — the command line front end
//
// Quick start:
//
//	p := ode.Problem{Alpha: 1, Beta: 100, Gamma: 3, U0: 5, L: 1, UL: 5, N: 200}
//	r, _ := chart.NewGonum("solution.png")
//	res, err := bvp.SolveAndPlot(p, r)
//	if errors.Is(err, ode.ErrDegenerateBoundary) {
//		// sin(ωL) ≈ 0: the boundary values do not determine k2
//	}
//	fmt.Println(res.Case) // real-distinct{r1=-0.03..., r2=-99.96...}
//
// See examples/ for runnable programs.
package lvlode
