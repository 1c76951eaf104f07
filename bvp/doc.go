// SPDX-License-Identifier: MIT

// Package bvp is the one-call entry point: solve a constant-coefficient
// second-order boundary value problem in closed form and plot it.
//
//	p := ode.Problem{Alpha: 1, Beta: 100, Gamma: 3, U0: 5, L: 1, UL: 5, N: 200}
//	r, _ := chart.NewGonum("solution.png")
//	res, err := bvp.SolveAndPlot(p, r)
//
// Data flows one way: Problem → ode.Solve → grid axis → chart.Renderer.
// Any upstream failure returns before the renderer is touched, so no partial
// chart is ever produced.
package bvp
