// SPDX-License-Identifier: MIT

// Package grid builds the uniform abscissae used to sample and plot a
// solution on [0, L].
//
// Two constructions exist on purpose:
//
//   - Linspace(0, L, N+1) spaces N+1 values evenly with both endpoints exact
//     (gonum floats.Span). The chart uses it as its x-axis.
//   - Stepped(h, N+1) returns i·h. The evaluator samples at these points.
//
// They agree in count and spacing up to rounding; Consistent checks that,
// so a plot never pairs values with the wrong abscissae.
package grid
