// SPDX-License-Identifier: MIT

// Package chart isolates plotting behind the Renderer interface so the
// numeric packages never depend on a drawing backend.
//
// Backends:
//
//   - Gonum    — gonum.org/v1/plot; writes png/svg/pdf/eps/jpg/tif chosen by
//     the output file extension.
//   - GoChart  — github.com/wcharczuk/go-chart/v2; writes png or svg to any
//     io.Writer.
//   - Recorder — keeps every call in memory; used by tests.
//
// Usage:
//
//	r, err := chart.NewGonum("solution.png", chart.WithSize(6, 4))
//	if err != nil { ... }
//	err = chart.Plot(r, chart.Labels{Title: "u(x)", X: "x", Y: "u(x)"}, xs, ys)
package chart
