// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultTolerance is the absolute-or-relative bound used by Consistent
// when callers pass a non-positive tolerance.
const DefaultTolerance = 1e-12

// Linspace returns n evenly spaced values from start to end inclusive.
// Both endpoints are exact. n = 1 yields []float64{start}.
func Linspace(start, end float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Linspace(n=%d): %w", n, ErrBadCount)
	}
	if n == 1 {
		return []float64{start}, nil
	}

	xs := floats.Span(make([]float64, n), start, end)
	xs[n-1] = end

	return xs, nil
}

// Stepped returns x_i = i·h for i = 0..n-1. n < 1 yields nil.
func Stepped(h float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * h
	}

	return xs
}

// Consistent reports ErrAxisMismatch unless a and b have the same length and
// agree element-wise within tol (absolute or relative, gonum semantics).
func Consistent(a, b []float64, tol float64) error {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if len(a) != len(b) {
		return fmt.Errorf("Consistent: len %d vs %d: %w", len(a), len(b), ErrAxisMismatch)
	}
	if !floats.EqualApprox(a, b, tol) {
		return fmt.Errorf("Consistent: spacing differs beyond %g: %w", tol, ErrAxisMismatch)
	}

	return nil
}
