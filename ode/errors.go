// SPDX-License-Identifier: MIT
// Package: ode
//
// errors.go — sentinel errors for problem validation and evaluation.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (operation, offending value) is attached with %w, never baked
//     into the sentinel message.
//   • Priority: ErrInvalidProblem → ErrDegenerateBoundary → ErrOverflow.

package ode

import (
	"errors"
	"fmt"
)

// ErrInvalidProblem indicates a problem that cannot be classified:
// α = 0 (first-order equation), L ≤ 0, N < 1, or a NaN/±Inf input.
var ErrInvalidProblem = errors.New("ode: invalid problem")

// ErrDegenerateBoundary indicates a complex-root problem whose length is
// resonant, sin(ω·L) ≈ 0: the boundary values do not determine k2.
var ErrDegenerateBoundary = errors.New("ode: degenerate boundary value problem")

// ErrOverflow indicates that an exponential term, a constant or a sample left
// the finite float64 range.
var ErrOverflow = errors.New("ode: floating-point overflow")

// odeErrorf attaches an operation name and a formatted detail to a sentinel.
// The result reads "<op>: <sentinel>: <detail>" and still matches errors.Is.
func odeErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", op, sentinel, fmt.Sprintf(format, args...))
}
