// SPDX-License-Identifier: MIT

package ode

import "math"

// MaxN caps Problem.N: N+1 float64 samples (128 MiB) are allocated per solve.
const MaxN = 1 << 24

// Validate reports ErrInvalidProblem when p cannot be classified or sampled.
// Checks run in field order so the first offending field is named.
func (p Problem) Validate() error {
	const op = "Validate"

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"alpha", p.Alpha}, {"beta", p.Beta}, {"gamma", p.Gamma},
		{"u0", p.U0}, {"uL", p.UL}, {"L", p.L},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return odeErrorf(op, ErrInvalidProblem, "%s must be finite, got %v", f.name, f.v)
		}
	}
	if p.Alpha == 0 {
		return odeErrorf(op, ErrInvalidProblem, "alpha must be non-zero")
	}
	if p.L <= 0 {
		return odeErrorf(op, ErrInvalidProblem, "L must be > 0, got %v", p.L)
	}
	if p.N < 1 || p.N > MaxN {
		return odeErrorf(op, ErrInvalidProblem, "N must be in [1, %d], got %d", MaxN, p.N)
	}

	return nil
}
