// SPDX-License-Identifier: MIT

package solution

import "math"

// Constants are the two free coefficients (k1, k2) of a closed-form family.
type Constants struct {
	K1 float64
	K2 float64
}

// Finite reports whether both constants are neither NaN nor ±Inf.
func (c Constants) Finite() bool {
	return isFinite(c.K1) && isFinite(c.K2)
}

// RepeatedForm selects how k2 is computed for a repeated real root.
type RepeatedForm int

const (
	// RepeatedDivide computes k2 = (uL − u0·e^(rL)) / (L·e^(rL)).
	// The resulting u satisfies u(L) = uL.
	RepeatedDivide RepeatedForm = iota

	// RepeatedLegacy computes k2 = (uL − u0·e^(rL)) / L · e^(rL).
	// Kept only for reproducing previously published numbers; u(L) ≠ uL
	// unless r·L = 0.
	RepeatedLegacy
)

// String returns a stable lower-case name, used by the CLI and in logs.
func (f RepeatedForm) String() string {
	switch f {
	case RepeatedDivide:
		return "divide"
	case RepeatedLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
