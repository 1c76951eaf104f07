// SPDX-License-Identifier: MIT

package ode

import "math"

// Discriminant returns Δ = β² − 4·α·γ of the characteristic polynomial.
func Discriminant(alpha, beta, gamma float64) float64 {
	return beta*beta - 4*alpha*gamma
}

// Classify maps the sign of Δ to a RootCase.
//
// Precondition: α ≠ 0. Classify does not validate; Evaluate and Solve do.
// By default the zero branch is taken only when Δ == 0 exactly.
func Classify(alpha, beta, gamma float64, opts ...Option) RootCase {
	o := gatherOptions(opts...)

	return classify(alpha, beta, gamma, Discriminant(alpha, beta, gamma), o)
}

func classify(alpha, beta, gamma, delta float64, o Options) RootCase {
	twoA := 2 * alpha

	switch {
	case isRepeated(alpha, beta, gamma, delta, o.deltaTol):
		return RootCase{Kind: RealRepeated, R: -beta / twoA}
	case delta > 0:
		sq := math.Sqrt(delta)
		return RootCase{
			Kind: RealDistinct,
			R1:   (-beta + sq) / twoA,
			R2:   (-beta - sq) / twoA,
		}
	default:
		return RootCase{
			Kind:  ComplexConjugate,
			Phi:   -beta / twoA,
			Omega: math.Sqrt(-delta) / twoA,
		}
	}
}

// isRepeated is the single dispatch decision for the Δ = 0 branch.
func isRepeated(alpha, beta, gamma, delta, eps float64) bool {
	if delta == 0 {
		return true
	}
	if eps == 0 {
		return false
	}
	scale := math.Max(beta*beta, math.Abs(4*alpha*gamma))

	return math.Abs(delta) <= eps*scale
}
