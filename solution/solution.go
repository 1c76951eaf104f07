// SPDX-License-Identifier: MIT

package solution

import "math"

// RealDistinctConstants solves the boundary system for two distinct real roots:
//
//	k1 = (uL − u0·e^(r2·L)) / (e^(r1·L) − e^(r2·L))
//	k2 = (u0·e^(r1·L) − uL) / (e^(r1·L) − e^(r2·L))
//
// The denominator vanishes only when r1 = r2 or both exponentials saturate
// to the same float (overflow/underflow); the result then carries ±Inf/NaN.
func RealDistinctConstants(u0, L, uL, r1, r2 float64) Constants {
	e1 := math.Exp(r1 * L)
	e2 := math.Exp(r2 * L)
	den := e1 - e2

	return Constants{
		K1: (uL - u0*e2) / den,
		K2: (u0*e1 - uL) / den,
	}
}

// RealDistinct returns u(x) = k1·e^(r1·x) + k2·e^(r2·x).
// Precondition: r1 ≠ r2.
func RealDistinct(x, u0, L, uL, r1, r2 float64) float64 {
	c := RealDistinctConstants(u0, L, uL, r1, r2)

	return RealDistinctAt(x, c, r1, r2)
}

// RealDistinctAt evaluates the distinct-roots family with precomputed constants.
func RealDistinctAt(x float64, c Constants, r1, r2 float64) float64 {
	return c.K1*math.Exp(r1*x) + c.K2*math.Exp(r2*x)
}

// RealRepeatedConstants solves the boundary system for a double root r.
// k1 = u0 always; k2 depends on form (see RepeatedForm).
func RealRepeatedConstants(u0, L, uL, r float64, form RepeatedForm) Constants {
	erl := math.Exp(r * L)
	num := uL - u0*erl

	var k2 float64
	switch form {
	case RepeatedLegacy:
		// (uL − u0·e^(rL)) / L · e^(rL), evaluated left to right.
		k2 = num / L * erl
	default:
		k2 = num / (L * erl)
	}

	return Constants{K1: u0, K2: k2}
}

// RealRepeated returns u(x) = k1·e^(r·x) + k2·x·e^(r·x) using RepeatedDivide.
// Precondition: L ≠ 0.
func RealRepeated(x, u0, L, uL, r float64) float64 {
	return RealRepeatedForm(x, u0, L, uL, r, RepeatedDivide)
}

// RealRepeatedForm is RealRepeated with an explicit k2 form.
func RealRepeatedForm(x, u0, L, uL, r float64, form RepeatedForm) float64 {
	c := RealRepeatedConstants(u0, L, uL, r, form)

	return RealRepeatedAt(x, c, r)
}

// RealRepeatedAt evaluates the repeated-root family with precomputed constants.
func RealRepeatedAt(x float64, c Constants, r float64) float64 {
	erx := math.Exp(r * x)

	return c.K1*erx + c.K2*x*erx
}

// ComplexConjugateConstants solves the boundary system for roots φ ± jω:
//
//	k1 = u0
//	k2 = (uL/e^(φ·L) − u0·cos(ω·L)) / sin(ω·L)
//
// sin(ω·L) = 0 is a resonant length; the result then carries ±Inf/NaN.
func ComplexConjugateConstants(u0, L, uL, phi, omega float64) Constants {
	wl := omega * L

	return Constants{
		K1: u0,
		K2: (uL/math.Exp(phi*L) - u0*math.Cos(wl)) / math.Sin(wl),
	}
}

// ComplexConjugate returns u(x) = e^(φ·x)·(k1·cos(ω·x) + k2·sin(ω·x)).
// Precondition: sin(ω·L) ≠ 0.
func ComplexConjugate(x, u0, L, uL, phi, omega float64) float64 {
	c := ComplexConjugateConstants(u0, L, uL, phi, omega)

	return ComplexConjugateAt(x, c, phi, omega)
}

// ComplexConjugateAt evaluates the complex-roots family with precomputed constants.
func ComplexConjugateAt(x float64, c Constants, phi, omega float64) float64 {
	wx := omega * x

	return math.Exp(phi*x) * (c.K1*math.Cos(wx) + c.K2*math.Sin(wx))
}
