// SPDX-License-Identifier: MIT

// Package solution holds the closed-form solutions of the homogeneous
// constant-coefficient equation
//
//	α·u'' + β·u' + γ·u = 0,   u(0) = u0,   u(L) = uL
//
// one function per root type of the characteristic polynomial α·r² + β·r + γ.
//
// 🚀 Families:
//
//	real & distinct  r1 ≠ r2 : u(x) = k1·e^(r1·x) + k2·e^(r2·x)
//	real & repeated  r       : u(x) = k1·e^(r·x)  + k2·x·e^(r·x)
//	complex          φ ± jω  : u(x) = e^(φ·x)·(k1·cos(ω·x) + k2·sin(ω·x))
//
// The two constants k1, k2 are fixed by the boundary values. Every family
// exposes both the constant solver (…Constants) and the point evaluator, so
// a caller can precheck the constants once and then sample many x.
//
// ⚙️ Contract:
//
//   - All functions are pure: no state, no allocation, no panics.
//   - Preconditions (r1 ≠ r2, L ≠ 0, sin(ω·L) ≠ 0) are NOT checked here.
//     Package ode validates problems and classifies roots before calling in,
//     and reports violations as sentinel errors instead of NaN/±Inf.
//
// Repeated roots:
//
//	The derivation gives k2 = (uL − u0·e^(rL)) / (L·e^(rL)). A historical
//	rendition of this formula divided by L and then MULTIPLIED by e^(rL).
//	RepeatedDivide (default) implements the derivation, RepeatedLegacy keeps
//	the historical value bit-for-bit for callers that compare against it.
package solution
