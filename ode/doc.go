// SPDX-License-Identifier: MIT

// Package ode classifies and evaluates the two-point boundary value problem
//
//	α·u'' + β·u' + γ·u = 0  on [0, L],   u(0) = u0,   u(L) = uL
//
// for constant real coefficients.
//
// 🚀 Pipeline (one pass, no iteration):
//
//  1. Validate the Problem (α ≠ 0, L > 0, N ≥ 1, finite reals).
//  2. Discriminant Δ = β² − 4·α·γ.
//  3. Classify the sign of Δ into a RootCase:
//     Δ > 0 → RealDistinct{R1, R2}
//     Δ = 0 → RealRepeated{R}
//     Δ < 0 → ComplexConjugate{Phi, Omega}
//  4. Solve the two constants once (package solution) and check them.
//  5. Sample u at x = i·h, h = L/N, for i = 0..N−1; slot N is set to uL.
//
// ⚙️ Numeric policy:
//
//   - Δ is compared with zero EXACTLY by default. Coefficients that should
//     give Δ = 0 but round to a tiny non-zero value land in one of the other
//     branches. WithDiscriminantTolerance enables a scale-relative band.
//   - Resonant lengths (|sin(ω·L)| ≤ WithResonanceTolerance) fail with
//     ErrDegenerateBoundary instead of producing NaN/±Inf.
//   - Saturated exponentials, non-finite constants and non-finite samples
//     fail with ErrOverflow.
//   - The repeated-root k2 form is selectable with WithRepeatedForm.
//
// Everything here is a pure function of its inputs: calling Classify or
// Evaluate twice with the same arguments yields bit-identical results,
// including under WithWorkers.
//
// Complexity: O(N) time, O(N) memory.
package ode
