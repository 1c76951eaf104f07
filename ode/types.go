// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"

	"github.com/katalvlaran/lvlode/grid"
)

// Problem is α·u″ + β·u' + γ·u = 0 on [0, L] with u(0)=U0, u(L)=UL,
// sampled at N+1 points.
type Problem struct {
	Alpha float64 // coefficient of u″, must be non-zero
	Beta  float64 // coefficient of u'
	Gamma float64 // coefficient of u
	U0    float64 // u(0)
	UL    float64 // u(L)
	L     float64 // right endpoint, > 0
	N     int     // number of intervals, ≥ 1
}

// Step returns the grid spacing h = L/N.
func (p Problem) Step() float64 {
	return p.L / float64(p.N)
}

// RootKind tags the active variant of RootCase.
type RootKind int

const (
	// RealDistinct: Δ > 0, two real roots r1 ≠ r2.
	RealDistinct RootKind = iota
	// RealRepeated: Δ = 0, one double real root r.
	RealRepeated
	// ComplexConjugate: Δ < 0, roots φ ± jω.
	ComplexConjugate
)

// String returns a stable identifier used by the CLI and logs.
func (k RootKind) String() string {
	switch k {
	case RealDistinct:
		return "real-distinct"
	case RealRepeated:
		return "real-repeated"
	case ComplexConjugate:
		return "complex-conjugate"
	default:
		return fmt.Sprintf("RootKind(%d)", int(k))
	}
}

// RootCase is a tagged union over the three root types. Only the fields of
// the active Kind are meaningful; the others stay zero.
type RootCase struct {
	Kind RootKind

	R1, R2 float64 // RealDistinct: (−β ± √Δ) / 2α
	R      float64 // RealRepeated: −β / 2α

	Phi   float64 // ComplexConjugate: common real part −β / 2α
	Omega float64 // ComplexConjugate: pseudofrequency √(−Δ) / 2α
}

// String renders the active variant only.
func (c RootCase) String() string {
	switch c.Kind {
	case RealDistinct:
		return fmt.Sprintf("%s{r1=%g, r2=%g}", c.Kind, c.R1, c.R2)
	case RealRepeated:
		return fmt.Sprintf("%s{r=%g}", c.Kind, c.R)
	case ComplexConjugate:
		return fmt.Sprintf("%s{phi=%g, omega=%g}", c.Kind, c.Phi, c.Omega)
	default:
		return c.Kind.String()
	}
}

// SampleGrid holds u at x_i = i·Step, i = 0..N. Values[N] is the boundary
// value uL copied verbatim, never recomputed from the closed form.
type SampleGrid struct {
	Step   float64
	Values []float64
}

// Len returns N+1.
func (g SampleGrid) Len() int { return len(g.Values) }

// X returns the abscissa of sample i.
func (g SampleGrid) X(i int) float64 { return float64(i) * g.Step }

// Abscissae returns all x_i = i·Step, the points Values were computed at.
func (g SampleGrid) Abscissae() []float64 {
	return grid.Stepped(g.Step, len(g.Values))
}

// Result bundles everything a single Solve produced.
type Result struct {
	Problem Problem
	Delta   float64
	Case    RootCase
	Grid    SampleGrid
}
