// SPDX-License-Identifier: MIT
// Package: ode
//
// options.go — functional configuration of the classifier and evaluator.
//
// Contract:
//   • WithX constructors validate and PANIC on nonsensical values
//     (programmer error). Classify/Evaluate never panic.
//   • Options are applied in order; last wins.
//   • Zero options reproduce the historical behaviour except for the
//     repeated-root k2, which defaults to the derived (divide) form.

package ode

import (
	"math"

	"github.com/katalvlaran/lvlode/solution"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDiscriminantTolerance of 0 means Δ is compared with zero exactly.
	DefaultDiscriminantTolerance = 0.0

	// DefaultResonanceTolerance bounds |sin(ω·L)| below which a complex-root
	// problem is reported as degenerate. sin(π) evaluates to ~1.2e-16.
	DefaultResonanceTolerance = 1e-10

	// DefaultRepeatedForm is the derived k2 = (uL − u0·e^(rL)) / (L·e^(rL)).
	DefaultRepeatedForm = solution.RepeatedDivide

	// DefaultWorkers evaluates the grid on the calling goroutine.
	DefaultWorkers = 1
)

const (
	panicDiscriminantTolerance = "ode: WithDiscriminantTolerance: eps must be finite, non-negative"
	panicResonanceTolerance    = "ode: WithResonanceTolerance: eps must be finite, non-negative"
	panicRepeatedForm          = "ode: WithRepeatedForm: unknown form"
	panicWorkers               = "ode: WithWorkers: n must be >= 1"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; public entry
// points accept ...Option.
type Options struct {
	deltaTol     float64
	resonanceTol float64
	repeated     solution.RepeatedForm
	workers      int
}

// WithDiscriminantTolerance enables the tolerant classification mode:
// |Δ| ≤ eps·max(β², |4·α·γ|) is treated as a repeated root. The bound is
// relative to the magnitude of the two terms Δ is the difference of, so it
// does not depend on the units of the coefficients. eps = 0 restores exact
// comparison.
func WithDiscriminantTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicDiscriminantTolerance)
	}

	return func(o *Options) { o.deltaTol = eps }
}

// WithResonanceTolerance sets the |sin(ω·L)| threshold for ErrDegenerateBoundary.
func WithResonanceTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicResonanceTolerance)
	}

	return func(o *Options) { o.resonanceTol = eps }
}

// WithRepeatedForm selects the k2 formula used for repeated roots.
func WithRepeatedForm(f solution.RepeatedForm) Option {
	if f != solution.RepeatedDivide && f != solution.RepeatedLegacy {
		panic(panicRepeatedForm)
	}

	return func(o *Options) { o.repeated = f }
}

// WithWorkers evaluates the grid with up to n goroutines over contiguous
// index ranges. Output is identical to the serial evaluation.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions resolves defaults and applies opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		deltaTol:     DefaultDiscriminantTolerance,
		resonanceTol: DefaultResonanceTolerance,
		repeated:     DefaultRepeatedForm,
		workers:      DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
