// SPDX-License-Identifier: MIT

package ode_test

import (
	"testing"

	"github.com/katalvlaran/lvlode/ode"
)

// benchmarkEvaluate runs Evaluate on p with opts and fails on unexpected errors.
func benchmarkEvaluate(b *testing.B, p ode.Problem, opts ...ode.Option) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ode.Evaluate(p, opts...); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

func BenchmarkEvaluate_RealDistinct(b *testing.B) {
	benchmarkEvaluate(b, ode.Problem{Alpha: 1, Beta: 100, Gamma: 3, U0: 5, L: 1, UL: 5, N: 100_000})
}

func BenchmarkEvaluate_RealRepeated(b *testing.B) {
	benchmarkEvaluate(b, ode.Problem{Alpha: 1, Beta: -2, Gamma: 1, U0: 0, L: 1, UL: 1, N: 100_000})
}

func BenchmarkEvaluate_ComplexConjugate(b *testing.B) {
	benchmarkEvaluate(b, ode.Problem{Alpha: 1, Beta: 0.2, Gamma: 4, U0: 1, L: 10, UL: 0, N: 100_000})
}

func BenchmarkEvaluate_ComplexConjugateWorkers(b *testing.B) {
	benchmarkEvaluate(b, ode.Problem{Alpha: 1, Beta: 0.2, Gamma: 4, U0: 1, L: 10, UL: 0, N: 100_000}, ode.WithWorkers(4))
}
