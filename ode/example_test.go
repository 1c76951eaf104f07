// SPDX-License-Identifier: MIT

package ode_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlode/ode"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleClassify
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One equation per branch of the discriminant:
//	  u'' − u = 0         Δ = 4   > 0
//	  u'' − 2u' + u = 0   Δ = 0
//	  u'' + 2u' + 5u = 0  Δ = −16 < 0
func ExampleClassify() {
	fmt.Println(ode.Classify(1, 0, -1))
	fmt.Println(ode.Classify(1, -2, 1))
	fmt.Println(ode.Classify(1, 2, 5))
	// Output:
	// real-distinct{r1=1, r2=-1}
	// real-repeated{r=1}
	// complex-conjugate{phi=-1, omega=2}
}

// ExampleEvaluate samples u″ − u = 0, u(0)=1, u(1)=e, whose solution is e^x.
func ExampleEvaluate() {
	p := ode.Problem{Alpha: 1, Beta: 0, Gamma: -1, U0: 1, L: 1, UL: math.E, N: 4}

	g, err := ode.Evaluate(p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, v := range g.Values {
		fmt.Printf("u(%.2f) = %.4f\n", g.X(i), v)
	}
	// Output:
	// u(0.00) = 1.0000
	// u(0.25) = 1.2840
	// u(0.50) = 1.6487
	// u(0.75) = 2.1170
	// u(1.00) = 2.7183
}

// ExampleEvaluate_resonant shows the error returned when ω·L is a multiple of π.
func ExampleEvaluate_resonant() {
	p := ode.Problem{Alpha: 1, Beta: 0, Gamma: 1, U0: 1, L: math.Pi, UL: 1, N: 10}

	_, err := ode.Evaluate(p)
	fmt.Println(errors.Is(err, ode.ErrDegenerateBoundary))
	// Output:
	// true
}
