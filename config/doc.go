// SPDX-License-Identifier: MIT

// Package config loads problem, solver and plot settings from a YAML or TOML
// file. Fields missing from the file keep the values of Default, which is
// the reference run α=1, β=100, γ=3, u(0)=5, u(1)=5, N=200.
//
//	problem:
//	  alpha: 1
//	  beta: 100
//	  gamma: 3
//	  u0: 5
//	  l: 1
//	  ul: 5
//	  n: 200
//	solver:
//	  tolerance: 0
//	  legacy_repeated: false
//	plot:
//	  output: solution.png
//	  backend: gonum
package config
