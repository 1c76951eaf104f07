// SPDX-License-Identifier: MIT

// Command odeplot solves a constant-coefficient second-order boundary value
// problem in closed form and plots the solution.
package main

import "github.com/katalvlaran/lvlode/internal/cli"

func main() {
	cli.Execute()
}
