// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadCount indicates a requested number of points below 1.
	ErrBadCount = errors.New("grid: point count must be >= 1")

	// ErrAxisMismatch indicates two axes that differ in length or spacing.
	ErrAxisMismatch = errors.New("grid: axes do not coincide")
)
