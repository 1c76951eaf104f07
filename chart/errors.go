// SPDX-License-Identifier: MIT

package chart

import "errors"

var (
	// ErrEmptySeries indicates a series without points.
	ErrEmptySeries = errors.New("chart: empty series")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("chart: x and y lengths differ")

	// ErrUnsupportedFormat indicates an output format the backend cannot write.
	ErrUnsupportedFormat = errors.New("chart: unsupported output format")

	// ErrNoSeries indicates Render was called before any Line.
	ErrNoSeries = errors.New("chart: nothing to render")
)
