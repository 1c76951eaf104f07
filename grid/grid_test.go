// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlode/grid"
)

func TestLinspace(t *testing.T) {
	xs, err := grid.Linspace(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	xs, err = grid.Linspace(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, xs)

	_, err = grid.Linspace(0, 1, 0)
	assert.ErrorIs(t, err, grid.ErrBadCount)
}

func TestLinspace_EndpointsExact(t *testing.T) {
	xs, err := grid.Linspace(0, math.Pi, 201)
	require.NoError(t, err)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, math.Pi, xs[len(xs)-1])
}

func TestStepped(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, grid.Stepped(0.5, 4))
	assert.Nil(t, grid.Stepped(0.5, 0))
}

// The evaluator's i·h axis and the plot's linspace axis must coincide.
func TestConsistent_SteppedMatchesLinspace(t *testing.T) {
	for _, tc := range []struct {
		L float64
		N int
	}{
		{1, 1}, {1, 200}, {math.Pi / 2, 37}, {1e3, 10000}, {0.1, 3},
	} {
		lin, err := grid.Linspace(0, tc.L, tc.N+1)
		require.NoError(t, err)
		step := grid.Stepped(tc.L/float64(tc.N), tc.N+1)
		assert.NoError(t, grid.Consistent(lin, step, 0), "L=%v N=%d", tc.L, tc.N)
	}
}

func TestConsistent_Mismatch(t *testing.T) {
	err := grid.Consistent([]float64{0, 1}, []float64{0, 0.5, 1}, 0)
	assert.ErrorIs(t, err, grid.ErrAxisMismatch)

	err = grid.Consistent([]float64{0, 1, 2}, []float64{0, 0.5, 1}, 0)
	assert.ErrorIs(t, err, grid.ErrAxisMismatch)
}
