// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlode/config"
	"github.com/katalvlaran/lvlode/ode"
)

func TestDefault_IsReferenceRun(t *testing.T) {
	f := config.Default()
	require.NoError(t, f.Validate())
	assert.Equal(t, ode.Problem{Alpha: 1, Beta: 100, Gamma: 3, U0: 5, L: 1, UL: 5, N: 200}, f.ODEProblem())
	assert.Equal(t, config.BackendGonum, f.Plot.Backend)
	assert.Equal(t, "solution.png", f.Plot.Output)
}

func TestDecode_YAMLOverridesDefaults(t *testing.T) {
	src := `
problem:
  beta: -2
  gamma: 1
  u0: 0
  ul: 1
solver:
  legacy_repeated: true
  workers: 2
plot:
  backend: gochart
  output: critical.svg
`
	f, err := config.Decode(strings.NewReader(src), config.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, ode.Problem{Alpha: 1, Beta: -2, Gamma: 1, U0: 0, L: 1, UL: 1, N: 200}, f.ODEProblem())
	assert.True(t, f.Solver.LegacyRepeated)
	assert.Equal(t, 2, f.Solver.Workers)
	assert.Equal(t, config.BackendGoChart, f.Plot.Backend)
	assert.Equal(t, "critical.svg", f.Plot.Output)
	assert.Equal(t, 6.0, f.Plot.Width)
}

func TestDecode_EmptyYAMLIsDefault(t *testing.T) {
	f, err := config.Decode(strings.NewReader(""), config.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), f)
}

func TestDecode_TOML(t *testing.T) {
	src := `
[problem]
alpha = 1.0
beta = 0.0
gamma = 1.0
u0 = 1.0
l = 1.5707963267948966
ul = 0.0
n = 10

[plot]
title = "Harmonic"
`
	f, err := config.Decode(strings.NewReader(src), config.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, math.Pi/2, f.Problem.L)
	assert.Equal(t, 10, f.Problem.N)
	assert.Equal(t, "Harmonic", f.Plot.Title)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Decode(strings.NewReader("problem:\n  delta: 3\n"), config.FormatYAML)
	assert.Error(t, err)

	_, err = config.Decode(strings.NewReader("[problem]\ndelta = 3\n"), config.FormatTOML)
	assert.Error(t, err)
}

func TestDecode_Validation(t *testing.T) {
	_, err := config.Decode(strings.NewReader("problem:\n  alpha: 0\n"), config.FormatYAML)
	assert.ErrorIs(t, err, ode.ErrInvalidProblem)

	_, err = config.Decode(strings.NewReader("problem:\n  n: 0\n"), config.FormatYAML)
	assert.ErrorIs(t, err, ode.ErrInvalidProblem)

	_, err = config.Decode(strings.NewReader("plot:\n  backend: ascii\n"), config.FormatYAML)
	assert.ErrorContains(t, err, "unknown backend")

	_, err = config.Decode(strings.NewReader("solver:\n  workers: 0\n"), config.FormatYAML)
	assert.ErrorContains(t, err, "workers")

	_, err = config.Decode(strings.NewReader("solver:\n  tolerance: -1\n"), config.FormatYAML)
	assert.ErrorContains(t, err, "tolerances")

	_, err = config.Decode(strings.NewReader(""), "json")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestDecode_RejectsNonFiniteNumbers(t *testing.T) {
	cases := map[string]struct {
		src    string
		format string
		want   string
	}{
		"nan tolerance":           {"solver:\n  tolerance: .nan\n", config.FormatYAML, "tolerances"},
		"inf tolerance":           {"solver:\n  tolerance: .inf\n", config.FormatYAML, "tolerances"},
		"inf resonance tolerance": {"solver:\n  resonance_tolerance: .inf\n", config.FormatYAML, "tolerances"},
		"nan resonance tolerance": {"[solver]\nresonance_tolerance = nan\n", config.FormatTOML, "tolerances"},
		"nan width":               {"plot:\n  width: .nan\n", config.FormatYAML, "plot size"},
		"inf height":              {"[plot]\nheight = inf\n", config.FormatTOML, "plot size"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := config.Decode(strings.NewReader(tc.src), tc.format)
			require.ErrorContains(t, err, tc.want)
			assert.Equal(t, config.File{}, f)
		})
	}
}

func TestSolverOptions_AfterValidateDoesNotPanic(t *testing.T) {
	f := config.Default()
	f.Solver.Tolerance = math.NaN()
	require.Error(t, f.Validate())

	f = config.Default()
	require.NoError(t, f.Validate())
	assert.NotPanics(t, func() { _ = f.SolverOptions() })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yml := filepath.Join(dir, "p.yml")
	require.NoError(t, os.WriteFile(yml, []byte("problem:\n  n: 7\n"), 0o600))
	f, err := config.Load(yml)
	require.NoError(t, err)
	assert.Equal(t, 7, f.Problem.N)

	tml := filepath.Join(dir, "p.toml")
	require.NoError(t, os.WriteFile(tml, []byte("[problem]\nn = 9\n"), 0o600))
	f, err = config.Load(tml)
	require.NoError(t, err)
	assert.Equal(t, 9, f.Problem.N)

	_, err = config.Load(filepath.Join(dir, "p.json"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolverOptions_Legacy(t *testing.T) {
	f := config.Default()
	f.Problem = config.Problem{Alpha: 1, Beta: -2, Gamma: 1, U0: 0, L: 1, UL: 1, N: 2}
	f.Solver.LegacyRepeated = true

	g, err := ode.Evaluate(f.ODEProblem(), f.SolverOptions()...)
	require.NoError(t, err)
	assert.InDelta(t, math.E*0.5*math.Exp(0.5), g.Values[1], 1e-12)
}
