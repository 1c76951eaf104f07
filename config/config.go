// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlode/chart"
	"github.com/katalvlaran/lvlode/ode"
	"github.com/katalvlaran/lvlode/solution"
)

// ErrUnsupportedFormat indicates a file extension other than .yaml, .yml or .toml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Format names accepted by Decode.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Backend names accepted in Plot.Backend.
const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

// File is the whole configuration document.
type File struct {
	Problem Problem `yaml:"problem" toml:"problem"`
	Solver  Solver  `yaml:"solver" toml:"solver"`
	Plot    Plot    `yaml:"plot" toml:"plot"`
}

// Problem mirrors ode.Problem.
type Problem struct {
	Alpha float64 `yaml:"alpha" toml:"alpha"`
	Beta  float64 `yaml:"beta" toml:"beta"`
	Gamma float64 `yaml:"gamma" toml:"gamma"`
	U0    float64 `yaml:"u0" toml:"u0"`
	L     float64 `yaml:"l" toml:"l"`
	UL    float64 `yaml:"ul" toml:"ul"`
	N     int     `yaml:"n" toml:"n"`
}

// Solver holds ode options.
type Solver struct {
	Tolerance          float64 `yaml:"tolerance" toml:"tolerance"`
	ResonanceTolerance float64 `yaml:"resonance_tolerance" toml:"resonance_tolerance"`
	LegacyRepeated     bool    `yaml:"legacy_repeated" toml:"legacy_repeated"`
	Workers            int     `yaml:"workers" toml:"workers"`
}

// Plot holds chart settings. Sizes are in inches.
type Plot struct {
	Output  string  `yaml:"output" toml:"output"`
	Backend string  `yaml:"backend" toml:"backend"`
	Title   string  `yaml:"title" toml:"title"`
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
}

// Default returns the reference configuration.
func Default() File {
	return File{
		Problem: Problem{Alpha: 1, Beta: 100, Gamma: 3, U0: 5, L: 1, UL: 5, N: 200},
		Solver: Solver{
			Tolerance:          ode.DefaultDiscriminantTolerance,
			ResonanceTolerance: ode.DefaultResonanceTolerance,
			Workers:            ode.DefaultWorkers,
		},
		Plot: Plot{
			Output:  "solution.png",
			Backend: BackendGonum,
			Width:   chart.DefaultWidth,
			Height:  chart.DefaultHeight,
		},
	}
}

// Load reads path and decodes it by extension on top of Default.
func Load(path string) (File, error) {
	format, err := formatOf(path)
	if err != nil {
		return File{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(b), format)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return f, nil
}

// Decode parses r as format on top of Default and validates the result.
func Decode(r io.Reader, format string) (File, error) {
	f := Default()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return File{}, fmt.Errorf("decode toml: unknown keys %v", undecoded)
		}
	default:
		return File{}, fmt.Errorf("decode %q: %w", format, ErrUnsupportedFormat)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Validate checks the fields ode and chart would otherwise reject later.
func (f File) Validate() error {
	if err := f.ODEProblem().Validate(); err != nil {
		return err
	}
	if !nonNegative(f.Solver.Tolerance) || !nonNegative(f.Solver.ResonanceTolerance) {
		return fmt.Errorf("config: tolerances must be finite and >= 0, got %v and %v",
			f.Solver.Tolerance, f.Solver.ResonanceTolerance)
	}
	if f.Solver.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", f.Solver.Workers)
	}
	switch f.Plot.Backend {
	case BackendGonum, BackendGoChart:
	default:
		return fmt.Errorf("config: unknown backend %q", f.Plot.Backend)
	}
	if !positive(f.Plot.Width) || !positive(f.Plot.Height) {
		return fmt.Errorf("config: plot size must be finite and > 0, got %vx%v", f.Plot.Width, f.Plot.Height)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
func nonNegative(v float64) bool { return finite(v) && v >= 0 }
func positive(v float64) bool { return finite(v) && v > 0 }

// ODEProblem converts the problem section.
func (f File) ODEProblem() ode.Problem {
	p := f.Problem

	return ode.Problem{Alpha: p.Alpha, Beta: p.Beta, Gamma: p.Gamma, U0: p.U0, L: p.L, UL: p.UL, N: p.N}
}

// SolverOptions converts the solver section. Call after Validate.
func (f File) SolverOptions() []ode.Option {
	form := solution.RepeatedDivide
	if f.Solver.LegacyRepeated {
		form = solution.RepeatedLegacy
	}

	return []ode.Option{
		ode.WithDiscriminantTolerance(f.Solver.Tolerance),
		ode.WithResonanceTolerance(f.Solver.ResonanceTolerance),
		ode.WithRepeatedForm(form),
		ode.WithWorkers(f.Solver.Workers),
	}
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: %s: %w", path, ErrUnsupportedFormat)
	}
}
