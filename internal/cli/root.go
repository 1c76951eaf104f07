// SPDX-License-Identifier: MIT

// Package cli implements the odeplot command tree.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlode/bvp"
	"github.com/katalvlaran/lvlode/chart"
	"github.com/katalvlaran/lvlode/config"
	"github.com/katalvlaran/lvlode/internal/logger"
)

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// settings are the raw flag values; only flags the user set override the
// configuration file.
type settings struct {
	configPath string

	alpha, beta, gamma float64
	u0, length, uL     float64
	n                  int

	tolerance float64
	resonance float64
	legacy    bool
	workers   int

	out     string
	backend string
	title   string

	debug     bool
	logFormat string
}

// NewRootCmd builds odeplot with its subcommands.
func NewRootCmd() *cobra.Command {
	s := &settings{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "odeplot",
		Short: "Plot the closed-form solution of α·u'' + β·u' + γ·u = 0 with u(0)=u0, u(L)=uL",
		Long: `odeplot classifies the roots of the characteristic polynomial of a
constant-coefficient second-order equation, solves the two-point boundary
value problem in closed form and writes a chart of u(x) on [0, L].`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, log, err := s.resolve(cmd)
			if err != nil {
				return err
			}

			return runPlot(cmd.OutOrStdout(), f, log)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&s.configPath, "config", "", "YAML or TOML file with problem/solver/plot sections")
	pf.Float64Var(&s.alpha, "alpha", def.Problem.Alpha, "coefficient of u'' (non-zero)")
	pf.Float64Var(&s.beta, "beta", def.Problem.Beta, "coefficient of u'")
	pf.Float64Var(&s.gamma, "gamma", def.Problem.Gamma, "coefficient of u")
	pf.Float64Var(&s.u0, "u0", def.Problem.U0, "boundary value u(0)")
	pf.Float64Var(&s.length, "length", def.Problem.L, "right endpoint L (> 0)")
	pf.Float64Var(&s.uL, "ul", def.Problem.UL, "boundary value u(L)")
	pf.IntVar(&s.n, "n", def.Problem.N, "number of grid intervals (>= 1)")
	pf.Float64Var(&s.tolerance, "tolerance", def.Solver.Tolerance, "relative band around Δ=0 treated as a repeated root (0 = exact)")
	pf.Float64Var(&s.resonance, "resonance-tolerance", def.Solver.ResonanceTolerance, "|sin(ω·L)| at or below which the problem is degenerate")
	pf.BoolVar(&s.legacy, "legacy-repeated", def.Solver.LegacyRepeated, "use the historical repeated-root k2 (multiplies by e^(rL))")
	pf.IntVar(&s.workers, "workers", def.Solver.Workers, "goroutines used to sample the grid")
	pf.BoolVar(&s.debug, "debug", false, "debug logging with source locations")
	pf.StringVar(&s.logFormat, "log-format", logger.FormatJSON, "log format on stderr: json or text")

	cmd.Flags().StringVarP(&s.out, "out", "o", def.Plot.Output, "output file; extension selects the format")
	cmd.Flags().StringVar(&s.backend, "backend", def.Plot.Backend, "plotting backend: gonum or gochart")
	cmd.Flags().StringVar(&s.title, "title", "", "chart title")

	cmd.AddCommand(classifyCmd(s), tableCmd(s))

	return cmd
}

// resolve merges Default, the optional config file and explicitly set flags.
func (s *settings) resolve(cmd *cobra.Command) (config.File, *slog.Logger, error) {
	log, err := logger.New(cmd.ErrOrStderr(), logger.Config{Format: s.logFormat, Debug: s.debug})
	if err != nil {
		return config.File{}, nil, err
	}

	f := config.Default()
	if s.configPath != "" {
		if f, err = config.Load(s.configPath); err != nil {
			return config.File{}, nil, err
		}
		log.Debug("cli.config_loaded", "path", s.configPath)
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("alpha", func() { f.Problem.Alpha = s.alpha })
	set("beta", func() { f.Problem.Beta = s.beta })
	set("gamma", func() { f.Problem.Gamma = s.gamma })
	set("u0", func() { f.Problem.U0 = s.u0 })
	set("length", func() { f.Problem.L = s.length })
	set("ul", func() { f.Problem.UL = s.uL })
	set("n", func() { f.Problem.N = s.n })
	set("tolerance", func() { f.Solver.Tolerance = s.tolerance })
	set("resonance-tolerance", func() { f.Solver.ResonanceTolerance = s.resonance })
	set("legacy-repeated", func() { f.Solver.LegacyRepeated = s.legacy })
	set("workers", func() { f.Solver.Workers = s.workers })
	set("out", func() { f.Plot.Output = s.out })
	set("backend", func() { f.Plot.Backend = s.backend })
	set("title", func() { f.Plot.Title = s.title })

	if err = f.Validate(); err != nil {
		return config.File{}, nil, err
	}

	return f, log, nil
}

func runPlot(stdout io.Writer, f config.File, log *slog.Logger) error {
	r, commit, err := newRenderer(f.Plot)
	if err != nil {
		return err
	}

	res, err := bvp.SolveAndPlot(f.ODEProblem(), r,
		bvp.WithSolverOptions(f.SolverOptions()...),
		bvp.WithLabels(chart.Labels{Title: f.Plot.Title}),
		bvp.WithLogger(log),
	)
	if err != nil {
		return err
	}
	if err = commit(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "delta=%g case=%s points=%d output=%s\n",
		res.Delta, res.Case, res.Grid.Len(), f.Plot.Output)

	return err
}

// newRenderer opens the configured backend. commit persists the output of
// backends that render in memory; it must only be called after a successful
// render so a failed solve never leaves a file behind.
func newRenderer(p config.Plot) (chart.Renderer, func() error, error) {
	size := chart.WithSize(p.Width, p.Height)

	switch p.Backend {
	case config.BackendGoChart:
		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(p.Output)), ".")
		if format == "" {
			format = "png"
		}
		var buf bytes.Buffer
		r, err := chart.NewGoChart(&buf, size, chart.WithFormat(format))
		if err != nil {
			return nil, nil, fmt.Errorf("cli: %s: %w", p.Output, err)
		}
		commit := func() error { return os.WriteFile(p.Output, buf.Bytes(), 0o644) }

		return r, commit, nil
	default:
		r, err := chart.NewGonum(p.Output, size)
		if err != nil {
			return nil, nil, err
		}

		return r, func() error { return nil }, nil
	}
}
