// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heat compares iterative solvers of the steady-state 2D heat
// equation on a rectangle.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers/internal/config"
)

// flags holds the command-line overrides of the configuration.
type flags struct {
	configPath  string
	saveConfig  string
	interactive bool
	verbose     bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	f := &flags{cfg: config.Default()}
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "heat",
		Short: "Compare iterative solvers of the steady-state 2D heat equation",
		Long: `heat solves the Laplace equation on a rectangle with fixed edge
temperatures using five iterative methods:

  - Jacobi
  - Gauss-Seidel
  - Gauss-Seidel with 5-point successive over-relaxation (SOR)
  - Gauss-Seidel with 9-point SOR
  - Conjugate Gradient

and reports how many iterations each needs to converge. The parameters come
from flags, a YAML file (--config) or interactive prompts (--interactive).

Example:
  heat --lx 1 --ly 1 --nx 41 --ny 41 --top 100 --plot convergence.png`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if f.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if f.saveConfig != "" {
				if err := cfg.Save(f.saveConfig); err != nil {
					return err
				}
			}
			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVar(&f.saveConfig, "save-config", "", "write the effective configuration to this YAML file")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for the domain, mesh, threshold and boundary temperatures")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every iteration")

	fs.Float64Var(&f.cfg.Grid.Lx, "lx", 0, "domain length in the x-direction")
	fs.Float64Var(&f.cfg.Grid.Ly, "ly", 0, "domain length in the y-direction")
	fs.IntVar(&f.cfg.Grid.Nx, "nx", 0, "number of grid points along x")
	fs.IntVar(&f.cfg.Grid.Ny, "ny", 0, "number of grid points along y")
	fs.Float64Var(&f.cfg.Threshold, "threshold", f.cfg.Threshold, "convergence threshold on the max-abs error norm")
	fs.IntVar(&f.cfg.MaxIterations, "max-iterations", f.cfg.MaxIterations, "iteration cap per solver")

	fs.Float64Var(&f.cfg.Boundary.Bottom, "bottom", 0, "temperature at the bottom boundary")
	fs.Float64Var(&f.cfg.Boundary.Top, "top", 0, "temperature at the top boundary")
	fs.Float64Var(&f.cfg.Boundary.Left, "left", 0, "temperature at the left boundary")
	fs.Float64Var(&f.cfg.Boundary.Right, "right", 0, "temperature at the right boundary")

	fs.Float64Var(&f.cfg.Omega.FivePoint, "omega5", f.cfg.Omega.FivePoint, "relaxation factor of 5-point SOR")
	fs.Float64Var(&f.cfg.Omega.NinePoint, "omega9", f.cfg.Omega.NinePoint, "relaxation factor of 9-point SOR")
	fs.BoolVar(&f.cfg.Omega.Optimize, "optimize-omega", false, "search for the relaxation factors instead of using --omega5 and --omega9")
	fs.Float64Var(&f.cfg.Omega.Min, "omega-min", f.cfg.Omega.Min, "lower end of the relaxation factor search")
	fs.Float64Var(&f.cfg.Omega.Max, "omega-max", f.cfg.Omega.Max, "upper end (exclusive) of the relaxation factor search")
	fs.Float64Var(&f.cfg.Omega.Step, "omega-step", f.cfg.Omega.Step, "step of the relaxation factor search")

	fs.StringVar(&f.cfg.Plot, "plot", "", "save a convergence chart to this file (png, svg, pdf)")

	return cmd
}

// resolve builds the effective configuration: defaults, then the YAML file,
// then the interactive answers, then every flag given explicitly.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	if f.interactive {
		answers, err := config.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return config.Config{}, err
		}
		cfg.Grid = answers.Grid
		cfg.Threshold = answers.Threshold
		cfg.Boundary = answers.Boundary
	}

	fs := cmd.Flags()
	override := func(name string, dst, src interface{}) {
		if !fs.Changed(name) {
			return
		}
		switch d := dst.(type) {
		case *float64:
			*d = *src.(*float64)
		case *int:
			*d = *src.(*int)
		case *bool:
			*d = *src.(*bool)
		case *string:
			*d = *src.(*string)
		}
	}
	override("lx", &cfg.Grid.Lx, &f.cfg.Grid.Lx)
	override("ly", &cfg.Grid.Ly, &f.cfg.Grid.Ly)
	override("nx", &cfg.Grid.Nx, &f.cfg.Grid.Nx)
	override("ny", &cfg.Grid.Ny, &f.cfg.Grid.Ny)
	override("threshold", &cfg.Threshold, &f.cfg.Threshold)
	override("max-iterations", &cfg.MaxIterations, &f.cfg.MaxIterations)
	override("bottom", &cfg.Boundary.Bottom, &f.cfg.Boundary.Bottom)
	override("top", &cfg.Boundary.Top, &f.cfg.Boundary.Top)
	override("left", &cfg.Boundary.Left, &f.cfg.Boundary.Left)
	override("right", &cfg.Boundary.Right, &f.cfg.Boundary.Right)
	override("omega5", &cfg.Omega.FivePoint, &f.cfg.Omega.FivePoint)
	override("omega9", &cfg.Omega.NinePoint, &f.cfg.Omega.NinePoint)
	override("optimize-omega", &cfg.Omega.Optimize, &f.cfg.Omega.Optimize)
	override("omega-min", &cfg.Omega.Min, &f.cfg.Omega.Min)
	override("omega-max", &cfg.Omega.Max, &f.cfg.Omega.Max)
	override("omega-step", &cfg.Omega.Step, &f.cfg.Omega.Step)
	override("plot", &cfg.Plot, &f.cfg.Plot)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
