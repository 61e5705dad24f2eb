// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config gathers the parameters of a solver comparison from a YAML
// file or from interactive prompts.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	heat "github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers"
)

// Config holds the parameters of a comparison run. It is passed by value
// and never modified once built.
type Config struct {
	// Domain and mesh
	Grid GridConfig `yaml:"grid"`

	// Dirichlet temperatures
	Boundary BoundaryConfig `yaml:"boundary"`

	// Convergence threshold on the max-abs error norm
	Threshold float64 `yaml:"threshold"`

	// Iteration cap per solver
	MaxIterations int `yaml:"max_iterations"`

	// Relaxation factors of the SOR solvers
	Omega OmegaConfig `yaml:"omega"`

	// Plot is the output path of the convergence chart. Empty disables
	// plotting.
	Plot string `yaml:"plot"`
}

// GridConfig configures the domain and mesh.
type GridConfig struct {
	Lx float64 `yaml:"lx"`
	Ly float64 `yaml:"ly"`
	Nx int     `yaml:"nx"`
	Ny int     `yaml:"ny"`
}

// BoundaryConfig configures the edge temperatures.
type BoundaryConfig struct {
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// OmegaConfig configures the relaxation factors. When Optimize is set, both
// factors are replaced by the result of a search over [Min, Max) in steps
// of Step.
type OmegaConfig struct {
	FivePoint float64 `yaml:"five_point"`
	NinePoint float64 `yaml:"nine_point"`
	Optimize  bool    `yaml:"optimize"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Step      float64 `yaml:"step"`
}

// Defaults.
const (
	DefaultThreshold = 1e-4
	DefaultOmega     = 1.97
	DefaultOmegaMin  = 1
	DefaultOmegaMax  = 2
	DefaultOmegaStep = 0.01
)

// Default returns the default configuration. Its grid is left empty and
// must be filled in before use.
func Default() Config {
	return Config{
		Threshold:     DefaultThreshold,
		MaxIterations: heat.DefaultMaxIterations,
		Omega: OmegaConfig{
			FivePoint: DefaultOmega,
			NinePoint: DefaultOmega,
			Min:       DefaultOmegaMin,
			Max:       DefaultOmegaMax,
			Step:      DefaultOmegaStep,
		},
	}
}

// Load reads a YAML configuration from path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes c to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports every problem with c.
func (c Config) Validate() error {
	var errs []error
	if err := c.Problem().Grid.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !(c.Threshold > 0) || math.IsInf(c.Threshold, 1) {
		errs = append(errs, fmt.Errorf("%w: %v", heat.ErrInvalidTolerance, c.Threshold))
	}
	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", heat.ErrInvalidIterationLimit, c.MaxIterations))
	}
	if c.Omega.Optimize {
		if _, err := heat.ValidateOmegaRange(c.Omega.Min, c.Omega.Max, c.Omega.Step); err != nil {
			errs = append(errs, err)
		}
	} else {
		for _, omega := range []float64{c.Omega.FivePoint, c.Omega.NinePoint} {
			if err := heat.ValidateOmega(omega); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Problem returns the heat problem described by c.
func (c Config) Problem() heat.Problem {
	return heat.Problem{
		Grid: heat.Grid{
			Lx: c.Grid.Lx,
			Ly: c.Grid.Ly,
			Nx: c.Grid.Nx,
			Ny: c.Grid.Ny,
		},
		Boundary: heat.Boundary{
			Bottom: c.Boundary.Bottom,
			Top:    c.Boundary.Top,
			Left:   c.Boundary.Left,
			Right:  c.Boundary.Right,
		},
	}
}

// Settings returns the solver settings described by c, logging to logger.
func (c Config) Settings(logger *zap.Logger) heat.Settings {
	return heat.Settings{
		Tolerance:     c.Threshold,
		MaxIterations: c.MaxIterations,
		Logger:        logger,
	}
}
