// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	heat "github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers"
)

func validConfig() Config {
	cfg := Default()
	cfg.Grid = GridConfig{Lx: 1, Ly: 1, Nx: 5, Ny: 5}
	cfg.Boundary = BoundaryConfig{Top: 100}
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1e-4, cfg.Threshold)
	assert.Equal(t, 10000, cfg.MaxIterations)
	assert.Equal(t, 1.97, cfg.Omega.FivePoint)
	assert.Equal(t, 1.97, cfg.Omega.NinePoint)
	assert.False(t, cfg.Omega.Optimize)
	assert.ErrorIs(t, cfg.Validate(), heat.ErrInvalidDimension, "default grid is empty")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.yaml")
	data := `
grid:
  lx: 2
  ly: 1
  nx: 21
  ny: 11
boundary:
  top: 100
  right: 50
threshold: 1e-6
omega:
  five_point: 1.8
plot: out.png
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Grid = GridConfig{Lx: 2, Ly: 1, Nx: 21, Ny: 11}
	want.Boundary = BoundaryConfig{Top: 100, Right: 50}
	want.Threshold = 1e-6
	want.Omega.FivePoint = 1.8
	want.Plot = "out.png"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [1, 2"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.Omega.Optimize = true
	path := filepath.Join(t.TempDir(), "heat.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cfg, got))
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"nx=0", func(c *Config) { c.Grid.Nx = 0 }, heat.ErrInvalidDimension},
		{"negative length", func(c *Config) { c.Grid.Ly = -1 }, heat.ErrInvalidDimension},
		{"zero threshold", func(c *Config) { c.Threshold = 0 }, heat.ErrInvalidTolerance},
		{"infinite threshold", func(c *Config) { c.Threshold = math.Inf(1) }, heat.ErrInvalidTolerance},
		{"no iterations", func(c *Config) { c.MaxIterations = 0 }, heat.ErrInvalidIterationLimit},
		{"ω=2", func(c *Config) { c.Omega.NinePoint = 2 }, heat.ErrInvalidRelaxationParameter},
		{"ω ignored when optimizing", func(c *Config) { c.Omega.FivePoint = 0; c.Omega.Optimize = true }, nil},
		{"bad search range", func(c *Config) { c.Omega.Optimize = true; c.Omega.Step = 0 }, heat.ErrInvalidSearchRange},
		{"search beyond ω=2", func(c *Config) { c.Omega.Optimize = true; c.Omega.Max = 1e18; c.Omega.Step = 1e-3 }, heat.ErrInvalidRelaxationParameter},
		{"search too fine", func(c *Config) { c.Omega.Optimize = true; c.Omega.Step = 1e-12 }, heat.ErrInvalidSearchRange},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.modify(&cfg)
			err := cfg.Validate()
			if test.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.want)
		})
	}
}

func TestProblemAndSettings(t *testing.T) {
	cfg := validConfig()
	p := cfg.Problem()
	assert.Equal(t, heat.Grid{Lx: 1, Ly: 1, Nx: 5, Ny: 5}, p.Grid)
	assert.Equal(t, heat.Boundary{Top: 100}, p.Boundary)

	s := cfg.Settings(nil)
	assert.Equal(t, 1e-4, s.Tolerance)
	assert.Equal(t, 10000, s.MaxIterations)
}

func TestPrompt(t *testing.T) {
	input := strings.Join([]string{
		"1.5",  // lx
		"abc",  // invalid
		"2",    // ly
		"0",    // nx below minimum
		"3.5",  // nx not an integer
		"11",   // nx
		"9",    // ny
		"",     // default threshold
		"0",    // bottom
		"nan",  // invalid
		"100",  // top
		" -5 ", // left
		"40",   // right
	}, "\n") + "\n"

	var out strings.Builder
	cfg, err := Prompt(strings.NewReader(input), &out)
	require.NoError(t, err)

	want := Default()
	want.Grid = GridConfig{Lx: 1.5, Ly: 2, Nx: 11, Ny: 9}
	want.Boundary = BoundaryConfig{Bottom: 0, Top: 100, Left: -5, Right: 40}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Prompt() mismatch (-want +got):\n%s", diff)
	}

	transcript := out.String()
	assert.Equal(t, 2, strings.Count(transcript, "Please enter a valid number."))
	assert.Equal(t, 1, strings.Count(transcript, "Please enter an integer >= 1."))
	assert.Equal(t, 1, strings.Count(transcript, "Please enter a valid integer."))
	assert.Contains(t, transcript, "press Enter for default 0.0001")
}

func TestPromptExplicitThreshold(t *testing.T) {
	input := "1\n1\n5\n5\n1e-6\n0\n0\n0\n0\n"
	cfg, err := Prompt(strings.NewReader(input), new(strings.Builder))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Threshold)
	require.NoError(t, cfg.Validate())
}

func TestPromptDecimalIntegers(t *testing.T) {
	input := "1\n1\n010\n08\n\n0\n0\n0\n0\n"
	var out strings.Builder
	cfg, err := Prompt(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, GridConfig{Lx: 1, Ly: 1, Nx: 10, Ny: 8}, cfg.Grid)
	assert.NotContains(t, out.String(), "Invalid input")
}

func TestPromptRejectsPrefixedIntegers(t *testing.T) {
	input := "1\n1\n0x10\n00\n6\n6\n\n0\n0\n0\n0\n"
	var out strings.Builder
	cfg, err := Prompt(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Grid.Nx)
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter a valid integer."))
	assert.Equal(t, 1, strings.Count(out.String(), "Please enter an integer >= 1."))
}

func TestPromptEOF(t *testing.T) {
	_, err := Prompt(strings.NewReader("1\n2\n"), new(strings.Builder))
	assert.ErrorContains(t, err, "unexpected EOF")
}
