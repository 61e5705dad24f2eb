// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	heat "github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers"
	"github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunFromFlags(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "convergence.png")
	out, err := execute(t, "",
		"--lx", "1", "--ly", "1", "--nx", "5", "--ny", "5",
		"--top", "100", "--plot", chart)
	require.NoError(t, err)

	for _, label := range heat.Labels {
		assert.Contains(t, out, label)
	}
	assert.Equal(t, 5, strings.Count(out, "converged"))
	assert.Contains(t, out, "Convergence chart written to "+chart)

	info, err := os.Stat(chart)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunInteractive(t *testing.T) {
	saved := filepath.Join(t.TempDir(), "effective.yaml")
	stdin := "1\n1\n6\n6\n\n0\n100\n0\n0\n"
	out, err := execute(t, stdin, "--interactive", "--omega5", "1.3", "--save-config", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the temperature at the right boundary: ")

	cfg, err := config.Load(saved)
	require.NoError(t, err)
	assert.Equal(t, config.GridConfig{Lx: 1, Ly: 1, Nx: 6, Ny: 6}, cfg.Grid)
	assert.Equal(t, 1.3, cfg.Omega.FivePoint)
	assert.Equal(t, config.DefaultOmega, cfg.Omega.NinePoint)
	assert.Equal(t, config.DefaultThreshold, cfg.Threshold)
}

func TestRunSkipsChartWithoutInterior(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "convergence.png")
	out, err := execute(t, "",
		"--lx", "1", "--ly", "1", "--nx", "2", "--ny", "2",
		"--top", "100", "--plot", chart)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "converged"))
	assert.NotContains(t, out, "Convergence chart written")

	_, err = os.Stat(chart)
	assert.True(t, os.IsNotExist(err))
}

func TestRunFromConfigFileWithOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grid: {lx: 1, ly: 2, nx: 0, ny: 9}
boundary: {left: 50}
max_iterations: 5000
`), 0644))

	_, err := execute(t, "", "--config", path)
	require.ErrorIs(t, err, heat.ErrInvalidDimension)

	saved := filepath.Join(dir, "effective.yaml")
	_, err = execute(t, "", "--config", path, "--nx", "7", "--save-config", saved)
	require.NoError(t, err)

	cfg, err := config.Load(saved)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Grid.Nx)
	assert.Equal(t, 9, cfg.Grid.Ny)
	assert.Equal(t, 5000, cfg.MaxIterations)
	assert.Equal(t, 50.0, cfg.Boundary.Left)
}

func TestRunRejectsInvalidOmega(t *testing.T) {
	_, err := execute(t, "", "--lx", "1", "--ly", "1", "--nx", "5", "--ny", "5", "--omega9", "2")
	require.ErrorIs(t, err, heat.ErrInvalidRelaxationParameter)
}

func TestRunOptimizeOmega(t *testing.T) {
	cfg := config.Default()
	cfg.Grid = config.GridConfig{Lx: 1, Ly: 1, Nx: 7, Ny: 7}
	cfg.Boundary = config.BoundaryConfig{Top: 100}
	cfg.Omega.Optimize = true
	cfg.Omega.Step = 0.05
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, zap.NewNop()))
	assert.Contains(t, out.String(), "Optimal ω for 5-point SOR")
	assert.Contains(t, out.String(), "Optimal ω for 9-point SOR")
}

func TestSummaryReportsFailures(t *testing.T) {
	p := heat.Problem{Grid: heat.Grid{Lx: 1, Ly: 1, Nx: 9, Ny: 9}, Boundary: heat.Boundary{Top: 1}}
	runs := heat.Compare(p, heat.Settings{MaxIterations: 2}, 1.5, 1.5)
	s := summary(runs)
	assert.Equal(t, 5, strings.Count(s, "iteration limit reached"))

	runs[0].Err = &heat.SolverError{Solver: "Jacobi", Iteration: 2, Err: heat.ErrBreakdown}
	assert.Contains(t, summary(runs), "heat: breakdown")
}
