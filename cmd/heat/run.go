// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	heat "github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers"
	"github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers/internal/chart"
	"github.com/Ky23r/2D-Steady-State-Heat-Equation-Solvers/internal/config"
)

func run(out io.Writer, cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := cfg.Problem()
	settings := cfg.Settings(logger)

	omega5, omega9 := cfg.Omega.FivePoint, cfg.Omega.NinePoint
	if cfg.Omega.Optimize {
		var err error
		omega5, err = optimize(out, p, settings, cfg.Omega, "5-point SOR",
			func(omega float64) heat.Method { return &heat.SOR{Omega: omega} })
		if err != nil {
			return err
		}
		omega9, err = optimize(out, p, settings, cfg.Omega, "9-point SOR",
			func(omega float64) heat.Method { return &heat.SOR9{Omega: omega} })
		if err != nil {
			return err
		}
	}

	logger.Info("comparing solvers",
		zap.Int("nx", p.Grid.Nx),
		zap.Int("ny", p.Grid.Ny),
		zap.Float64("threshold", settings.Tolerance),
		zap.Float64("omega5", omega5),
		zap.Float64("omega9", omega9))
	runs := heat.Compare(p, settings, omega5, omega9)
	fmt.Fprintln(out, summary(runs))

	for _, r := range runs {
		if r.Err != nil {
			logger.Error("solver failed", zap.String("method", r.Label), zap.Error(r.Err))
		}
	}

	if cfg.Plot != "" {
		series := make([]chart.Series, 0, len(runs))
		for _, r := range runs {
			series = append(series, chart.Series{Label: r.Label, History: r.Result.History})
		}
		switch err := chart.Convergence(cfg.Plot, series); {
		case errors.Is(err, chart.ErrNoData):
			logger.Warn("no convergence history to plot", zap.String("path", cfg.Plot))
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "Convergence chart written to %s\n", cfg.Plot)
		}
	}
	return nil
}

func optimize(out io.Writer, p heat.Problem, settings heat.Settings, oc config.OmegaConfig, name string, method func(float64) heat.Method) (float64, error) {
	search, err := heat.OptimizeOmega(p, method, settings, oc.Min, oc.Max, oc.Step)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintf(out, "Optimal ω for %s: %.4g (%d iterations)\n", name, search.Best, search.BestIterations)
	return search.Best, nil
}

// summary formats one table row per run.
func summary(runs []heat.Run) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := "converged"
		switch {
		case r.Err != nil:
			status = r.Err.Error()
		case !r.Result.Converged:
			status = "iteration limit reached"
		}
		rows = append(rows, []string{
			r.Label,
			strconv.Itoa(r.Result.Stats.Iterations),
			strconv.FormatFloat(r.Result.Stats.ErrorNorm, 'e', 3, 64),
			r.Result.Stats.Runtime.String(),
			status,
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Method", "Iterations", "Error norm", "Runtime", "Status").
		Rows(rows...).
		String()
}
