// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders convergence histories of the heat solvers.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData indicates that none of the series has a positive error norm to
// draw on a logarithmic axis.
var ErrNoData = errors.New("chart: no data to plot")

// Default image size.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// Series is the error history of one solver.
type Series struct {
	Label   string
	History []float64
}

// Convergence saves a chart of iteration number against error norm, with a
// logarithmic error axis and one line per series, to path. The image format
// is taken from the file extension (png, svg, pdf, ...).
//
// Zero error norms cannot be shown on a logarithmic axis and are skipped.
func Convergence(path string, series []Series) error {
	p, err := newConvergencePlot(series)
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("chart: saving %s: %w", path, err)
	}
	return nil
}

func newConvergencePlot(series []Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Convergence of iterative methods"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Error norm"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, s := range series {
		pts := points(s.History)
		if len(pts) == 0 {
			continue
		}
		lines = append(lines, s.Label, pts)
	}
	if len(lines) == 0 {
		return nil, ErrNoData
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	return p, nil
}

func points(history []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(history))
	for i, v := range history {
		if !(v > 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
	}
	return pts
}
