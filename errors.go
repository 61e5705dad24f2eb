// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates a grid with fewer than one point along
	// an axis, or a non-positive domain length.
	ErrInvalidDimension = errors.New("heat: invalid grid dimension")
	// ErrInvalidRelaxationParameter indicates an SOR relaxation factor
	// outside the open interval (0, 2).
	ErrInvalidRelaxationParameter = errors.New("heat: relaxation parameter outside (0, 2)")
	// ErrInvalidTolerance indicates a convergence threshold that is not a
	// positive finite number.
	ErrInvalidTolerance = errors.New("heat: invalid tolerance")
	// ErrInvalidIterationLimit indicates a negative iteration cap.
	ErrInvalidIterationLimit = errors.New("heat: invalid iteration limit")
	// ErrBreakdown indicates that a denominator of the conjugate gradient
	// recurrences vanished before convergence.
	ErrBreakdown = errors.New("heat: breakdown")
	// ErrNotConverged indicates that the iteration cap was reached before
	// the error norm dropped below the threshold.
	ErrNotConverged = errors.New("heat: iteration limit reached")
)

// SolverError describes the failure of a single solver run.
type SolverError struct {
	// Solver is the name of the method.
	Solver string
	// Iteration is the number of
	// completed iterations.
	Iteration int
	// ErrorNorm is the last recorded
	// error norm.
	ErrorNorm float64
	// Err is the underlying cause.
	Err error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("%s: after %d iterations (error norm %.6e): %v", e.Solver, e.Iteration, e.ErrorNorm, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }
