// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTolerance is the convergence threshold used when
	// Settings.Tolerance is zero.
	DefaultTolerance = 1e-4
	// DefaultMaxIterations is the iteration cap used when
	// Settings.MaxIterations is zero.
	DefaultMaxIterations = 10000
)

// Settings holds various settings for
// solving a Problem.
type Settings struct {
	// Tolerance is the convergence
	// threshold. A method has converged
	// when its error norm drops below
	// Tolerance.
	Tolerance float64

	// MaxIterations is the limit on the
	// number of iterations.
	MaxIterations int

	// InitialGuess is the value of every
	// interior point of the initial field.
	InitialGuess float64

	// NoHistory disables recording of
	// the error norm of every iteration.
	NoHistory bool

	// OnIteration, if not nil, is called
	// at the end of every iteration with
	// the current field. It must not
	// modify the field.
	OnIteration func(iteration int, f *Field, errorNorm float64)

	// Logger receives progress records.
	// Iterations are logged at debug
	// level. If it is nil, nothing is
	// logged.
	Logger *zap.Logger
}

// DefaultSettings returns the settings used for zero-valued fields.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func defaultSettings(s *Settings) error {
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	if !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, s.Tolerance)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterationLimit, s.MaxIterations)
	}
	return nil
}

// Result holds the result of a solve.
type Result struct {
	// Method is the name of the method
	// that produced the result.
	Method string
	// Field is the final iterate.
	Field *Field
	// History holds the error norm of
	// every iteration, in order.
	History []float64
	// Converged reports whether the error
	// norm dropped below the tolerance.
	// A false value with a nil error
	// means the iteration cap was hit.
	Converged bool
	// Stats holds the statistics of the
	// solve.
	Stats Stats
}

// Err returns nil if r has converged, and a *SolverError wrapping
// ErrNotConverged otherwise.
func (r Result) Err() error {
	if r.Converged {
		return nil
	}
	return &SolverError{
		Solver:    r.Method,
		Iteration: r.Stats.Iterations,
		ErrorNorm: r.Stats.ErrorNorm,
		Err:       ErrNotConverged,
	}
}

// Stats holds statistics about a solve.
type Stats struct {
	// Iterations is the number of
	// iterations done by Method.
	Iterations int
	// MatVec is the number of MatVec
	// operations commanded by Method.
	MatVec int
	// ErrorNorm is the final error norm.
	ErrorNorm float64
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration
	// of the solve.
	Runtime time.Duration
}

// Solve finds the steady-state temperature field of p with the given
// method.
//
// method must not be nil. Invalid grids, settings or method parameters are
// reported before any iteration is done. Reaching settings.MaxIterations is
// not an error: the returned Result has Converged set to false and holds the
// last iterate and the full history. A failure during the iteration is
// returned as a *SolverError together with the partial Result.
//
// settings provide means for adjusting the iterative process. Zero values of
// the fields mean default values.
func Solve(p Problem, method Method, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	if method == nil {
		panic("heat: nil method")
	}
	if err := p.Grid.Validate(); err != nil {
		return Result{}, err
	}
	if err := defaultSettings(&settings); err != nil {
		return Result{}, err
	}

	f, err := NewField(p, settings.InitialGuess)
	if err != nil {
		return Result{}, err
	}
	ctx := &Context{
		Grid:      p.Grid,
		Field:     f,
		ErrorNorm: math.Inf(1),
	}
	if err := method.Init(ctx); err != nil {
		return Result{}, err
	}

	res := Result{Method: method.Name()}
	if p.Grid.Interior() == 0 || ctx.ErrorNorm < settings.Tolerance {
		ctx.Converged = true
		if p.Grid.Interior() == 0 {
			ctx.ErrorNorm = 0
		}
		stats.ErrorNorm = ctx.ErrorNorm
	} else {
		err = iterate(newOperator(p.Grid), ctx, settings, method, &stats, &res.History)
	}

	stats.Runtime = time.Since(stats.StartTime)
	res.Field = ctx.Field
	res.Converged = ctx.Converged && err == nil
	res.Stats = stats

	log := settings.Logger.With(zap.String("method", res.Method))
	switch {
	case err != nil:
		log.Warn("solve failed", zap.Error(err))
	case res.Converged:
		log.Info("converged",
			zap.Int("iterations", stats.Iterations),
			zap.Float64("error_norm", stats.ErrorNorm),
			zap.Duration("runtime", stats.Runtime))
	default:
		log.Info("iteration limit reached",
			zap.Int("iterations", stats.Iterations),
			zap.Float64("error_norm", stats.ErrorNorm),
			zap.Float64("tolerance", settings.Tolerance))
	}
	return res, err
}

func iterate(a operator, ctx *Context, settings Settings, method Method, stats *Stats, history *[]float64) error {
	log := settings.Logger.With(zap.String("method", method.Name()))

	for {
		op, err := method.Iterate(ctx)
		if err != nil {
			return &SolverError{
				Solver:    method.Name(),
				Iteration: stats.Iterations,
				ErrorNorm: stats.ErrorNorm,
				Err:       err,
			}
		}

		switch op {
		case NoOperation:

		case MatVec:
			a.MatVec(ctx.Dst, ctx.Src)
			stats.MatVec++

		case CheckErrorNorm:
			ctx.Converged = ctx.ErrorNorm < settings.Tolerance

		case EndIteration:
			stats.Iterations++
			stats.ErrorNorm = ctx.ErrorNorm
			if !settings.NoHistory {
				*history = append(*history, ctx.ErrorNorm)
			}
			if settings.OnIteration != nil {
				settings.OnIteration(stats.Iterations, ctx.Field, ctx.ErrorNorm)
			}
			if ce := log.Check(zap.DebugLevel, "iteration"); ce != nil {
				ce.Write(zap.Int("iteration", stats.Iterations), zap.Float64("error_norm", ctx.ErrorNorm))
			}
			if ctx.Converged {
				return nil
			}
			if stats.Iterations == settings.MaxIterations {
				return nil
			}

		default:
			panic("heat: invalid operation")
		}
	}
}
