// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidSearchRange indicates an empty or malformed ω search range.
var ErrInvalidSearchRange = errors.New("heat: invalid relaxation search range")

// OmegaTrial is the outcome of one solve during an ω search.
type OmegaTrial struct {
	Omega      float64
	Iterations int
	Converged  bool
	ErrorNorm  float64
}

// OmegaSearch is the result of OptimizeOmega.
type OmegaSearch struct {
	// Best is the relaxation factor that
	// converged in the fewest iterations.
	Best float64
	// BestIterations is the iteration
	// count of Best.
	BestIterations int
	// Trace holds one trial per
	// candidate, in increasing ω.
	Trace []OmegaTrial
}

// MaxOmegaCandidates is the largest number of candidates OptimizeOmega
// accepts.
const MaxOmegaCandidates = 1 << 16

// ValidateOmegaRange returns the number of candidates in the search range
//
//	ω_k = min + k*step,  ω_k < max.
//
// It returns an error wrapping ErrInvalidSearchRange if the range is empty or
// holds more than MaxOmegaCandidates candidates, and one wrapping
// ErrInvalidRelaxationParameter if the first or last candidate is outside
// (0, 2).
func ValidateOmegaRange(min, max, step float64) (int, error) {
	if !(step > 0) || !(min < max) || math.IsInf(max-min, 0) {
		return 0, fmt.Errorf("%w: [%v, %v) step %v", ErrInvalidSearchRange, min, max, step)
	}
	n := math.Max(1, math.Ceil((max-min)/step-1e-9))
	for _, omega := range []float64{min, min + (n-1)*step} {
		if err := ValidateOmega(omega); err != nil {
			return 0, err
		}
	}
	if n > MaxOmegaCandidates {
		return 0, fmt.Errorf("%w: %v candidates in [%v, %v) step %v",
			ErrInvalidSearchRange, n, min, max, step)
	}
	return int(n), nil
}

// OptimizeOmega searches the candidates of the range [min, max) with the
// given step for the relaxation factor that solves p in the fewest
// iterations. method returns a fresh Method for a given ω, for example
//
//	func(ω float64) Method { return &SOR{Omega: ω} }
//
// The range is checked by ValidateOmegaRange before any solve. The trials
// run concurrently on at most GOMAXPROCS goroutines, so method must be safe
// for concurrent use. Trials that hit the iteration cap are recorded in the
// trace but never selected, and ties go to the smaller ω. If no candidate
// converges, OptimizeOmega returns the trace with an error wrapping
// ErrNotConverged.
func OptimizeOmega(p Problem, method func(omega float64) Method, settings Settings, min, max, step float64) (OmegaSearch, error) {
	n, err := ValidateOmegaRange(min, max, step)
	if err != nil {
		return OmegaSearch{}, err
	}
	candidates := make([]float64, n)
	if n == 1 {
		candidates[0] = min
	} else {
		floats.Span(candidates, min, min+float64(n-1)*step)
	}

	if settings.Logger == nil {
		settings.Logger = zap.NewNop()
	}
	log := settings.Logger
	trial := settings
	trial.NoHistory = true
	trial.OnIteration = nil
	trial.Logger = nil

	search := OmegaSearch{
		Best:  math.NaN(),
		Trace: make([]OmegaTrial, n),
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, omega := range candidates {
		k, omega := k, omega
		g.Go(func() error {
			res, err := Solve(p, method(omega), trial)
			if err != nil {
				return fmt.Errorf("heat: ω=%v: %w", omega, err)
			}
			log.Debug("relaxation trial",
				zap.Float64("omega", omega),
				zap.Int("iterations", res.Stats.Iterations),
				zap.Bool("converged", res.Converged))
			search.Trace[k] = OmegaTrial{
				Omega:      omega,
				Iterations: res.Stats.Iterations,
				Converged:  res.Converged,
				ErrorNorm:  res.Stats.ErrorNorm,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return OmegaSearch{Best: math.NaN()}, err
	}

	for _, t := range search.Trace {
		if t.Converged && (math.IsNaN(search.Best) || t.Iterations < search.BestIterations) {
			search.Best = t.Omega
			search.BestIterations = t.Iterations
		}
	}
	if math.IsNaN(search.Best) {
		return search, fmt.Errorf("%w: no ω in [%v, %v) converged", ErrNotConverged, min, max)
	}
	log.Debug("relaxation factor search",
		zap.Float64("best", search.Best),
		zap.Int("iterations", search.BestIterations),
		zap.Int("candidates", n))
	return search, nil
}
