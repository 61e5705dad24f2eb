// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heat provides iterative solvers for the steady-state heat
// conduction equation
//
//	∂²T/∂x² + ∂²T/∂y² = 0
//
// on a rectangle with Dirichlet boundary conditions.
//
// Five methods are available: Jacobi, Gauss-Seidel, Gauss-Seidel with
// successive over-relaxation on a five-point stencil (SOR), the same on a
// nine-point stencil (SOR9), and the conjugate gradient method (CG). All of
// them record one error norm per iteration so that their convergence can be
// compared.
package heat

// Operation specifies the type of operation.
type Operation uint64

// Operations commanded by Method.Iterate.
const (
	NoOperation Operation = 0

	// Multiply A*x where x is stored
	// in Context.Src and the result will
	// be stored in Context.Dst. A is the
	// five-point discrete Laplacian over
	// the interior unknowns.
	MatVec Operation = 1 << (iota - 1)

	// Check convergence using the
	// value in Context.ErrorNorm.
	// If convergence is detected,
	// Context.Converged will be set to
	// true before Method.Iterate is
	// called again.
	CheckErrorNorm

	// EndIteration indicates that Method
	// has finished what it considers to
	// be one iteration. Context.Field
	// must hold the current iterate. If
	// Context.Converged is true, the
	// iterative process is terminated.
	EndIteration
)

// Method is an iterative method that produces a sequence of temperature
// fields converging to the steady state of a Problem.
//
// Method uses a reverse-communication interface between the iterative
// algorithm and the caller. Method commands the caller to perform needed
// operations via Operation returned from Iterate. This keeps convergence
// checks, iteration counting and history recording in one place for all
// methods.
type Method interface {
	// Name returns a short human-readable name of the method.
	Name() string

	// Init validates the parameters of the method and initializes it
	// for solving the problem whose initial field is in ctx.Field.
	// Init may set ctx.ErrorNorm to the norm of the initial error if
	// the method can compute it without iterating.
	Init(ctx *Context) error

	// Iterate retrieves data from Context, updates it, and returns the
	// next operation. The caller must perform the Operation using data
	// in Context, and depending on the state call Iterate again.
	Iterate(ctx *Context) (Operation, error)
}

// Context mediates the communication between a Method and the caller. It must
// not be modified or accessed apart from the commanded Operations.
type Context struct {
	// Grid is the grid of the problem.
	Grid Grid
	// Field is the current iterate. Its
	// boundary values are never changed.
	// A Method may replace Field with
	// another field of the same shape.
	Field *Field
	// ErrorNorm is the max-abs norm of
	// the error measure of the method.
	// Method must update it when it
	// commands CheckErrorNorm.
	ErrorNorm float64
	// Converged indicates to Method that
	// ErrorNorm satisfies the stopping
	// criterion as a result of
	// CheckErrorNorm operation.
	Converged bool

	// Src and Dst are the source and
	// destination vectors for MatVec.
	Src, Dst []float64
}
