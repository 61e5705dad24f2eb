// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

// GaussSeidel implements the Gauss-Seidel iterative method with the
// five-point stencil. Points are updated in place in row-major order, bottom
// row first and left to right, so every update sees the newest values of
// the neighbours that precede it in the sweep.
//
// The error norm is the largest absolute change of a point during a sweep.
type GaussSeidel struct {
	relaxation
}

// Name implements the Method interface.
func (*GaussSeidel) Name() string { return "Gauss-Seidel" }

// Init implements the Method interface.
func (m *GaussSeidel) Init(ctx *Context) error {
	return m.setup(fivePoint(ctx.Grid), 1)
}

// Iterate implements the Method interface.
func (m *GaussSeidel) Iterate(ctx *Context) (Operation, error) {
	return m.step(ctx, "GaussSeidel")
}

// relaxation is the in-place sweep shared by Gauss-Seidel and the SOR
// methods. Gauss-Seidel is relaxation with ω = 1.
type relaxation struct {
	resume int

	s     stencil
	omega float64
}

func (r *relaxation) setup(s stencil, omega float64) error {
	if err := ValidateOmega(omega); err != nil {
		return err
	}
	r.s = s
	r.omega = omega
	r.resume = 1
	return nil
}

func (r *relaxation) step(ctx *Context, name string) (Operation, error) {
	switch r.resume {
	case 1:
		ctx.ErrorNorm = r.s.relax(ctx.Field, r.omega)
		ctx.Converged = false
		r.resume = 2
		return CheckErrorNorm, nil
	case 2:
		if ctx.Converged {
			r.resume = 0
			return EndIteration, nil
		}
		r.resume = 1
		return EndIteration, nil

	default:
		panic("heat: " + name + ".Init not called")
	}
}
