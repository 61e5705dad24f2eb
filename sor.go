// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import "fmt"

// ValidateOmega returns an error wrapping ErrInvalidRelaxationParameter if
// omega is not in the open interval (0, 2), outside of which successive
// over-relaxation is not guaranteed to converge.
func ValidateOmega(omega float64) error {
	if !(0 < omega && omega < 2) {
		return fmt.Errorf("%w: ω=%v", ErrInvalidRelaxationParameter, omega)
	}
	return nil
}

// SOR implements Gauss-Seidel with successive over-relaxation on the
// five-point stencil. Each point is moved from its old value towards the
// Gauss-Seidel value by the factor Omega:
//
//	new = old + Omega*(gs - old).
//
// With Omega = 1 the iterates are identical to those of GaussSeidel.
type SOR struct {
	// Omega is the relaxation factor.
	// It must be in (0, 2).
	Omega float64

	relaxation
}

// Name implements the Method interface.
func (*SOR) Name() string { return "SOR (5-point)" }

// Init implements the Method interface.
func (m *SOR) Init(ctx *Context) error {
	return m.setup(fivePoint(ctx.Grid), m.Omega)
}

// Iterate implements the Method interface.
func (m *SOR) Iterate(ctx *Context) (Operation, error) {
	return m.step(ctx, "SOR")
}

// SOR9 implements Gauss-Seidel with successive over-relaxation on the compact
// nine-point stencil, which includes the diagonal neighbours. For dx = dy
// the Gauss-Seidel value is
//
//	gs = (4*(T_w + T_e + T_s + T_n) + T_sw + T_se + T_nw + T_ne) / 20.
//
// The nine-point stencil approximates the Laplacian to fourth order, so its
// converged field differs from that of the five-point methods by the
// discretization error. Points next to a corner read the corner value,
// which is the Left or Right temperature.
type SOR9 struct {
	// Omega is the relaxation factor.
	// It must be in (0, 2).
	Omega float64

	relaxation
}

// Name implements the Method interface.
func (*SOR9) Name() string { return "SOR (9-point)" }

// Init implements the Method interface.
func (m *SOR9) Init(ctx *Context) error {
	return m.setup(ninePoint(ctx.Grid), m.Omega)
}

// Iterate implements the Method interface.
func (m *SOR9) Iterate(ctx *Context) (Operation, error) {
	return m.step(ctx, "SOR9")
}
