// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CG implements the Conjugate Gradient iterative method for the symmetric
// positive definite system
//
//	A x = b
//
// where x holds the interior temperatures, A is the five-point discrete
// Laplacian applied by MatVec, and b collects the boundary temperatures.
// The matrix is never formed.
//
// The error norm is the max-abs norm of the residual r = b - A x. Because A
// has a unit diagonal, r equals the correction one Jacobi step would make,
// so the norm is comparable with that of the stationary methods.
type CG struct {
	resume int

	rho float64

	x  []float64
	r  []float64
	p  []float64
	ap []float64
}

// Name implements the Method interface.
func (*CG) Name() string { return "Conjugate Gradient" }

// Init implements the Method interface.
func (cg *CG) Init(ctx *Context) error {
	s := fivePoint(ctx.Grid)
	cg.x = ctx.Field.Interior(cg.x)
	cg.r = s.residual(cg.r, ctx.Field) // r_0 = b - A x_0
	cg.p = reuse(cg.p, len(cg.r))
	copy(cg.p, cg.r) // p_0 = r_0
	cg.ap = reuse(cg.ap, len(cg.r))

	cg.rho = floats.Dot(cg.r, cg.r)
	if len(cg.r) > 0 {
		ctx.ErrorNorm = floats.Norm(cg.r, math.Inf(1))
	}
	cg.resume = 1
	return nil
}

// Iterate implements the Method interface.
func (cg *CG) Iterate(ctx *Context) (Operation, error) {
	switch cg.resume {
	case 1:
		// Compute Ap_i.
		ctx.Src = cg.p
		ctx.Dst = cg.ap
		cg.resume = 2
		return MatVec, nil
	case 2:
		pAp := floats.Dot(cg.p, cg.ap)
		if math.Abs(pAp) < dlamchE*dlamchE {
			cg.resume = 0 // Calling Iterate again without Init will panic.
			return NoOperation, fmt.Errorf("%w: p·Ap = %v", ErrBreakdown, pAp)
		}
		alpha := cg.rho / pAp                 // α = ρ_i / (p_i · Ap_i)
		floats.AddScaled(cg.x, alpha, cg.p)   // x_i = x_{i-1} + α p_i
		floats.AddScaled(cg.r, -alpha, cg.ap) // r_i = r_{i-1} - α Ap_i
		ctx.Field.SetInterior(cg.x)

		ctx.Src = nil
		ctx.Dst = nil
		ctx.ErrorNorm = floats.Norm(cg.r, math.Inf(1))
		ctx.Converged = false
		cg.resume = 3
		return CheckErrorNorm, nil
	case 3:
		if ctx.Converged {
			cg.resume = 0
			return EndIteration, nil
		}
		if cg.rho < dlamchE*dlamchE {
			cg.resume = 0
			return NoOperation, fmt.Errorf("%w: r·r = %v", ErrBreakdown, cg.rho)
		}
		rho := floats.Dot(cg.r, cg.r)
		beta := rho / cg.rho                       // β = ρ_{i+1} / ρ_i
		floats.AddScaledTo(cg.p, cg.r, beta, cg.p) // p_{i+1} = r_i + β p_i
		cg.rho = rho
		cg.resume = 1
		return EndIteration, nil

	default:
		panic("heat: CG.Init not called")
	}
}

const dlamchE = 1.0 / (1 << 53)
