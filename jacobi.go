// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Jacobi implements the Jacobi iterative method. Every interior point of the
// new iterate is the five-point average of the previous iterate, so all
// points are updated simultaneously.
//
// The error norm is the largest absolute difference between two consecutive
// iterates.
type Jacobi struct {
	resume int

	s    stencil
	next *Field
}

// Name implements the Method interface.
func (*Jacobi) Name() string { return "Jacobi" }

// Init implements the Method interface.
func (m *Jacobi) Init(ctx *Context) error {
	m.s = fivePoint(ctx.Grid)
	if m.next == nil || len(m.next.Data) != len(ctx.Field.Data) {
		m.next = ctx.Field.Clone()
	} else {
		m.next.Nx, m.next.Ny = ctx.Field.Nx, ctx.Field.Ny
		copy(m.next.Data, ctx.Field.Data)
	}
	m.resume = 1
	return nil
}

// Iterate implements the Method interface.
func (m *Jacobi) Iterate(ctx *Context) (Operation, error) {
	switch m.resume {
	case 1:
		m.s.jacobi(m.next, ctx.Field)
		// Boundaries are equal, so the distance is taken over the interior.
		ctx.ErrorNorm = floats.Distance(m.next.Data, ctx.Field.Data, math.Inf(1))
		ctx.Field, m.next = m.next, ctx.Field
		ctx.Converged = false
		m.resume = 2
		return CheckErrorNorm, nil
	case 2:
		if ctx.Converged {
			m.resume = 0
			return EndIteration, nil
		}
		m.resume = 1
		return EndIteration, nil

	default:
		panic("heat: Jacobi.Init not called")
	}
}
