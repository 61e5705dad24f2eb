// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"math"
	"testing"
)

func TestStencilWeights(t *testing.T) {
	for _, g := range []Grid{
		{Lx: 1, Ly: 1, Nx: 5, Ny: 5},
		{Lx: 2, Ly: 1, Nx: 9, Ny: 6},
		{Lx: 1, Ly: 1.5, Nx: 4, Ny: 7},
	} {
		for name, s := range map[string]stencil{
			"five-point": fivePoint(g),
			"nine-point": ninePoint(g),
		} {
			sum := 2*s.x + 2*s.y + 4*s.diag
			if math.Abs(sum-1) > 1e-14 {
				t.Errorf("Case %dx%d %v: weights sum to %v", g.Nx, g.Ny, name, sum)
			}
		}
	}

	square := Grid{Lx: 1, Ly: 1, Nx: 5, Ny: 5}
	five := fivePoint(square)
	if five.x != 0.25 || five.y != 0.25 || five.diag != 0 {
		t.Errorf("unexpected five-point weights %+v", five)
	}
	nine := ninePoint(square)
	if math.Abs(nine.x-0.2) > 1e-15 || math.Abs(nine.y-0.2) > 1e-15 || math.Abs(nine.diag-0.05) > 1e-15 {
		t.Errorf("unexpected nine-point weights %+v", nine)
	}
}

func TestNinePointExactForHarmonicQuartic(t *testing.T) {
	// T = Re (x+iy)⁴ is harmonic, and the nine-point stencil reproduces
	// harmonic polynomials of degree four exactly.
	g := Grid{Lx: 1, Ly: 1.2, Nx: 6, Ny: 5}
	f := &Field{Nx: g.Nx, Ny: g.Ny, Data: make([]float64, g.Nx*g.Ny)}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			x, y := float64(i)*g.Dx(), float64(j)*g.Dy()
			f.Set(i, j, x*x*x*x-6*x*x*y*y+y*y*y*y)
		}
	}
	s := ninePoint(g)
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			if d := s.at(f, i, j) - f.At(i, j); math.Abs(d) > 1e-12 {
				t.Errorf("defect %v at (%d,%d)", d, i, j)
			}
		}
	}
}

func TestRelaxSweepOrder(t *testing.T) {
	// With a single interior row the sweep must read the value it has just
	// written to the left neighbour.
	p := Problem{Grid: Grid{Lx: 1, Ly: 1, Nx: 5, Ny: 3}, Boundary: Boundary{Left: 8}}
	f, err := NewField(p, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	s := stencil{x: 0.5}
	change := s.relax(f, 1)
	want := []float64{4, 2, 1}
	for i, v := range want {
		if got := f.At(i+1, 1); got != v {
			t.Errorf("point %d = %v, want %v", i+1, got, v)
		}
	}
	if change != 4 {
		t.Errorf("change = %v, want 4", change)
	}
}
