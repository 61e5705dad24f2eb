// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import "math"

// stencil is a discrete Laplacian written as a weighted average of the
// neighbours of a point. The weights of all neighbours sum to one, so a
// point is in equilibrium exactly when it equals the average.
type stencil struct {
	x    float64 // West and east neighbours.
	y    float64 // South and north neighbours.
	diag float64 // Each of the four diagonal neighbours.
}

// fivePoint returns the standard second-order stencil
//
//	T = (dy²(T_w + T_e) + dx²(T_s + T_n)) / 2(dx² + dy²),
//
// which is the plain four-neighbour average when dx = dy.
func fivePoint(g Grid) stencil {
	dx2, dy2 := g.Dx()*g.Dx(), g.Dy()*g.Dy()
	d := 2 * (dx2 + dy2)
	return stencil{
		x: dy2 / d,
		y: dx2 / d,
	}
}

// ninePoint returns the compact fourth-order ("Mehrstellen") stencil
//
//	T = ((5dy²-dx²)/6 (T_w + T_e) + (5dx²-dy²)/6 (T_s + T_n)
//	     + (dx²+dy²)/12 (T_sw + T_se + T_nw + T_ne)) / (5/3)(dx² + dy²),
//
// which is (4·Σaxis + Σdiagonal)/20 when dx = dy.
func ninePoint(g Grid) stencil {
	dx2, dy2 := g.Dx()*g.Dx(), g.Dy()*g.Dy()
	c := 5 * (dx2 + dy2) / 3
	return stencil{
		x:    (5*dy2 - dx2) / 6 / c,
		y:    (5*dx2 - dy2) / 6 / c,
		diag: (dx2 + dy2) / 12 / c,
	}
}

// at returns the weighted neighbour average at the interior point (i, j).
func (s stencil) at(f *Field, i, j int) float64 {
	d, nx := f.Data, f.Nx
	k := j*nx + i
	v := s.x*(d[k-1]+d[k+1]) + s.y*(d[k-nx]+d[k+nx])
	if s.diag != 0 {
		v += s.diag * (d[k-nx-1] + d[k-nx+1] + d[k+nx-1] + d[k+nx+1])
	}
	return v
}

// jacobi sets every interior point of dst to the stencil average of src.
// dst and src must not be the same field.
func (s stencil) jacobi(dst, src *Field) {
	for j := 1; j < src.Ny-1; j++ {
		for i := 1; i < src.Nx-1; i++ {
			dst.Data[j*src.Nx+i] = s.at(src, i, j)
		}
	}
}

// relax performs one in-place sweep over the interior of f in row-major
// order, bottom row first and left to right within a row, replacing each
// value by
//
//	old + ω(average - old)
//
// where the average already sees the points updated earlier in the sweep.
// It returns the largest absolute change.
func (s stencil) relax(f *Field, omega float64) float64 {
	var change float64
	for j := 1; j < f.Ny-1; j++ {
		for i := 1; i < f.Nx-1; i++ {
			k := j*f.Nx + i
			old := f.Data[k]
			v := old + omega*(s.at(f, i, j)-old)
			f.Data[k] = v
			change = math.Max(change, math.Abs(v-old))
		}
	}
	return change
}

// residual stores into dst the equilibrium defect average - T of every
// interior point of f, in the order of Field.Interior, and returns it.
func (s stencil) residual(dst []float64, f *Field) []float64 {
	mx, my := f.Nx-2, f.Ny-2
	if mx <= 0 || my <= 0 {
		return dst[:0]
	}
	dst = reuse(dst, mx*my)
	for j := 1; j <= my; j++ {
		for i := 1; i <= mx; i++ {
			dst[(j-1)*mx+i-1] = s.at(f, i, j) - f.Data[j*f.Nx+i]
		}
	}
	return dst
}

// operator is the matrix-free form of the linear system A x = b solved by
// the stationary methods with a five-point stencil: x holds the interior
// unknowns in sweep order, and
//
//	(A x)_k = x_k - Σ w_n x_n
//
// sums over the interior neighbours n of point k only. Boundary neighbours
// contribute to b instead. A is symmetric positive definite.
type operator struct {
	mx, my int
	s      stencil
}

func newOperator(g Grid) operator {
	return operator{
		mx: g.Nx - 2,
		my: g.Ny - 2,
		s:  fivePoint(g),
	}
}

// MatVec computes A*x and stores the result into dst.
func (a operator) MatVec(dst, x []float64) {
	mx, my := a.mx, a.my
	if len(x) != mx*my || len(dst) != mx*my {
		panic("heat: dimension mismatch")
	}
	for j := 0; j < my; j++ {
		for i := 0; i < mx; i++ {
			k := j*mx + i
			var h, v float64
			if i > 0 {
				h += x[k-1]
			}
			if i < mx-1 {
				h += x[k+1]
			}
			if j > 0 {
				v += x[k-mx]
			}
			if j < my-1 {
				v += x[k+mx]
			}
			dst[k] = x[k] - a.s.x*h - a.s.y*v
		}
	}
}
