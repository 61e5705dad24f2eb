// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

import (
	"fmt"
	"math"
)

// Grid describes a uniform rectangular mesh of Nx×Ny points covering
// [0, Lx]×[0, Ly].
type Grid struct {
	// Lx and Ly are the physical lengths
	// of the domain.
	Lx, Ly float64
	// Nx and Ny are the number of points
	// along each axis, boundaries
	// included.
	Nx, Ny int
}

// Dx returns the spacing between points along x. It is zero for a grid with
// a single point along x.
func (g Grid) Dx() float64 {
	if g.Nx <= 1 {
		return 0
	}
	return g.Lx / float64(g.Nx-1)
}

// Dy returns the spacing between points along y. It is zero for a grid with
// a single point along y.
func (g Grid) Dy() float64 {
	if g.Ny <= 1 {
		return 0
	}
	return g.Ly / float64(g.Ny-1)
}

// Interior returns the number of interior (unknown) points of the grid.
func (g Grid) Interior() int {
	if g.Nx <= 2 || g.Ny <= 2 {
		return 0
	}
	return (g.Nx - 2) * (g.Ny - 2)
}

// Validate reports whether g describes a usable grid. It returns an error
// wrapping ErrInvalidDimension otherwise.
func (g Grid) Validate() error {
	if g.Nx < 1 || g.Ny < 1 {
		return fmt.Errorf("%w: nx=%d, ny=%d", ErrInvalidDimension, g.Nx, g.Ny)
	}
	if !(g.Lx > 0) || math.IsInf(g.Lx, 0) || !(g.Ly > 0) || math.IsInf(g.Ly, 0) {
		return fmt.Errorf("%w: lx=%v, ly=%v", ErrInvalidDimension, g.Lx, g.Ly)
	}
	return nil
}

// Boundary holds the Dirichlet temperatures of the four edges.
type Boundary struct {
	Bottom, Top, Left, Right float64
}

// Problem is a steady-state heat conduction problem on a rectangle.
type Problem struct {
	Grid     Grid
	Boundary Boundary
}

// Field is a scalar temperature field on a Grid. The value at the point
// (i*dx, j*dy) is stored in Data[j*Nx+i], so rows run from the bottom edge
// (j = 0) to the top edge (j = Ny-1).
type Field struct {
	Nx, Ny int
	Data   []float64
}

// NewField returns a field for p with the boundary points set to their
// Dirichlet values and every interior point set to initial.
//
// The edges are assigned in the order bottom, top, left, right, and a later
// assignment overwrites an earlier one. The four corners therefore hold the
// Left and Right temperatures.
func NewField(p Problem, initial float64) (*Field, error) {
	if err := p.Grid.Validate(); err != nil {
		return nil, err
	}
	nx, ny := p.Grid.Nx, p.Grid.Ny
	f := &Field{
		Nx:   nx,
		Ny:   ny,
		Data: make([]float64, nx*ny),
	}
	for k := range f.Data {
		f.Data[k] = initial
	}
	b := p.Boundary
	for i := 0; i < nx; i++ {
		f.Set(i, 0, b.Bottom)
	}
	for i := 0; i < nx; i++ {
		f.Set(i, ny-1, b.Top)
	}
	for j := 0; j < ny; j++ {
		f.Set(0, j, b.Left)
	}
	for j := 0; j < ny; j++ {
		f.Set(nx-1, j, b.Right)
	}
	return f, nil
}

// At returns the value at the point (i, j).
func (f *Field) At(i, j int) float64 {
	f.check(i, j)
	return f.Data[j*f.Nx+i]
}

// Set sets the value at the point (i, j).
func (f *Field) Set(i, j int, v float64) {
	f.check(i, j)
	f.Data[j*f.Nx+i] = v
}

func (f *Field) check(i, j int) {
	if i < 0 || f.Nx <= i {
		panic("heat: column index out of range")
	}
	if j < 0 || f.Ny <= j {
		panic("heat: row index out of range")
	}
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	c := &Field{
		Nx:   f.Nx,
		Ny:   f.Ny,
		Data: make([]float64, len(f.Data)),
	}
	copy(c.Data, f.Data)
	return c
}

// Rows returns a copy of f as a slice of rows. Rows[j][i] is the value at
// the point (i, j).
func (f *Field) Rows() [][]float64 {
	rows := make([][]float64, f.Ny)
	for j := range rows {
		rows[j] = make([]float64, f.Nx)
		copy(rows[j], f.Data[j*f.Nx:(j+1)*f.Nx])
	}
	return rows
}

// Interior stores the interior values of f into dst in sweep order (bottom
// row first, left to right) and returns it. If dst is too short, a new slice
// is allocated.
func (f *Field) Interior(dst []float64) []float64 {
	mx, my := f.Nx-2, f.Ny-2
	if mx <= 0 || my <= 0 {
		return dst[:0]
	}
	dst = reuse(dst, mx*my)
	for j := 0; j < my; j++ {
		copy(dst[j*mx:(j+1)*mx], f.Data[(j+1)*f.Nx+1:(j+1)*f.Nx+1+mx])
	}
	return dst
}

// SetInterior overwrites the interior values of f with x, which must be in
// the order returned by Interior. Boundary values are left untouched.
func (f *Field) SetInterior(x []float64) {
	mx, my := f.Nx-2, f.Ny-2
	if mx <= 0 || my <= 0 {
		if len(x) != 0 {
			panic("heat: mismatched interior length")
		}
		return
	}
	if len(x) != mx*my {
		panic("heat: mismatched interior length")
	}
	for j := 0; j < my; j++ {
		copy(f.Data[(j+1)*f.Nx+1:(j+1)*f.Nx+1+mx], x[j*mx:(j+1)*mx])
	}
}

func reuse(v []float64, n int) []float64 {
	if cap(v) < n {
		return make([]float64, n)
	}
	return v[:n]
}
