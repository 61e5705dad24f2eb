// Copyright ©2026 The heat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heat

// Run is the outcome of one method in a comparison.
type Run struct {
	// Label names the method in reports
	// and plots.
	Label  string
	Result Result
	// Err is the error returned by
	// Solve, if any. A run that hit the
	// iteration cap has a nil Err.
	Err error
}

// Methods returns the five methods in comparison order, with the given
// relaxation factors for the two SOR variants.
func Methods(omega5, omega9 float64) []Method {
	return []Method{
		&Jacobi{},
		&GaussSeidel{},
		&SOR{Omega: omega5},
		&SOR9{Omega: omega9},
		&CG{},
	}
}

// Labels are the report labels of the methods returned by Methods.
var Labels = []string{
	"Jacobi Iterative Method",
	"Gauss-Seidel Iterative Method",
	"Gauss-Seidel Iterative Method with 5-Point SOR",
	"Gauss-Seidel Iterative Method with 9-Point SOR",
	"Conjugate Gradient Method",
}

// Compare solves p with every method returned by Methods using identical
// settings. Each method starts from its own fresh field; a failure of one
// method is recorded in its Run and does not prevent the others from
// running.
func Compare(p Problem, settings Settings, omega5, omega9 float64) []Run {
	methods := Methods(omega5, omega9)
	runs := make([]Run, len(methods))
	for i, m := range methods {
		res, err := Solve(p, m, settings)
		runs[i] = Run{
			Label:  Labels[i],
			Result: res,
			Err:    err,
		}
	}
	return runs
}
