package cspline

import (
	"fmt"
	"math"

	"github.com/arcspline/planar/polyn"
)

// System is a tridiagonal linear system A·b = RHS. Row i reads
//
//	Lower[i]·b[i-1] + Diag[i]·b[i] + Upper[i]·b[i+1] = RHS[i]
//
// Lower[0] and Upper[n-1] are outside of A and ignored.
type System struct {
	Lower, Diag, Upper []float64
	RHS                []float64
}

// A Solver solves a System for b.
type Solver func(System) ([]float64, error)

var (
	// TridiagonalSolver solves a System by Gaussian elimination along the
	// three diagonals (Thomas algorithm), in O(n).
	TridiagonalSolver Solver = solveTridiagonal
	// EquationSolver expands a System to its dense n×n matrix and solves it
	// with the general linear equation solver of package polyn.
	EquationSolver Solver = solveEquations
)

// naturalSystem sets up the system for the quadratic coefficients of a natural
// cubic spline through values y, given segment widths h.
func naturalSystem(h, y []float64) System {
	n := len(y)
	sys := System{
		Lower: make([]float64, n),
		Diag:  make([]float64, n),
		Upper: make([]float64, n),
		RHS:   make([]float64, n),
	}
	sys.Diag[0], sys.Diag[n-1] = 1, 1 // natural boundary: f'' = 0 at both ends
	for i := 1; i < n-1; i++ {
		sys.Lower[i] = h[i-1]
		sys.Diag[i] = 2 * (h[i-1] + h[i])
		sys.Upper[i] = h[i]
		sys.RHS[i] = 3*(y[i+1]-y[i])/h[i] - 3*(y[i]-y[i-1])/h[i-1]
	}
	return sys
}

// N is the dimension of the system.
func (sys System) N() int {
	return len(sys.Diag)
}

func (sys System) validate() error {
	n := sys.N()
	if n == 0 || len(sys.Lower) != n || len(sys.Upper) != n || len(sys.RHS) != n {
		return fmt.Errorf("%w: diagonals %d/%d/%d, rhs %d", ErrMalformedSystem,
			len(sys.Lower), n, len(sys.Upper), len(sys.RHS))
	}
	return nil
}

// Matrix returns the dense n×n matrix A of the system, by rows.
func (sys System) Matrix() [][]float64 {
	n := sys.N()
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
		if i > 0 {
			A[i][i-1] = sys.Lower[i]
		}
		A[i][i] = sys.Diag[i]
		if i < n-1 {
			A[i][i+1] = sys.Upper[i]
		}
	}
	return A
}

func solveTridiagonal(sys System) ([]float64, error) {
	if err := sys.validate(); err != nil {
		return nil, err
	}
	n := sys.N()
	cp := make([]float64, n) // modified upper diagonal
	dp := make([]float64, n) // modified right-hand side
	for i := 0; i < n; i++ {
		denom := sys.Diag[i]
		if i > 0 {
			denom -= sys.Lower[i] * cp[i-1]
		}
		if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
			return nil, fmt.Errorf("%w: zero pivot in row %d", ErrSingularSystem, i)
		}
		upper := 0.0
		if i < n-1 {
			upper = sys.Upper[i]
		}
		cp[i] = upper / denom
		dp[i] = sys.RHS[i]
		if i > 0 {
			dp[i] -= sys.Lower[i] * dp[i-1]
		}
		dp[i] /= denom
	}
	b := make([]float64, n)
	b[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		b[i] = dp[i] - cp[i]*b[i+1]
	}
	tracer().Debugf("tridiagonal solve, n = %d", n)
	return b, nil
}

func solveEquations(sys System) ([]float64, error) {
	if err := sys.validate(); err != nil {
		return nil, err
	}
	b, err := polyn.SolveSystem(sys.Matrix(), sys.RHS)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}
	return b, nil
}
