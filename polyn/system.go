package polyn

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDimensionMismatch indicates a matrix which is not square or does not
	// match the length of the right-hand side.
	ErrDimensionMismatch = errors.New("matrix dimensions do not match")
	// ErrUnderdetermined indicates a system which leaves variables unsolved.
	ErrUnderdetermined = errors.New("system of equations is underdetermined")
	// ErrIllConditioned indicates a system whose solution does not reproduce
	// the right-hand side to working precision.
	ErrIllConditioned = errors.New("system of equations is ill-conditioned")
)

const (
	refinements  = 4     // max. rounds of iterative refinement
	residualGoal = 1e-13 // relative residual to stop refining at
	residualMax  = 1e-10 // relative residual to accept a solution at
)

// SolveSystem solves the dense linear system A·x = rhs for x, where A is a
// square matrix given by rows.
//
// The equations are solved by a LinEqSolver, which treats coefficients
// below ε as zero. To make this independent of the magnitude of the input,
// every row is divided by its largest coefficient and the right-hand side is
// normalized to 1 before the equations are set up; the solution is scaled
// back afterwards and improved by iterative refinement. A solution which
// does not reproduce rhs to a relative residual of 1e-10 is rejected with
// ErrIllConditioned.
func SolveSystem(A [][]float64, rhs []float64) ([]float64, error) {
	n := len(rhs)
	if len(A) != n {
		return nil, fmt.Errorf("%w: %d rows for %d right-hand sides", ErrDimensionMismatch, len(A), n)
	}
	if n == 0 {
		return nil, ErrEmptyEquationList
	}
	M := make([][]float64, n) // row-equilibrated A
	r := make([]float64, n)   // rhs, scaled like M
	for i, row := range A {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrDimensionMismatch, i, len(row), n)
		}
		s := maxAbs(row)
		if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
			return nil, fmt.Errorf("%w: row %d has no usable coefficient", ErrUnderdetermined, i)
		}
		M[i] = make([]float64, n)
		for j, a := range row {
			M[i][j] = a / s
		}
		r[i] = rhs[i] / s
	}
	x, err := solveScaled(M, r)
	if err != nil {
		return nil, err
	}
	rnorm := maxAbs(r)
	var res float64
	for k := 0; ; k++ {
		d := residual(M, x, r)
		res = maxAbs(d)
		if norm := maxAbs(x) + rnorm; norm > 0 { // rows of M have norm 1
			res /= norm
		}
		if res <= residualGoal || k == refinements {
			break
		}
		dx, err := solveScaled(M, d)
		if err != nil {
			return nil, err
		}
		for i := range x {
			x[i] += dx[i]
		}
	}
	if !(res <= residualMax) || !allFinite(x) { // catches NaN
		return nil, fmt.Errorf("%w: relative residual %g", ErrIllConditioned, res)
	}
	T().Debugf("solved %d×%d system, relative residual %g", n, n, res)
	return x, nil
}

// solveScaled solves M·x = r after normalizing r to a largest entry of 1.
func solveScaled(M [][]float64, r []float64) ([]float64, error) {
	n := len(r)
	scale := maxAbs(r)
	if scale == 0 {
		scale = 1
	}
	eqs := make([]Polynomial, n)
	for i, row := range M {
		p := NewConstantPolynomial(-r[i] / scale)
		for j, a := range row {
			if a != 0 {
				p.SetTerm(j+1, a)
			}
		}
		eqs[i] = p.Zap()
	}
	leq := NewLinEqSolver()
	if err := leq.AddEqs(eqs); err != nil {
		return nil, err
	}
	x := make([]float64, n)
	for i := range x {
		v, ok := leq.Value(i + 1)
		if !ok {
			return nil, fmt.Errorf("%w: %s unsolved", ErrUnderdetermined, leq.VarString(i+1))
		}
		x[i] = v * scale
	}
	return x, nil
}

// residual returns r - M·x.
func residual(M [][]float64, x, r []float64) []float64 {
	d := make([]float64, len(r))
	for i, row := range M {
		sum := r[i]
		for j, a := range row {
			sum -= a * x[j]
		}
		d[i] = sum
	}
	return d
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, a := range v {
		if math.IsNaN(a) {
			return a
		}
		m = math.Max(m, math.Abs(a))
	}
	return m
}

func allFinite(v []float64) bool {
	for _, a := range v {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return false
		}
	}
	return true
}
