package cspline

import (
	"fmt"
	"math"
	"sort"
)

// Spline is a natural cubic spline y(t) through a set of knots
// (t.i, y.i), t strictly increasing. It is immutable.
type Spline struct {
	t []float64 // knots
	a []float64 // cubic coefficients, one per segment
	b []float64 // quadratic coefficients, one per knot
	c []float64 // linear coefficients, one per segment
	d []float64 // constant coefficients = y, one per knot
}

// NewSpline fits a natural cubic spline through values y at knots t.
// t and y must have the same length of at least 2, t must be strictly
// increasing and all values must be finite. Violations are reported as
// errors wrapping ErrInvalidConfig.
//
// Option WithSolver selects the solver for the coefficient system.
func NewSpline(t, y []float64, opts ...Option) (*Spline, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newSpline(t, y, cfg)
}

// MustNewSpline is like NewSpline, but panics on configuration errors.
func MustNewSpline(t, y []float64, opts ...Option) *Spline {
	s, err := NewSpline(t, y, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newSpline(t, y []float64, cfg config) (*Spline, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf("%w: %d knots, %d values", ErrLengthMismatch, len(t), len(y))
	}
	n := len(t)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrTooFewKnots, n)
	}
	if err := checkFinite(t, "t"); err != nil {
		return nil, err
	}
	if err := checkFinite(y, "y"); err != nil {
		return nil, err
	}
	h := make([]float64, n-1) // segment widths
	for i := range h {
		h[i] = t[i+1] - t[i]
		if h[i] == 0 {
			return nil, fmt.Errorf("%w between knots %d and %d (t = %g)", ErrDegenerateSegment, i, i+1, t[i])
		} else if h[i] < 0 {
			return nil, fmt.Errorf("%w: t[%d] = %g > t[%d] = %g", ErrUnorderedKnots, i, t[i], i+1, t[i+1])
		}
	}
	spl := &Spline{
		t: clone(t),
		d: clone(y),
		a: make([]float64, n-1),
		c: make([]float64, n-1),
	}
	b, err := cfg.solver(naturalSystem(h, y))
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: solver returned %d coefficients for %d knots", ErrMalformedSystem, len(b), n)
	}
	spl.b = b
	for i := 0; i < n-1; i++ {
		spl.c[i] = (y[i+1]-y[i])/h[i] - h[i]*(b[i+1]+2*b[i])/3
		spl.a[i] = (b[i+1] - b[i]) / (3 * h[i])
		if !finite(spl.a[i], spl.b[i], spl.c[i]) {
			return nil, fmt.Errorf("%w: non-finite coefficients in segment %d (width %g)",
				ErrDegenerateSegment, i, h[i])
		}
	}
	tracer().Debugf("fitted spline with %d segments over [%g,%g]", n-1, t[0], t[n-1])
	return spl, nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// N returns the number of knots.
func (spl *Spline) N() int {
	return len(spl.t)
}

// Segments returns the number of cubic segments, N()-1.
func (spl *Spline) Segments() int {
	return len(spl.t) - 1
}

// Domain returns the parameter range [t.0, t.n-1] of the spline.
func (spl *Spline) Domain() (float64, float64) {
	return spl.t[0], spl.t[len(spl.t)-1]
}

// Knots returns a copy of the knot sequence.
func (spl *Spline) Knots() []float64 {
	return clone(spl.t)
}

// Values returns a copy of the interpolated values at the knots.
func (spl *Spline) Values() []float64 {
	return clone(spl.d)
}

// Coefficients returns the coefficients of segment i, 0 ≤ i < Segments(),
// such that y(t) = a·dt³ + b·dt² + c·dt + d with dt = t - t.i.
func (spl *Spline) Coefficients(i int) (a, b, c, d float64) {
	return spl.a[i], spl.b[i], spl.c[i], spl.d[i]
}

// Position returns y(t). If t lies outside the domain, ok is false.
func (spl *Spline) Position(t float64) (y float64, ok bool) {
	i, dt, ok := spl.locate(t)
	if !ok {
		return 0, false
	}
	return spl.a[i]*dt*dt*dt + spl.b[i]*dt*dt + spl.c[i]*dt + spl.d[i], true
}

// FirstDerivative returns y'(t). If t lies outside the domain, ok is false.
func (spl *Spline) FirstDerivative(t float64) (dy float64, ok bool) {
	i, dt, ok := spl.locate(t)
	if !ok {
		return 0, false
	}
	return 3*spl.a[i]*dt*dt + 2*spl.b[i]*dt + spl.c[i], true
}

// SecondDerivative returns the second derivative of y at t. If t lies
// outside the domain, ok is false.
func (spl *Spline) SecondDerivative(t float64) (ddy float64, ok bool) {
	i, dt, ok := spl.locate(t)
	if !ok {
		return 0, false
	}
	return 6*spl.a[i]*dt + 2*spl.b[i], true
}

// locate finds the segment containing t, i.e. the greatest i with t.i ≤ t,
// and the offset of t within it. t = t.n-1 belongs to the last segment.
func (spl *Spline) locate(t float64) (int, float64, bool) {
	n := len(spl.t)
	if !(t >= spl.t[0] && t <= spl.t[n-1]) { // catches NaN, too
		return 0, 0, false
	}
	i := sort.Search(n, func(k int) bool { return spl.t[k] > t }) - 1
	if i > n-2 {
		i = n - 2
	}
	return i, t - spl.t[i], true
}
