package cspline

import (
	"fmt"
	"math"
	"strings"

	"github.com/arcspline/planar"
	"github.com/arcspline/planar/polygon"
)

// Path is a smooth 2D path through a sequence of waypoints, parameterized
// by arc length. It owns two Splines, x(s) and y(s), fitted over the
// cumulative chord lengths of the waypoints, and the results of sampling
// them at a fixed step. A Path is immutable; all accessors return copies.
type Path struct {
	x, y   []float64 // input waypoints
	knots  []float64 // cumulative arc length at each waypoint
	sx, sy *Spline
	step   float64
	samples
}

// NewPath fits a path through the waypoints (x.i, y.i). x and y must have
// the same length of at least 2, consecutive waypoints must be distinct
// (any positive distance will do, there is no absolute lower limit) and
// the sampling step (option WithStep, default DefaultStep) must be positive.
// Violations are reported as errors wrapping ErrInvalidConfig.
func NewPath(x, y []float64, opts ...Option) (*Path, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		tracer().Errorf("path rejected: %v", err)
		return nil, err
	}
	path, err := newPath(x, y, cfg)
	if err != nil {
		tracer().Errorf("path rejected: %v", err)
		return nil, err
	}
	tracer().Infof("path through %d waypoints, length %.4g, %d samples at step %g",
		len(path.x), path.Length(), path.Len(), path.step)
	return path, nil
}

// PathFromPairs fits a path through a sequence of waypoints. See NewPath.
func PathFromPairs(pts []planar.Pair, opts ...Option) (*Path, error) {
	x, y := planar.Unzip(pts)
	return NewPath(x, y, opts...)
}

// MustNewPath is like NewPath, but panics on configuration errors.
func MustNewPath(x, y []float64, opts ...Option) *Path {
	path, err := NewPath(x, y, opts...)
	if err != nil {
		panic(err)
	}
	return path
}

func newPath(x, y []float64, cfg config) (*Path, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x-values, %d y-values", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints, got %d", ErrTooFewKnots, len(x))
	}
	if err := checkFinite(x, "x"); err != nil {
		return nil, err
	}
	if err := checkFinite(y, "y"); err != nil {
		return nil, err
	}
	knots, err := arcLengthKnots(x, y)
	if err != nil {
		return nil, err
	}
	path := &Path{
		x:     clone(x),
		y:     clone(y),
		knots: knots,
		step:  cfg.step,
	}
	if path.sx, err = newSpline(knots, x, cfg); err != nil {
		return nil, fmt.Errorf("x-spline: %w", err)
	}
	if path.sy, err = newSpline(knots, y, cfg); err != nil {
		return nil, fmt.Errorf("y-spline: %w", err)
	}
	if path.samples, err = sweep(path); err != nil {
		return nil, err
	}
	return path, nil
}

// arcLengthKnots returns the cumulative Euclidean distances along the
// waypoints, starting at 0. Consecutive waypoints must be distinct, and
// their distance must not vanish against the arc length accumulated so far.
func arcLengthKnots(x, y []float64) ([]float64, error) {
	knots := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		d := math.Hypot(x[i]-x[i-1], y[i]-y[i-1])
		knots[i] = knots[i-1] + d
		if !(knots[i] > knots[i-1]) {
			return nil, fmt.Errorf("%w: waypoints %d and %d coincide at (%g,%g)",
				ErrDegenerateSegment, i-1, i, x[i], y[i])
		}
	}
	return knots, nil
}

// --- Evaluation ------------------------------------------------------------

// Position returns the point of the path at arc length s.
// If s lies outside the knot range, ok is false.
func (path *Path) Position(s float64) (planar.Pair, bool) {
	x, okx := path.sx.Position(s)
	y, oky := path.sy.Position(s)
	if !okx || !oky {
		return planar.Origin, false
	}
	return planar.P(x, y), true
}

// Tangent returns the first derivative (x'(s), y'(s)) of the path at s.
// If s lies outside the knot range, ok is false.
func (path *Path) Tangent(s float64) (planar.Pair, bool) {
	x1, okx := path.sx.FirstDerivative(s)
	y1, oky := path.sy.FirstDerivative(s)
	if !okx || !oky {
		return planar.Origin, false
	}
	return planar.P(x1, y1), true
}

// CurvatureAt returns the signed curvature of the path at s, positive for
// counter-clockwise turns. If s lies outside the knot range, ok is false.
// Where the tangent vanishes the curvature is NaN, with ok true.
func (path *Path) CurvatureAt(s float64) (float64, bool) {
	x1, okx1 := path.sx.FirstDerivative(s)
	x2, okx2 := path.sx.SecondDerivative(s)
	y1, oky1 := path.sy.FirstDerivative(s)
	y2, oky2 := path.sy.SecondDerivative(s)
	if !(okx1 && okx2 && oky1 && oky2) {
		return 0, false
	}
	return curvature(x1, x2, y1, y2), true
}

// YawAt returns the heading of the path's tangent at s in radians, within
// (-π, π]. If s lies outside the knot range, ok is false.
func (path *Path) YawAt(s float64) (float64, bool) {
	tangent, ok := path.Tangent(s)
	if !ok {
		return 0, false
	}
	return yaw(tangent.X(), tangent.Y()), true
}

func curvature(x1, x2, y1, y2 float64) float64 {
	return (y2*x1 - x2*y1) / math.Pow(x1*x1+y1*y1, 1.5)
}

func yaw(x1, y1 float64) float64 {
	phi := math.Atan2(y1, x1)
	if phi == -math.Pi {
		phi = math.Pi
	}
	return phi
}

// --- Accessors -------------------------------------------------------------

// X returns a copy of the x-coordinates of the waypoints.
func (path *Path) X() []float64 {
	return clone(path.x)
}

// Y returns a copy of the y-coordinates of the waypoints.
func (path *Path) Y() []float64 {
	return clone(path.y)
}

// Input returns the waypoints.
func (path *Path) Input() []planar.Pair {
	return planar.Zip(path.x, path.y)
}

// Knots returns a copy of the arc length knots; Knots()[0] is 0.
func (path *Path) Knots() []float64 {
	return clone(path.knots)
}

// Length returns the arc length of the waypoint chain, i.e. the last knot.
func (path *Path) Length() float64 {
	return path.knots[len(path.knots)-1]
}

// Step returns the sampling step.
func (path *Path) Step() float64 {
	return path.step
}

// SplineX returns the spline x(s).
func (path *Path) SplineX() *Spline {
	return path.sx
}

// SplineY returns the spline y(s).
func (path *Path) SplineY() *Spline {
	return path.sy
}

// Len returns the number of samples.
func (path *Path) Len() int {
	return len(path.params)
}

// Params returns the sampled arc length parameters. Positions, Curvature
// and Yaw are indexed identically.
func (path *Path) Params() []float64 {
	return clone(path.params)
}

// Positions returns the sampled positions.
func (path *Path) Positions() []planar.Pair {
	return append([]planar.Pair(nil), path.positions...)
}

// Curvature returns the sampled signed curvatures. At a sample where the
// path is stationary, i.e. both first derivatives vanish, the curvature is
// undefined and reported as NaN.
func (path *Path) Curvature() []float64 {
	return clone(path.curvature)
}

// Yaw returns the sampled tangent headings in radians.
func (path *Path) Yaw() []float64 {
	return clone(path.yaw)
}

// Transformed returns a new path through the waypoints of path, mapped by
// the affine transformation at. The sampling step and solver are kept from
// opts, not from path; the step defaults to path.Step().
func (path *Path) Transformed(at planar.AT, opts ...Option) (*Path, error) {
	pts := at.TransformAll(path.Input())
	opts = append([]Option{WithStep(path.step)}, opts...)
	return PathFromPairs(pts, opts...)
}

// Polygon returns the outline of the sampled path as a cyclic polygon. The
// final waypoint is appended to the samples unless it coincides with the
// first sample, as it does for closed paths.
func (path *Path) Polygon() *polygon.Polygon {
	pg := polygon.FromPoints(path.positions)
	last := planar.P(path.x[len(path.x)-1], path.y[len(path.y)-1])
	if pg.N() == 0 || !last.Equal(pg.Pt(0)) {
		pg.Knot(last)
	}
	return pg
}

func (path *Path) String() string {
	var b strings.Builder
	b.WriteString("Path(\n")
	fmt.Fprintf(&b, "    x = %v,\n", path.x)
	fmt.Fprintf(&b, "    y = %v,\n", path.y)
	fmt.Fprintf(&b, "    step = %g,\n", path.step)
	b.WriteString(")")
	return b.String()
}
