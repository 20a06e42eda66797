/*
Package planar implements 2D coordinates, affine transformations and a few
closed-form helpers (lines, circumcircles) for arc-length parameterized
spline paths. The spline engine itself lives in package cspline.

# BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package planar

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'planar'
func tracer() tracing.Trace {
	return tracing.Select("planar")
}

// === Numeric Predicates ====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Coordinates ===========================================================

// Pair is a 2D coordinate. Pairs are comparable values and may be used as
// map keys; Equal compares with tolerance ε.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return Origin
	}
	return Pair(c)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return p.X(), p.Y()
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsFinite is a predicate: are both parts of p finite numbers?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs within ε.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Len is the Euclidean norm of p, interpreted as a vector.
func (p Pair) Len() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Dist is the Euclidean distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return (p2 - p).Len()
}

// Angle is the direction of p, interpreted as a vector, in radians (-π, π].
func (p Pair) Angle() float64 {
	if a := math.Atan2(p.Y(), p.X()); a > -math.Pi {
		return a
	}
	return math.Pi
}

// Cross is the z-component of the cross product p × p2.
func (p Pair) Cross(p2 Pair) float64 {
	return p.X()*p2.Y() - p.Y()*p2.X()
}

// Midpoint returns the point halfway between p and p2.
func (p Pair) Midpoint(p2 Pair) Pair {
	return (p + p2) / 2
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p).Zap()
}

// RotatedAround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) RotatedAround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v).Zap()
}

// Unzip splits a sequence of pairs into separate x- and y-sequences.
func Unzip(pts []Pair) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.F()
	}
	return xs, ys
}

// Zip combines x- and y-sequences into pairs. Surplus values of the longer
// sequence are dropped.
func Zip(xs, ys []float64) []Pair {
	n := min(len(xs), len(ys))
	pts := make([]Pair, n)
	for i := 0; i < n; i++ {
		pts[i] = P(xs[i], ys[i])
	}
	return pts
}
