package planar

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateLine indicates a line through two coincident points.
	ErrDegenerateLine = errors.New("line points must be distinct")
	// ErrCollinear indicates a triangle whose vertices lie on a common line.
	ErrCollinear = errors.New("triangle vertices are collinear")
)

// Line is an infinite straight line through two distinct points.
type Line struct {
	a, b Pair
}

// NewLine creates a line through a and b.
func NewLine(a, b Pair) (Line, error) {
	if !a.IsFinite() || !b.IsFinite() {
		return Line{}, fmt.Errorf("%w: non-finite point in %s, %s", ErrDegenerateLine, a, b)
	}
	if a.Equal(b) {
		return Line{}, fmt.Errorf("%w: %s", ErrDegenerateLine, a)
	}
	return Line{a: a, b: b}, nil
}

// A is the first point of l.
func (l Line) A() Pair {
	return l.a
}

// B is the second point of l.
func (l Line) B() Pair {
	return l.b
}

// Direction is the vector from A to B.
func (l Line) Direction() Pair {
	return l.b - l.a
}

// Slope returns dy/dx. Vertical lines have slope ±Inf.
func (l Line) Slope() float64 {
	d := l.Direction()
	if Is0(d.X()) {
		return math.Copysign(math.Inf(1), d.Y())
	}
	return d.Y() / d.X()
}

// Intersect finds the intersection point of two lines. Parallel (or
// identical) lines do not have a unique intersection and return false.
func (l Line) Intersect(l2 Line) (Pair, bool) {
	d1, d2 := l.Direction(), l2.Direction()
	denom := d1.Cross(d2)
	if Is0(denom) {
		return Origin, false
	}
	t := (l2.a - l.a).Cross(d2) / denom
	return l.a + d1*Pair(complex(t, 0)), true
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%s, %s)", l.a, l.b)
}
