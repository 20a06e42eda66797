package planar

import "fmt"

// Circumcircle is the circle through the three vertices of a triangle.
// It is immutable; use WithVertexReplaced to derive a circle for a
// modified triangle.
type Circumcircle struct {
	vertices [3]Pair
	center   Pair
	radius   float64
}

// NewCircumcircle calculates center and radius of the circle through a, b, c.
// Collinear (and coincident) vertices have no circumcircle.
func NewCircumcircle(a, b, c Pair) (*Circumcircle, error) {
	for _, v := range []Pair{a, b, c} {
		if !v.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite vertex %s", ErrCollinear, v)
		}
	}
	d := 2 * (b - a).Cross(c-a)
	if Is0(d) {
		return nil, fmt.Errorf("%w: %s, %s, %s", ErrCollinear, a, b, c)
	}
	// solve relative to a to keep magnitudes small
	ab, ac := b-a, c-a
	lb, lc := sq(ab.Len()), sq(ac.Len())
	ux := (ac.Y()*lb - ab.Y()*lc) / d
	uy := (ab.X()*lc - ac.X()*lb) / d
	center := a + P(ux, uy)
	circ := &Circumcircle{
		vertices: [3]Pair{a, b, c},
		center:   center,
		radius:   center.Dist(a),
	}
	tracer().Debugf("circumcircle of %s, %s, %s: center %s, r = %g", a, b, c, center, circ.radius)
	return circ, nil
}

// Vertex returns vertex i (0, 1 or 2) of the triangle.
func (circ *Circumcircle) Vertex(i int) Pair {
	return circ.vertices[i]
}

// Center of the circumcircle.
func (circ *Circumcircle) Center() Pair {
	return circ.center
}

// Radius of the circumcircle.
func (circ *Circumcircle) Radius() float64 {
	return circ.radius
}

// Curvature is 1/Radius, the curvature of any arc of the circle.
func (circ *Circumcircle) Curvature() float64 {
	return 1 / circ.radius
}

// WithVertexReplaced returns the circumcircle of the triangle with vertex i
// replaced by v. The receiver is unchanged.
func (circ *Circumcircle) WithVertexReplaced(i int, v Pair) (*Circumcircle, error) {
	if i < 0 || i > 2 {
		return nil, fmt.Errorf("vertex index must be 0, 1 or 2, is %d", i)
	}
	vs := circ.vertices
	vs[i] = v
	return NewCircumcircle(vs[0], vs[1], vs[2])
}

func (circ *Circumcircle) String() string {
	return fmt.Sprintf("Circumcircle(center=%s, r=%g)", circ.center, circ.radius)
}

func sq(x float64) float64 {
	return x * x
}
