package polygon

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/arcspline/planar"
)

// Region is a planar area bounded by a set of contours. A point belongs to
// the region if it is enclosed by an odd number of contours, so contours
// nested inside others are holes. Regions are immutable.
type Region struct {
	poly polyclip.Polygon
}

// NewRegion returns the region bounded by the given polygons. Open polygons
// are treated as if they were closed.
func NewRegion(pgs ...*Polygon) *Region {
	r := &Region{}
	for _, pg := range pgs {
		if pg.N() > 0 {
			r.poly.Add(contour(pg))
		}
	}
	return r
}

// Intersection returns the area common to r and r2.
func (r *Region) Intersection(r2 *Region) *Region {
	return r.construct(polyclip.INTERSECTION, r2)
}

// Union returns the area covered by r or r2.
func (r *Region) Union(r2 *Region) *Region {
	return r.construct(polyclip.UNION, r2)
}

// Difference returns the area of r not covered by r2.
func (r *Region) Difference(r2 *Region) *Region {
	return r.construct(polyclip.DIFFERENCE, r2)
}

// Xor returns the area covered by exactly one of r and r2.
func (r *Region) Xor(r2 *Region) *Region {
	return r.construct(polyclip.XOR, r2)
}

func (r *Region) construct(op polyclip.Op, r2 *Region) *Region {
	result := &Region{poly: r.poly.Construct(op, r2.poly)}
	L().Debugf("clipping yields %d contours", len(result.poly))
	return result
}

// IsEmpty returns true if the region has no contours.
func (r *Region) IsEmpty() bool {
	return len(r.poly) == 0
}

// Contours returns the boundary contours of the region as cyclic polygons.
func (r *Region) Contours() []*Polygon {
	pgs := make([]*Polygon, len(r.poly))
	for i, c := range r.poly {
		pg := NullPolygon()
		for _, p := range c {
			pg.Knot(planar.P(p.X, p.Y))
		}
		pgs[i] = pg.Cycle()
	}
	return pgs
}

// Contains returns true if p lies inside the region. Points on a border may
// be reported either way.
func (r *Region) Contains(p planar.Pair) bool {
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	inside := false
	for _, c := range r.poly {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Area returns the area of the region, holes subtracted.
func (r *Region) Area() float64 {
	var area float64
	for i, c := range r.poly {
		if len(c) == 0 {
			continue
		}
		a := math.Abs(shoelace(pairs(c)))
		if r.depth(i)%2 == 1 {
			area -= a
		} else {
			area += a
		}
	}
	return area
}

// depth counts the contours enclosing contour i.
func (r *Region) depth(i int) int {
	d := 0
	for j, c := range r.poly {
		if j != i && c.Contains(r.poly[i][0]) {
			d++
		}
	}
	return d
}

// BoundingBox returns the lower left and upper right corners of the
// smallest axis-parallel rectangle containing the region.
func (r *Region) BoundingBox() (planar.Pair, planar.Pair) {
	if r.IsEmpty() {
		return planar.Origin, planar.Origin
	}
	box := r.poly.BoundingBox()
	return planar.P(box.Min.X, box.Min.Y), planar.P(box.Max.X, box.Max.Y)
}

func pairs(c polyclip.Contour) []planar.Pair {
	pts := make([]planar.Pair, len(c))
	for i, p := range c {
		pts[i] = planar.P(p.X, p.Y)
	}
	return pts
}
