/*
Package polygon implements closed polygons and boolean operations on
polygonal regions.

Polygons are built knot by knot, or from a sampled path:

	pg := polygon.NullPolygon().Knot(planar.P(0, 0)).Knot(planar.P(1, 3)).Knot(planar.P(3, 0)).Cycle()

Regions are sets of polygonal contours, combined by intersection, union,
difference and exclusive or. Clipping is done by package
github.com/akavel/polyclip-go.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/arcspline/planar"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of knots, connected by straight edges. A cyclic
// polygon has an additional edge from the last knot back to the first one.
type Polygon struct {
	pts   []planar.Pair
	cycle bool
}

// NullPolygon returns an empty polygon, to be extended with Knot.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints returns a cyclic polygon with knots pts.
func FromPoints(pts []planar.Pair) *Polygon {
	pg := &Polygon{pts: make([]planar.Pair, len(pts))}
	copy(pg.pts, pts)
	return pg.Cycle()
}

// Box returns a rectangle with opposing corners a and b, in any order. The
// knots run counter-clockwise, starting at the lower left corner.
func Box(a, b planar.Pair) *Polygon {
	x0, x1 := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	y0, y1 := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().Knot(planar.P(x0, y0)).Knot(planar.P(x1, y0)).
		Knot(planar.P(x1, y1)).Knot(planar.P(x0, y1)).Cycle()
}

// Knot appends a knot.
func (pg *Polygon) Knot(p planar.Pair) *Polygon {
	pg.pts = append(pg.pts, p)
	return pg
}

// Cycle closes the polygon.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.pts)
}

// Pt returns knot i. For cyclic polygons, i is taken modulo N.
func (pg *Polygon) Pt(i int) planar.Pair {
	if pg.cycle && len(pg.pts) > 0 {
		i %= len(pg.pts)
		if i < 0 {
			i += len(pg.pts)
		}
	}
	return pg.pts[i]
}

// IsCycle returns true for closed polygons.
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// SignedArea returns the area enclosed by the polygon, positive if the knots
// run counter-clockwise. An open polygon is measured as if it were closed.
func (pg *Polygon) SignedArea() float64 {
	return shoelace(pg.pts)
}

// Area returns the unsigned enclosed area.
func (pg *Polygon) Area() float64 {
	return math.Abs(pg.SignedArea())
}

// BoundingBox returns the lower left and upper right corners of the
// smallest axis-parallel rectangle containing all knots.
func (pg *Polygon) BoundingBox() (planar.Pair, planar.Pair) {
	r := contour(pg).BoundingBox()
	return planar.P(r.Min.X, r.Min.Y), planar.P(r.Max.X, r.Max.Y)
}

// Contains returns true if p lies inside the polygon. Points on the border
// may be reported either way.
func (pg *Polygon) Contains(p planar.Pair) bool {
	return contour(pg).Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// Region returns the polygon as a region.
func (pg *Polygon) Region() *Region {
	return NewRegion(pg)
}

// AsString returns a polygon as a (debugging) string in MetaPost notation.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var s strings.Builder
	for i, p := range pg.pts {
		if i > 0 {
			s.WriteString(" -- ")
		}
		fmt.Fprintf(&s, "(%.4g,%.4g)", planar.Round(p.X()), planar.Round(p.Y()))
	}
	if pg.cycle {
		s.WriteString(" -- cycle")
	}
	return s.String()
}

func contour(pg *Polygon) polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pg.pts))
	for _, p := range pg.pts {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

func shoelace(pts []planar.Pair) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].Cross(pts[j])
	}
	return a / 2
}
