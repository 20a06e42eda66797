package cspline

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/arcspline/planar"
)

// Controls holds the cubic Bézier control points of a path. Segment i
// from knot i to knot i+1 is drawn with post-control i and pre-control i+1.
type Controls struct {
	prec  []planar.Pair // control point i-, none for knot 0
	postc []planar.Pair // control point i+, none for the last knot
}

// Controls converts the spline segments of a path to cubic Bézier
// segments. For segment i with width h and end points P0, P3 the control
// points are P0 + h/3·z'(s.i) and P3 - h/3·z'(s.i+1).
func (path *Path) Controls() *Controls {
	n := len(path.knots)
	ctrls := &Controls{
		prec:  make([]planar.Pair, n),
		postc: make([]planar.Pair, n),
	}
	ctrls.prec[0] = planar.Pair(cmplx.NaN())
	ctrls.postc[n-1] = planar.Pair(cmplx.NaN())
	for i := 0; i < n-1; i++ {
		h := path.knots[i+1] - path.knots[i]
		p0 := planar.P(path.x[i], path.y[i])
		p3 := planar.P(path.x[i+1], path.y[i+1])
		d0 := planar.P(path.sx.c[i], path.sy.c[i])
		// derivative at the right end of segment i, evaluated on segment i
		d1 := planar.P(segmentSlope(path.sx, i, h), segmentSlope(path.sy, i, h))
		ctrls.postc[i] = p0 + planar.Pair(complex(h/3, 0))*d0
		ctrls.prec[i+1] = p3 - planar.Pair(complex(h/3, 0))*d1
	}
	return ctrls
}

func segmentSlope(spl *Spline, i int, dt float64) float64 {
	return 3*spl.a[i]*dt*dt + 2*spl.b[i]*dt + spl.c[i]
}

// N returns the number of knots the controls belong to.
func (ctrls *Controls) N() int {
	return len(ctrls.prec)
}

// PreControl returns the control point before knot i. It is NaN for knot 0
// and for indices out of range.
func (ctrls *Controls) PreControl(i int) planar.Pair {
	return getC(ctrls.prec, i)
}

// PostControl returns the control point after knot i. It is NaN for the
// last knot and for indices out of range.
func (ctrls *Controls) PostControl(i int) planar.Pair {
	return getC(ctrls.postc, i)
}

func getC(arr []planar.Pair, i int) planar.Pair {
	if i < 0 || i >= len(arr) {
		return planar.Pair(cmplx.NaN())
	}
	return arr[i]
}

// AsString returns a path, optionally including its control points, as a
// (debugging) string. Without controls, the knots are listed on one line.
// With controls, every segment gets a line of its own:
//
//	(0,0) .. controls (0.3333,0.5000) and (0.6667,1.0000)
//	  .. (1,1) .. controls (1.3333,1.0000) and (1.6667,0.5000)
//	  .. (2,0)
//
// The format resembles MetaPost's.
func AsString(path *Path, contr *Controls) string {
	var s strings.Builder
	for i := 0; i < len(path.knots); i++ {
		if i > 0 {
			if contr != nil {
				fmt.Fprintf(&s, " and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s.WriteString(" .. ")
			}
		}
		s.WriteString(ptstring(planar.P(path.x[i], path.y[i]), false))
		if contr != nil && i < len(path.knots)-1 {
			fmt.Fprintf(&s, " .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s.String()
}

func ptstring(p planar.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round4(p.X()), round4(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round4(p.X()), round4(p.Y()))
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
