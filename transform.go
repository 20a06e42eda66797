package planar

import (
	"fmt"
	"math"
)

// AT is an affine transform, a 3x3 matrix flattened by rows.
type AT [9]float64

func (m *AT) at(row, col int) float64 {
	return m[row*3+col]
}

func (m *AT) put(row, col int, value float64) {
	m[row*3+col] = value
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	var m AT
	m.put(0, 0, 1)
	m.put(1, 1, 1)
	m.put(2, 2, 1)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.put(0, 2, p.X())
	m.put(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := Identity()
	sin, cos := math.Sincos(theta)
	m.put(0, 0, cos)
	m.put(0, 1, -sin)
	m.put(1, 0, sin)
	m.put(1, 1, cos)
	return m
}

// Scaling transform. Scale a point by sx in x-direction and by sy
// in y-direction.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.put(0, 0, sx)
	m.put(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one: applying the result
// equals applying m first, then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n.at(row, k) * m.at(k, col)
			}
			o.put(row, col, sum)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(
		m.at(0, 0)*x+m.at(0, 1)*y+m.at(0, 2),
		m.at(1, 0)*x+m.at(1, 1)*y+m.at(1, 2),
	)
}

// TransformAll transforms a sequence of points into a new sequence.
func (m AT) TransformAll(pts []Pair) []Pair {
	out := make([]Pair, len(pts))
	for i, p := range pts {
		out[i] = m.Transform(p)
	}
	return out
}
