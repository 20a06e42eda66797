package planar

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(1e300))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
	assert.InDelta(t, math.Pi/2, P(0, 2).Angle(), 1e-12)
	assert.InDelta(t, 1.0, P(1, 0).Cross(P(0, 1)), 1e-12)
}

func TestPairAngleRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	negZero := math.Copysign(0, -1)
	assert.Equal(t, math.Pi, P(-1, negZero).Angle())
	assert.Equal(t, math.Pi, P(-1, 0).Angle())
	assert.InDelta(t, -math.Pi/2, P(0, -1).Angle(), 1e-12)
	assert.Greater(t, P(-1, -1e-300).Angle(), -math.Pi)
}

func TestPairAsMapKey(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seen := map[Pair]int{P(1, 2): 1}
	seen[P(1, 2)]++
	assert.Equal(t, 2, seen[P(1, 2)])
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
	r := P(2, 1).RotatedAround(P(1, 1), 90*Deg2Rad)
	assert.True(t, r.Equal(P(1, 2)), "rotated around (1,1): %s", r)
}

func TestCombineTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Scaling(2, 3).Combine(Translation(P(1, 1)))
	assert.True(t, m.Transform(P(1, 1)).Equal(P(3, 4)), "got %s", m.Transform(P(1, 1)))
	pts := Identity().TransformAll([]Pair{P(1, 2), P(3, 4)})
	assert.Equal(t, []Pair{P(1, 2), P(3, 4)}, pts)
}

func TestZipUnzip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	xs, ys := Unzip([]Pair{P(1, 2), P(3, 4)})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
	assert.Len(t, Zip([]float64{1, 2, 3}, []float64{1}), 1)
}

func TestLineIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l1, err := NewLine(P(0, 0), P(2, 2))
	require.NoError(t, err)
	l2, err := NewLine(P(0, 2), P(2, 0))
	require.NoError(t, err)
	x, ok := l1.Intersect(l2)
	require.True(t, ok)
	assert.True(t, x.Equal(P(1, 1)), "intersection at %s", x)
	assert.InDelta(t, 1.0, l1.Slope(), 1e-12)
}

func TestLineVerticalAndParallel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v, _ := NewLine(P(1, -5), P(1, 5))
	h, _ := NewLine(P(-3, 2), P(4, 2))
	assert.True(t, math.IsInf(v.Slope(), 1))
	x, ok := v.Intersect(h)
	require.True(t, ok)
	assert.True(t, x.Equal(P(1, 2)), "intersection at %s", x)
	h2, _ := NewLine(P(0, 7), P(1, 7))
	_, ok = h.Intersect(h2)
	assert.False(t, ok, "parallel lines must not intersect")
}

func TestLineRejectsCoincidentPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewLine(P(1, 1), P(1, 1))
	assert.True(t, errors.Is(err, ErrDegenerateLine))
}

func TestCircumcircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circ, err := NewCircumcircle(P(1, 0), P(0, 1), P(-1, 0))
	require.NoError(t, err)
	assert.True(t, circ.Center().IsOrigin(), "center at %s", circ.Center())
	assert.InDelta(t, 1.0, circ.Radius(), 1e-12)
	assert.InDelta(t, 1.0, circ.Curvature(), 1e-12)
	// vertical edge a-b must not be special
	circ, err = NewCircumcircle(P(2, 0), P(2, 2), P(0, 0))
	require.NoError(t, err)
	assert.True(t, circ.Center().Equal(P(1, 1)), "center at %s", circ.Center())
}

func TestCircumcircleWithVertexReplaced(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circ, err := NewCircumcircle(P(1, 0), P(0, 1), P(-1, 0))
	require.NoError(t, err)
	bigger, err := circ.WithVertexReplaced(1, P(0, -1))
	require.NoError(t, err)
	assert.True(t, bigger.Vertex(1).Equal(P(0, -1)))
	assert.True(t, circ.Vertex(1).Equal(P(0, 1)), "receiver must stay unchanged")
	_, err = circ.WithVertexReplaced(3, Origin)
	assert.Error(t, err)
	_, err = circ.WithVertexReplaced(1, P(0, 0))
	assert.True(t, errors.Is(err, ErrCollinear))
}
