package cspline

import (
	"fmt"
	"math"

	"github.com/arcspline/planar"
)

// samples holds the results of sampling a path at a fixed step.
type samples struct {
	params    []float64
	positions []planar.Pair
	curvature []float64
	yaw       []float64
}

// sweep samples a path over the half-open range [s.0, s.n-1) at the
// configured step. The i-th parameter is s.0 + i·step; it is computed by
// multiplication to avoid accumulating rounding errors.
func sweep(path *Path) (samples, error) {
	start, end := path.knots[0], path.Length()
	count := math.Ceil((end - start) / path.step)
	if count > maxSamples {
		return samples{}, fmt.Errorf("%w: step %g yields %.0f samples, limit is %d",
			ErrInvalidStep, path.step, count, maxSamples)
	}
	n := int(count)
	smp := samples{
		params:    make([]float64, 0, n),
		positions: make([]planar.Pair, 0, n),
		curvature: make([]float64, 0, n),
		yaw:       make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		s := start + float64(i)*path.step
		if s >= end {
			break
		}
		x, _ := path.sx.Position(s)
		y, _ := path.sy.Position(s)
		x1, _ := path.sx.FirstDerivative(s)
		y1, _ := path.sy.FirstDerivative(s)
		x2, _ := path.sx.SecondDerivative(s)
		y2, _ := path.sy.SecondDerivative(s)
		smp.params = append(smp.params, s)
		smp.positions = append(smp.positions, planar.P(x, y))
		smp.curvature = append(smp.curvature, curvature(x1, x2, y1, y2))
		smp.yaw = append(smp.yaw, yaw(x1, y1))
	}
	tracer().Debugf("sampled %d points over [%g,%g)", len(smp.params), start, end)
	return smp, nil
}
