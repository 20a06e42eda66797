package polyn

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSystemTridiagonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{
		{1, 0, 0, 0, 0},
		{1, 4, 1, 0, 0},
		{0, 1, 4, 1, 0},
		{0, 0, 1, 4, 1},
		{0, 0, 0, 0, 1},
	}
	rhs := []float64{0, 6, 0, -6, 0}
	x, err := SolveSystem(A, rhs)
	require.NoError(t, err)
	require.Len(t, x, 5)
	for r, row := range A {
		var sum float64
		for c, a := range row {
			sum += a * x[c]
		}
		assert.InDelta(t, rhs[r], sum, 1e-6, "row %d", r)
	}
	assert.InDelta(t, 0.0, x[0], 1e-9)
	assert.InDelta(t, 0.0, x[4], 1e-9)
}

func TestSolveSystemDense(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	x, err := SolveSystem(A, []float64{8, -11, -3})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-6)
	assert.InDelta(t, 3.0, x[1], 1e-6)
	assert.InDelta(t, -1.0, x[2], 1e-6)
}

func TestSolveSystemRejectsBadShapes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := SolveSystem([][]float64{{1, 0}}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = SolveSystem([][]float64{{1}, {0, 1}}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = SolveSystem(nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyEquationList))
}

func TestSolveSystemSingular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := SolveSystem([][]float64{{1, 1}, {2, 2}}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrUnderdetermined), "got %v", err)
	_, err = SolveSystem([][]float64{{1, 1}, {2, 2}}, []float64{1, 3})
	assert.True(t, errors.Is(err, ErrInconsistentEquation), "got %v", err)
}

func TestSolveSystemBadlyScaledRows(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	scales := [][]float64{{1e9, 1, 1e-9}, {1e-12, 1e-12, 1e-12}, {1e12, 1e12, 1e12}}
	for _, s := range scales {
		A := [][]float64{
			{2 * s[0], 1 * s[0], -1 * s[0]},
			{-3 * s[1], -1 * s[1], 2 * s[1]},
			{-2 * s[2], 1 * s[2], 2 * s[2]},
		}
		x, err := SolveSystem(A, []float64{8 * s[0], -11 * s[1], -3 * s[2]})
		require.NoError(t, err, "row scales %v", s)
		assert.InEpsilon(t, 2.0, x[0], 1e-9, "row scales %v", s)
		assert.InEpsilon(t, 3.0, x[1], 1e-9, "row scales %v", s)
		assert.InEpsilon(t, -1.0, x[2], 1e-9, "row scales %v", s)
	}
}

func TestSolveSystemTinySolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{{4, 1}, {1, 3}}
	x, err := SolveSystem(A, []float64{5e-10, 4e-10})
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-10, x[0], 1e-9)
	assert.InEpsilon(t, 1e-10, x[1], 1e-9)
	x, err = SolveSystem(A, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, x)
}

func TestSolveSystemNearlySingular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, err := SolveSystem([][]float64{{1, 1}, {1, 1 + 1e-6}}, []float64{2, 2 + 1e-6})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-6)
	assert.InDelta(t, 1.0, x[1], 1e-6)
	_, err = SolveSystem([][]float64{{1, 1}, {1, 1 + 1e-12}}, []float64{2, 2 + 1e-12})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnderdetermined) || errors.Is(err, ErrIllConditioned), "got %v", err)
}
