package cspline

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cspline'
func tracer() tracing.Trace {
	return tracing.Select("cspline")
}

// DefaultStep is the sampling step of a Path if none is configured.
const DefaultStep = 0.1

// maxSamples limits the size of a sampling sweep.
const maxSamples = 1 << 24

var (
	// ErrInvalidConfig is the root of all configuration errors. Every other
	// configuration error of this package wraps it.
	ErrInvalidConfig = errors.New("invalid spline configuration")
	// ErrTooFewKnots indicates less than two knots or waypoints.
	ErrTooFewKnots = fmt.Errorf("%w: too few knots", ErrInvalidConfig)
	// ErrLengthMismatch indicates sequences of different length.
	ErrLengthMismatch = fmt.Errorf("%w: sequence lengths differ", ErrInvalidConfig)
	// ErrInvalidValue indicates a NaN or infinite input value.
	ErrInvalidValue = fmt.Errorf("%w: non-finite input value", ErrInvalidConfig)
	// ErrDegenerateSegment indicates a segment of zero width, e.g. from two
	// coincident consecutive waypoints.
	ErrDegenerateSegment = fmt.Errorf("%w: degenerate segment", ErrInvalidConfig)
	// ErrUnorderedKnots indicates knots which are not strictly increasing.
	ErrUnorderedKnots = fmt.Errorf("%w: knots not in increasing order", ErrInvalidConfig)
	// ErrInvalidStep indicates a sampling step which is not a positive number.
	ErrInvalidStep = fmt.Errorf("%w: sampling step must be positive", ErrInvalidConfig)
	// ErrNoSolver indicates a nil Solver option.
	ErrNoSolver = fmt.Errorf("%w: no solver", ErrInvalidConfig)

	// ErrMalformedSystem indicates a System with inconsistent dimensions.
	ErrMalformedSystem = errors.New("malformed tridiagonal system")
	// ErrSingularSystem indicates a System without unique solution.
	ErrSingularSystem = errors.New("singular tridiagonal system")
)

// Option configures the construction of Splines and Paths.
type Option func(*config)

type config struct {
	step   float64
	solver Solver
}

// WithStep sets the sampling step of a Path. The step must be a positive,
// finite number. Splines ignore it.
func WithStep(step float64) Option {
	return func(c *config) {
		c.step = step
	}
}

// WithSolver sets the solver for the coefficient system.
// Default is TridiagonalSolver.
func WithSolver(solver Solver) Option {
	return func(c *config) {
		c.solver = solver
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{
		step:   DefaultStep,
		solver: TridiagonalSolver,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if math.IsNaN(c.step) || math.IsInf(c.step, 0) || c.step <= 0 {
		return c, fmt.Errorf("%w, is %g", ErrInvalidStep, c.step)
	}
	if c.solver == nil {
		return c, ErrNoSolver
	}
	return c, nil
}

func checkFinite(vals []float64, name string) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] = %g", ErrInvalidValue, name, i, v)
		}
	}
	return nil
}

func clone(vals []float64) []float64 {
	return append([]float64(nil), vals...)
}
