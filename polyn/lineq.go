package polyn

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/arcspline/planar"
)

var (
	// ErrEmptyEquationList indicates no equations were supplied to AddEqs.
	ErrEmptyEquationList = errors.New("empty list of equations")
	// ErrInconsistentEquation indicates an equation reduced to 0 = c with c ≠ 0.
	ErrInconsistentEquation = errors.New("inconsistent equation")
)

// A VariableResolver links variable positions x.i to client-side names
// and receives the values of variables as they become known.
type VariableResolver interface {
	GetVariableName(int) string     // name of x.i
	SetVariableSolved(int, float64) // message: x.i is solved
}

/*
LinEqSolver solves a system of linear equations incrementally, the way
MetaFont does: every new equation 0 = p is reduced by what is already
known and then resolved for one of its remaining variables.

A variable x.i is in one of three states:

	solved     x.i = c
	dependent  x.i = p(x.j, x.k, ...), with free x.j, x.k, ...
	free       neither of both

The right-hand side of a dependent variable never mentions another
dependent variable. New equations keep it that way: after substituting the
solved and dependent variables, an equation contains free variables only.
It is resolved for the free variable with the largest coefficient, which is
then substituted into every dependent right-hand side.
*/
type LinEqSolver struct {
	dependents map[int]Polynomial
	solved     map[int]float64
	resolver   VariableResolver
}

// NewLinEqSolver creates an empty system of linear equations.
func NewLinEqSolver() *LinEqSolver {
	return &LinEqSolver{
		dependents: make(map[int]Polynomial),
		solved:     make(map[int]float64),
	}
}

// SetVariableResolver sets a resolver for variable names and solutions.
func (leq *LinEqSolver) SetVariableResolver(resolver VariableResolver) {
	leq.resolver = resolver
}

// AddEq adds the equation 0 = p and solves the (possibly incomplete) system
// as far as possible. p is not altered. An equation which contradicts the
// system yields ErrInconsistentEquation and leaves the system unchanged.
func (leq *LinEqSolver) AddEq(p Polynomial) error {
	return leq.addEq(p)
}

// AddEqs adds a list of equations, stopping at the first error. See AddEq.
func (leq *LinEqSolver) AddEqs(plist []Polynomial) error {
	if len(plist) == 0 {
		T().Errorf("given empty list of equations")
		return ErrEmptyEquationList
	}
	for i, p := range plist {
		T().Debugf("adding equation %d/%d: 0 = %s", i+1, len(plist), p)
		if err := leq.addEq(p); err != nil {
			return fmt.Errorf("equation %d: %w", i+1, err)
		}
	}
	return nil
}

func (leq *LinEqSolver) addEq(p Polynomial) error {
	T().P("op", "new equation").Infof("0 = %s", leq.PolynString(p))
	p = leq.reduce(p)
	if c, isconst := p.IsConstant(); isconst {
		if !planar.Is0(c) {
			return fmt.Errorf("%w: 0 = %s (off by %g)", ErrInconsistentEquation, leq.PolynString(p), c)
		}
		T().P("op", "redundant").Debugf("equation is redundant")
		return nil
	}
	i, a := p.maxCoeff()
	rhs := p.Copy()
	delete(rhs.terms, i)
	rhs = rhs.Scale(-1 / a) // x.i = -1/a·(p - a·x.i)
	varname := leq.VarString(i)
	T().P("var", varname).Infof("## %s = %s", varname, leq.PolynString(rhs))
	for _, j := range sortedKeys(leq.dependents) {
		q := leq.dependents[j]
		if !q.Contains(i) {
			continue
		}
		q = q.substitute(i, rhs)
		T().P("op", "substitute").Debugf("%s = %s", leq.VarString(j), leq.PolynString(q))
		leq.settle(j, q)
	}
	leq.settle(i, rhs)
	return nil
}

// reduce returns a copy of p with all solved and dependent variables
// replaced by their right-hand sides.
func (leq *LinEqSolver) reduce(p Polynomial) Polynomial {
	p = p.Copy().Zap()
	for _, i := range p.Exponents() {
		if i == 0 {
			continue
		}
		if c, ok := leq.solved[i]; ok {
			p = p.substitute(i, NewConstantPolynomial(c))
		} else if q, ok := leq.dependents[i]; ok {
			p = p.substitute(i, q)
		} else {
			continue
		}
		T().P("op", "reduce").Debugf("%s  =>  0 = %s", leq.VarString(i), leq.PolynString(p))
	}
	return p
}

// settle stores x.i = q, either as dependent or, for constant q, as solved.
func (leq *LinEqSolver) settle(i int, q Polynomial) {
	c, isconst := q.IsConstant()
	if !isconst {
		leq.dependents[i] = q
		return
	}
	delete(leq.dependents, i)
	leq.solved[i] = c
	varname := leq.VarString(i)
	T().P("var", varname).Infof("#### %s = %g", varname, c)
	if leq.resolver != nil {
		leq.resolver.SetVariableSolved(i, c)
	}
}

// Value returns the value of x.i, if x.i is solved.
func (leq *LinEqSolver) Value(i int) (float64, bool) {
	c, ok := leq.solved[i]
	return c, ok
}

// Dependency returns the right-hand side of x.i, if x.i is dependent.
func (leq *LinEqSolver) Dependency(i int) (Polynomial, bool) {
	q, ok := leq.dependents[i]
	if !ok {
		return Polynomial{}, false
	}
	return q.Copy(), true
}

// Solved returns all solved variables, keyed by position.
func (leq *LinEqSolver) Solved() map[int]float64 {
	m := make(map[int]float64, len(leq.solved))
	for i, c := range leq.solved {
		m[i] = c
	}
	return m
}

// VarString returns a readable name for x.i, using the variable resolver
// if present.
func (leq *LinEqSolver) VarString(i int) string {
	return TraceStringVar(i, leq.resolver)
}

// PolynString returns p as a string, using the variable resolver if present.
func (leq *LinEqSolver) PolynString(p Polynomial) string {
	if leq.resolver != nil {
		return p.TraceString(leq.resolver)
	}
	return p.String()
}

// Dump writes all dependent and solved variables to w, in ascending order.
func (leq *LinEqSolver) Dump(w io.Writer) {
	fmt.Fprintln(w, "Dependents:")
	for _, i := range sortedKeys(leq.dependents) {
		fmt.Fprintf(w, "\t%s = %s\n", leq.VarString(i), leq.PolynString(leq.dependents[i]))
	}
	fmt.Fprintln(w, "Solved:")
	for _, i := range sortedKeys(leq.solved) {
		fmt.Fprintf(w, "\t%s = %g\n", leq.VarString(i), leq.solved[i])
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
