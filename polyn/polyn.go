// Package polyn is for arithmetic with linear polynomials and linear equations.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/arcspline/planar"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return tracing.Select("equations")
}

var (
	// ErrInvalidExponent indicates a term x.i with i < 1 given to New.
	ErrInvalidExponent = errors.New("term position must be at least 1")
	// ErrNonConstantFactor indicates a product of two non-constant polynomials.
	ErrNonConstantFactor = errors.New("product of two unknowns is not linear")
	// ErrIllegalDivisor indicates a division by zero or by a non-constant.
	ErrIllegalDivisor = errors.New("illegal divisor")
)

// X denotes a term C·x.I, I > 0, for quick construction of polynomials.
type X struct {
	I int     // position of the variable
	C float64 // coefficient
}

// Polynomial is a linear polynomial
//
//	c + a.1·x.1 + a.2·x.2 + ... + a.n·x.n
//
// Only non-zero coefficients are stored, keyed by term position. Position 0
// holds the constant term, which is always present. Arithmetic operations
// return new polynomials and leave their operands alone.
type Polynomial struct {
	terms map[int]float64
}

// New creates a polynomial from a constant and a list of terms:
//
//	polyn.New(8, polyn.X{I: 2, C: 5}, polyn.X{I: 1, C: 2.0 / 3})
//
// is 8 + 2/3·x.1 + 5·x.2. Terms at positions < 1 are skipped and
// reported as an error.
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var errs []error
	for _, t := range tms {
		if t.I < 1 {
			errs = append(errs, fmt.Errorf("%w, skipping term at %d", ErrInvalidExponent, t.I))
			continue
		}
		p.terms[t.I] += t.C
	}
	return p.Zap(), errors.Join(errs...)
}

// NewConstantPolynomial creates a polynomial consisting of a constant term only.
func NewConstantPolynomial(c float64) Polynomial {
	return Polynomial{terms: map[int]float64{0: planar.Zap(c)}}
}

// SetTerm sets the coefficient a.i of p in place; i = 0 sets the constant.
// It returns p for chaining.
func (p Polynomial) SetTerm(i int, a float64) Polynomial {
	if p.terms == nil {
		p.terms = map[int]float64{0: 0}
	}
	p.terms[i] = a
	return p
}

// Exponents returns the positions of all terms of p in ascending order,
// the constant term at position 0 included.
func (p Polynomial) Exponents() []int {
	keys := make([]int, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// TermCount returns the number of terms of p, the constant term included.
func (p Polynomial) TermCount() int {
	return len(p.terms)
}

// Copy returns a deep copy of p.
func (p Polynomial) Copy() Polynomial {
	q := Polynomial{terms: make(map[int]float64, len(p.terms)+1)}
	q.terms[0] = 0
	for i, a := range p.terms {
		q.terms[i] = a
	}
	return q
}

// Constant returns the constant term of p.
func (p Polynomial) Constant() float64 {
	return p.terms[0]
}

// Coeff returns the coefficient a.i of p, 0 if p has no term x.i.
func (p Polynomial) Coeff(i int) float64 {
	return p.terms[i]
}

// Contains is true if p has a non-zero term x.i.
func (p Polynomial) Contains(i int) bool {
	return !planar.Is0(p.terms[i])
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return p.combine(q, 1)
}

// Subtract returns p - q.
func (p Polynomial) Subtract(q Polynomial) Polynomial {
	return p.combine(q, -1)
}

// combine returns p + s·q.
func (p Polynomial) combine(q Polynomial, s float64) Polynomial {
	r := p.Copy()
	for i, a := range q.terms {
		r.terms[i] += s * a
	}
	return r.Zap()
}

// Scale returns c·p.
func (p Polynomial) Scale(c float64) Polynomial {
	r := p.Copy()
	for i, a := range r.terms {
		r.terms[i] = a * c
	}
	return r.Zap()
}

// Multiply returns p·q. One of both must be constant, otherwise the
// product is not linear and ErrNonConstantFactor is returned.
func (p Polynomial) Multiply(q Polynomial) (Polynomial, error) {
	if c, isconst := q.IsConstant(); isconst {
		return p.Scale(c), nil
	}
	if c, isconst := p.IsConstant(); isconst {
		return q.Scale(c), nil
	}
	return Polynomial{}, fmt.Errorf("%w: (%s)·(%s)", ErrNonConstantFactor, p, q)
}

// Divide returns p/q for a non-zero constant q.
func (p Polynomial) Divide(q Polynomial) (Polynomial, error) {
	c, isconst := q.IsConstant()
	if !isconst || planar.Is0(c) {
		return Polynomial{}, fmt.Errorf("%w: %s", ErrIllegalDivisor, q)
	}
	return p.Scale(1 / c), nil
}

// Zap removes all terms with coefficient ≈ 0 from p, in place, and sets a
// near-zero constant to 0. It returns p for chaining.
func (p Polynomial) Zap() Polynomial {
	if p.terms == nil {
		p.terms = make(map[int]float64)
	}
	for i, a := range p.terms {
		if planar.Is0(a) {
			delete(p.terms, i)
		}
	}
	if _, ok := p.terms[0]; !ok {
		p.terms[0] = 0
	}
	return p
}

// IsConstant returns the constant term of p and true, if p has no
// non-zero variable terms.
func (p Polynomial) IsConstant() (float64, bool) {
	for i, a := range p.terms {
		if i != 0 && !planar.Is0(a) {
			return p.Constant(), false
		}
	}
	return p.Constant(), true
}

// IsVariable returns the position i and true, if p = x.i.
func (p Polynomial) IsVariable() (int, bool) {
	if len(p.terms) == 2 && planar.Is0(p.Constant()) {
		i := p.Exponents()[1]
		if planar.Is1(p.terms[i]) {
			return i, true
		}
	}
	return -1, false
}

// IsValid is false for the zero value of Polynomial.
func (p Polynomial) IsValid() bool {
	return p.terms != nil
}

// maxCoeff finds the variable term of p with the largest absolute
// coefficient. Ties resolve to the lowest position. Returns position 0 if
// p is constant.
func (p Polynomial) maxCoeff() (int, float64) {
	var maxi int
	var maxa, coeff float64
	for _, i := range p.Exponents() {
		if i == 0 {
			continue
		}
		if a := p.terms[i]; math.Abs(a) > maxa {
			maxi, maxa, coeff = i, math.Abs(a), a
		}
	}
	return maxi, coeff
}

// substitute replaces x.i in p by q and returns the result. q must not
// contain x.i itself.
func (p Polynomial) substitute(i int, q Polynomial) Polynomial {
	a := p.Coeff(i)
	if planar.Is0(a) {
		return p.Copy()
	}
	r := p.Copy()
	delete(r.terms, i)
	return r.combine(q, a)
}

// String returns p with variables in generic form x.i.
func (p Polynomial) String() string {
	return p.TraceString(nil)
}

// TraceString returns p in readable form, with variable names taken from
// resolv. If resolv is nil, terms are printed as { a x.i }.
func (p Polynomial) TraceString(resolv VariableResolver) string {
	var b strings.Builder
	leading := true
	for _, i := range p.Exponents() {
		a := p.terms[i]
		if resolv == nil {
			if i == 0 {
				fmt.Fprintf(&b, "{ %g } ", planar.Round(a))
			} else {
				fmt.Fprintf(&b, "{ %g x.%d } ", planar.Round(a), i)
			}
			continue
		}
		if i == 0 {
			if !planar.Is0(a) {
				fmt.Fprintf(&b, "%g", planar.Round(a))
				leading = false
			}
			continue
		}
		switch {
		case leading && a < 0:
			b.WriteString("-")
		case !leading && a < 0:
			b.WriteString(" - ")
		case !leading:
			b.WriteString(" + ")
		}
		leading = false
		if !planar.Is1(math.Abs(a)) {
			fmt.Fprintf(&b, "%g", planar.Round(math.Abs(a)))
		}
		b.WriteString(resolv.GetVariableName(i))
	}
	return b.String()
}

// TraceStringVar returns the name of variable x.i. resolv may be nil.
func TraceStringVar(i int, resolv VariableResolver) string {
	if resolv == nil {
		return fmt.Sprintf("x.%d", i)
	}
	return resolv.GetVariableName(i)
}
