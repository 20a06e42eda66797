package polyn

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddEq(t *testing.T, leq *LinEqSolver, p Polynomial) {
	t.Helper()
	require.NoError(t, leq.AddEq(p))
}

func TestLEQSolveSingle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	r := letters{}
	leq.SetVariableResolver(r)
	mustAddEq(t, leq, mustNew(t, 1, X{1, 2})) // 0 = 1 + 2a
	assert.InDelta(t, -0.5, r[1], 1e-9)
	v, ok := leq.Value(1)
	assert.True(t, ok)
	assert.InDelta(t, -0.5, v, 1e-9)
}

func TestLEQPartiallySolved(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	r := letters{}
	leq.SetVariableResolver(r)
	mustAddEq(t, leq, mustNew(t, 100, X{1, -2}))          // 2a = 100
	mustAddEq(t, leq, mustNew(t, 100, X{2, -1}, X{3, -1})) // b + c = 100
	assert.InDelta(t, 50.0, r[1], 1e-9)
	_, ok := leq.Value(2)
	assert.False(t, ok)
	_, ok = leq.Value(3)
	assert.False(t, ok)
	// exactly one of b, c depends on the other
	_, depb := leq.Dependency(2)
	_, depc := leq.Dependency(3)
	assert.True(t, depb != depc)
}

func TestLEQDeferredSolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	r := letters{}
	leq.SetVariableResolver(r)
	mustAddEq(t, leq, mustNew(t, 100, X{2, -1}, X{3, -1}))       // b + c = 100
	mustAddEq(t, leq, mustNew(t, 0, X{1, 2}, X{2, -1}, X{3, -1})) // 2a = b + c
	assert.InDelta(t, 50.0, r[1], 1e-9)
}

func TestLEQInconsistent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	mustAddEq(t, leq, mustNew(t, 100, X{1, -1})) // a = 100
	err := leq.AddEq(mustNew(t, 99, X{1, -2}))  // 2a = 99
	assert.True(t, errors.Is(err, ErrInconsistentEquation))
	v, _ := leq.Value(1)
	assert.Equal(t, 100.0, v, "failed equation must not change the system")
}

func TestLEQEliminationSolvesRemaining(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	r := letters{}
	leq.SetVariableResolver(r)
	mustAddEq(t, leq, mustNew(t, 100, X{1, -1}))                        // a = 100
	mustAddEq(t, leq, mustNew(t, 0, X{1, 2}, X{2, -1}, X{3, 1}, X{4, 4})) // 2a = b - c - 4d
	mustAddEq(t, leq, mustNew(t, 0, X{2, 1}, X{3, -1}))                 // b = c
	d, ok := r[4]
	if !ok {
		var buf bytes.Buffer
		leq.Dump(&buf)
		t.Fatalf("d still unsolved:\n%s", buf.String())
	}
	assert.InDelta(t, -50.0, d, 1e-9)
}

func TestLEQDependentsStayFree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	leq.SetVariableResolver(letters{})
	mustAddEq(t, leq, mustNew(t, 0, X{2, -1}, X{3, 1}))                 // b = c
	mustAddEq(t, leq, mustNew(t, 0, X{3, -1}, X{4, 1}))                 // c = d
	mustAddEq(t, leq, mustNew(t, 0, X{4, -1}, X{2, 1}))                 // d = b, redundant
	mustAddEq(t, leq, mustNew(t, 0, X{1, -1}, X{2, 1}, X{3, 1}, X{4, 1})) // a = b + c + d
	// one variable stays free, the other three are multiples of it
	free := 0
	for i := 1; i <= 4; i++ {
		q, dep := leq.Dependency(i)
		if !dep {
			free++
			continue
		}
		for j := 1; j <= 4; j++ {
			if q.Contains(j) {
				_, jdep := leq.Dependency(j)
				assert.False(t, jdep, "%s depends on dependent %s", leq.VarString(i), leq.VarString(j))
			}
		}
	}
	assert.Equal(t, 1, free)
	if q, dep := leq.Dependency(4); dep && q.Contains(1) {
		assert.InDelta(t, 1.0/3.0, q.Coeff(1), 1e-7) // d = a/3
	}
}

func TestLEQChainedDependents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	r := letters{}
	leq.SetVariableResolver(r)
	// a = 0, a + 4b + c = 6, b + 4c + d = 12, d = 0
	err := leq.AddEqs([]Polynomial{
		mustNew(t, 0, X{1, 1}),
		mustNew(t, -6, X{1, 1}, X{2, 4}, X{3, 1}),
		mustNew(t, -12, X{2, 1}, X{3, 4}, X{4, 1}),
		mustNew(t, 0, X{4, 1}),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r[1], 1e-7)
	assert.InDelta(t, 0.8, r[2], 1e-7)
	assert.InDelta(t, 2.8, r[3], 1e-7)
	assert.InDelta(t, 0.0, r[4], 1e-7)
	assert.Len(t, leq.Solved(), 4)
}

func TestLEQEmptyList(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	err := NewLinEqSolver().AddEqs(nil)
	assert.True(t, errors.Is(err, ErrEmptyEquationList))
}

func TestLEQDoesNotMutateEquation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	mustAddEq(t, leq, mustNew(t, 2, X{2, -1})) // b = 2
	p := mustNew(t, 6, X{1, -1}, X{2, -1})
	before := p.Copy()
	mustAddEq(t, leq, p)
	assert.Equal(t, before, p)
	v, _ := leq.Value(1)
	assert.InDelta(t, 4.0, v, 1e-9)
}

func TestLEQDump(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	leq.SetVariableResolver(letters{})
	mustAddEq(t, leq, mustNew(t, 6, X{1, -1}, X{2, -1})) // a + b = 6
	mustAddEq(t, leq, mustNew(t, 3, X{3, -1}))          // c = 3
	var buf bytes.Buffer
	leq.Dump(&buf)
	assert.Equal(t, "Dependents:\n\ta = 6 - b\nSolved:\n\tc = 3\n", buf.String())
}
