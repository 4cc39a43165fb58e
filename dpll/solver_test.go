package dpll

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSimple(t *testing.T) {
	f := Formula{
		{{Var: 0, Pos: true}, {Var: 1, Pos: true}, {Var: 2, Pos: true}},
		{{Var: 0, Pos: false}, {Var: 1, Pos: true}, {Var: 2, Pos: false}},
		{{Var: 1, Pos: false}, {Var: 2, Pos: true}},
	}
	a := NewAssignment(3)

	assert.True(t, Solve(&f, a))
	assert.Equal(t, Assignment{True, True, True}, a)
}

func TestSolvePureHeavy(t *testing.T) {
	f := Formula{
		{{Var: 0, Pos: true}, {Var: 3, Pos: true}},
		{{Var: 0, Pos: true}, {Var: 2, Pos: false}, {Var: 5, Pos: false}},
		{{Var: 0, Pos: true}, {Var: 5, Pos: true}, {Var: 9, Pos: true}},
		{{Var: 1, Pos: true}, {Var: 8, Pos: true}},
		{{Var: 4, Pos: false}, {Var: 2, Pos: false}, {Var: 6, Pos: true}},
		{{Var: 4, Pos: false}, {Var: 5, Pos: true}, {Var: 6, Pos: false}},
		{{Var: 4, Pos: true}, {Var: 5, Pos: true}, {Var: 7, Pos: false}},
		{{Var: 4, Pos: true}, {Var: 7, Pos: true}, {Var: 9, Pos: false}},
	}
	orig := f.Copy()
	pb := NewProblem(f, 10)

	require.Equal(t, Sat, pb.Solve())
	model, err := pb.Model()
	require.NoError(t, err)
	assert.True(t, Verify(orig, model), "model does not satisfy the original formula")
}

func TestSolveUnsat(t *testing.T) {
	// Six clauses over three variables; full propagation reduces the
	// first two to a falsum before any branching happens.
	f := Formula{
		{{Var: 0, Pos: true}},
		{{Var: 0, Pos: false}},
		{{Var: 1, Pos: true}, {Var: 2, Pos: true}},
		{{Var: 1, Pos: true}, {Var: 2, Pos: false}},
		{{Var: 1, Pos: false}, {Var: 2, Pos: true}},
		{{Var: 1, Pos: false}, {Var: 2, Pos: false}},
	}
	a := NewAssignment(3)

	assert.False(t, Solve(&f, a))
}

// Brute force check of the unsat verdict: no total assignment over the three
// variables satisfies all clauses.
func TestSolveUnsatComplete(t *testing.T) {
	f := Formula{
		{{Var: 0, Pos: true}},
		{{Var: 0, Pos: false}},
		{{Var: 1, Pos: true}, {Var: 2, Pos: true}},
		{{Var: 1, Pos: true}, {Var: 2, Pos: false}},
		{{Var: 1, Pos: false}, {Var: 2, Pos: true}},
		{{Var: 1, Pos: false}, {Var: 2, Pos: false}},
	}
	for bits := 0; bits < 8; bits++ {
		model := []bool{bits&1 != 0, bits&2 != 0, bits&4 != 0}
		assert.False(t, Verify(f, model), "model %v should not satisfy the formula", model)
	}
}

// When the first branch of a node fails, only the polarity of the formula's
// last clause is retracted; every binding and rewrite the failed branch
// performed stays. The clause that is last at that point is not necessarily
// the branching assumption: here it is the recording clause of a pure
// literal eliminated inside the failed branch, so the flip retracts nothing
// and the retry runs on the failed branch's state. This pins the resulting
// verdict and bindings, which the no-restore contract produces even though
// the formula has models (checked by brute force below).
func TestSolveFlipOnLastClause(t *testing.T) {
	f := Formula{
		{{Var: 0, Pos: false}, {Var: 1, Pos: true}},
		{{Var: 0, Pos: false}, {Var: 1, Pos: false}},
		{{Var: 0, Pos: true}, {Var: 3, Pos: true}, {Var: 4, Pos: true}},
		{{Var: 3, Pos: false}, {Var: 4, Pos: false}},
	}
	orig := f.Copy()
	a := NewAssignment(5)

	assert.False(t, Solve(&f, a))
	assert.Equal(t, Assignment{True, False, Unassigned, False, Unassigned}, a)

	satisfiable := false
	for bits := 0; bits < 32; bits++ {
		model := make([]bool, 5)
		for v := range model {
			model[v] = bits&(1<<v) != 0
		}
		if Verify(orig, model) {
			satisfiable = true
			break
		}
	}
	assert.True(t, satisfiable)
}

func TestSolveEmptyFormula(t *testing.T) {
	f := Formula{}
	a := NewAssignment(2)

	assert.True(t, Solve(&f, a))
	assert.Equal(t, Assignment{Unassigned, Unassigned}, a)
}

func TestSolveEmptyClause(t *testing.T) {
	f := Formula{{}}
	a := NewAssignment(1)

	assert.False(t, Solve(&f, a))
}

func TestSolveDeterministic(t *testing.T) {
	mkProblem := func() *Problem {
		return NewProblem(Formula{
			{{Var: 0, Pos: true}, {Var: 1, Pos: true}, {Var: 2, Pos: true}},
			{{Var: 0, Pos: false}, {Var: 1, Pos: true}, {Var: 2, Pos: false}},
			{{Var: 1, Pos: false}, {Var: 2, Pos: true}},
		}, 3)
	}

	first := mkProblem()
	require.Equal(t, Sat, first.Solve())
	firstModel, err := first.Model()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		pb := mkProblem()
		require.Equal(t, Sat, pb.Solve())
		model, err := pb.Model()
		require.NoError(t, err)
		if diff := cmp.Diff(firstModel, model); diff != "" {
			t.Fatalf("witness differs between runs (-first +rerun):\n%s", diff)
		}
		assert.Equal(t, first.Stats, pb.Stats)
	}
}

func TestSolveStats(t *testing.T) {
	pb := NewProblem(Formula{
		{{Var: 0, Pos: true}, {Var: 1, Pos: true}, {Var: 2, Pos: true}},
		{{Var: 0, Pos: false}, {Var: 1, Pos: true}, {Var: 2, Pos: false}},
		{{Var: 1, Pos: false}, {Var: 2, Pos: true}},
	}, 3)

	require.Equal(t, Sat, pb.Solve())
	assert.Equal(t, 2, pb.Stats.NbDecisions)
	assert.Equal(t, 2, pb.Stats.MaxDepth)
	assert.Equal(t, 0, pb.Stats.NbPureLits)
}

func TestModelCompletesDontCares(t *testing.T) {
	// Variable 1 is never referenced: it stays unassigned and completes
	// to false in the model.
	pb := NewProblem(Formula{{{Var: 0, Pos: true}}}, 2)

	require.Equal(t, Sat, pb.Solve())
	assert.Equal(t, Unassigned, pb.Assign[1])
	model, err := pb.Model()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, model)
}

func TestModelBeforeSolve(t *testing.T) {
	pb := NewProblem(Formula{{{Var: 0, Pos: true}}}, 1)
	_, err := pb.Model()
	assert.Error(t, err)
}

func TestOutputModelBeforeSolve(t *testing.T) {
	pb := NewProblem(Formula{{{Var: 0, Pos: true}}}, 1)
	var out bytes.Buffer
	pb.OutputModel(&out)
	assert.Equal(t, "s INDETERMINATE\n", out.String())
}

func TestSolveAgainstFiles(t *testing.T) {
	tests := []struct {
		path     string
		expected Status
	}{
		{"testcnf/simple.cnf", Sat},
		{"testcnf/pure.cnf", Sat},
		{"testcnf/contradiction.cnf", Unsat},
	}
	for _, test := range tests {
		f, err := os.Open(test.path)
		if err != nil {
			t.Error(err.Error())
			continue
		}
		pb, err := ParseCNF(f)
		_ = f.Close()
		if err != nil {
			t.Error(err.Error())
			continue
		}
		orig := pb.Formula.Copy()
		if status := pb.Solve(); status != test.expected {
			t.Errorf("invalid result for %q: expected %v, got %v", test.path, test.expected, status)
		} else if status == Sat {
			model, err := pb.Model()
			if err != nil {
				t.Error(err.Error())
			} else if !Verify(orig, model) {
				t.Errorf("model for %q does not satisfy the formula", test.path)
			}
		}
	}
}
