package dpll

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions    int // How many branch points were opened
	NbPropagations int // How many propagation rounds modified the formula
	NbPureLits     int // How many pure literals were eliminated
	MaxDepth       int // Deepest search node reached
}

// A solver carries the state shared by one whole search tree: the formula,
// the assignment and the running statistics. Both structures are rewritten
// in place at every node; nothing is copied and nothing is restored when a
// branch fails, except the polarity of the branch's own assumption.
type solver struct {
	f     *Formula
	a     Assignment
	stats *Stats
	depth int
}

// search is the DPLL recursion. It simplifies the formula by unit
// propagation and pure literal elimination, checks the two terminal shapes,
// then branches on the lowest unassigned variable.
//
// The assumption of step 4 is pushed as a unit clause rather than through a
// dedicated mechanism: the next propagation round discharges it like any
// other unit. When the first branch fails, only that assumption is
// retracted, by flipping the first literal of the last clause to false;
// every other rewrite performed while the branch was explored stays.
func (s *solver) search() bool {
	s.stats.NbPropagations += PropagateAll(s.f, s.a)
	s.stats.NbPureLits += EliminatePure(s.f, s.a)

	if len(*s.f) == 0 {
		return true
	}
	if s.f.HasEmptyClause() {
		return false
	}

	v := s.a.FirstUnassigned()
	if v == -1 {
		panic("all variables assigned, yet the formula is not empty")
	}

	s.stats.NbDecisions++
	s.depth++
	if s.depth > s.stats.MaxDepth {
		s.stats.MaxDepth = s.depth
	}

	*s.f = append(*s.f, Clause{{Var: v, Pos: true}})
	if s.search() {
		return true
	}

	(*s.f)[len(*s.f)-1][0].Pos = false
	res := s.search()
	s.depth--
	return res
}

// Solve runs the DPLL procedure on f under a and reports satisfiability.
// Both f and a are destructively consumed: clauses and literals are removed
// as the search simplifies the formula, and assumption clauses are appended
// as it branches. On success, a holds a satisfying valuation for every
// variable the search touched; a variable no clause ever constrained may
// stay unassigned and can be completed arbitrarily.
func Solve(f *Formula, a Assignment) bool {
	var stats Stats
	s := solver{f: f, a: a, stats: &stats}
	return s.search()
}

// A Problem is a CNF formula over a fixed number of variables, together with
// the assignment built while solving it.
type Problem struct {
	NbVars  int        // Total nb of vars
	Formula Formula    // The clauses to satisfy; consumed by Solve
	Assign  Assignment // One binding per var, filled in by Solve
	Status  Status     // Result of the last Solve call, Indet before that
	Stats   Stats      // Statistics about the solving process
}

// NewProblem returns a Problem over nbVars variables, all unassigned.
func NewProblem(f Formula, nbVars int) *Problem {
	return &Problem{
		NbVars:  nbVars,
		Formula: f,
		Assign:  NewAssignment(nbVars),
	}
}

// Solve runs the DPLL procedure on the problem and returns its status,
// either Sat or Unsat. The problem's formula and assignment are
// destructively consumed; callers needing the original formula afterward
// must keep a Copy.
func (pb *Problem) Solve() Status {
	s := solver{f: &pb.Formula, a: pb.Assign, stats: &pb.Stats}
	if s.search() {
		pb.Status = Sat
	} else {
		pb.Status = Unsat
	}
	return pb.Status
}

// Model returns a total satisfying valuation for the problem.
// Variables the search left unassigned are unconstrained; they complete to
// false. It is an error to ask for a model before Solve returned Sat.
func (pb *Problem) Model() ([]bool, error) {
	if pb.Status != Sat {
		return nil, fmt.Errorf("cannot provide a model: status is %v", pb.Status)
	}
	model := make([]bool, pb.NbVars)
	for v, val := range pb.Assign {
		model[v] = val == True
	}
	return model, nil
}

// OutputModel writes the problem's status on w in the DIMACS output format,
// followed by a model line when the problem is satisfiable.
func (pb *Problem) OutputModel(w io.Writer) {
	model, err := pb.Model()
	if err != nil {
		fmt.Fprintf(w, "s %v\n", pb.Status)
		return
	}
	line := lo.Map(model, func(pos bool, v int) string {
		return fmt.Sprintf("%d", Literal{Var: v, Pos: pos}.Int())
	})
	fmt.Fprintf(w, "s %v\nv %s 0\n", pb.Status, strings.Join(line, " "))
}
