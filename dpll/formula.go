package dpll

import (
	"fmt"
	"strings"
)

// A Clause is a list of Literal, interpreted as their disjunction.
// An empty clause is a falsified constraint.
// Removing a literal keeps the relative order of the remaining ones.
type Clause []Literal

// Unit is true iff the clause holds exactly one literal.
func (c Clause) Unit() bool {
	return len(c) == 1
}

// Contains reports whether the clause holds exactly the given literal,
// i.e same variable and same polarity.
func (c Clause) Contains(l Literal) bool {
	for _, lit := range c {
		if lit == l {
			return true
		}
	}
	return false
}

// CNF returns a DIMACS CNF representation of the clause.
func (c Clause) CNF() string {
	vals := make([]string, len(c)+1)
	for i, lit := range c {
		vals[i] = fmt.Sprintf("%d", lit.Int())
	}
	vals[len(c)] = "0"
	return strings.Join(vals, " ")
}

// A Formula is a list of Clause, interpreted as their conjunction.
// An empty formula is trivially satisfied.
// Clause order is irrelevant to meaning but preserved by all rewrites.
type Formula []Clause

// HasEmptyClause reports whether any clause was rewritten down to nothing,
// i.e whether the current bindings falsify the formula.
func (f Formula) HasEmptyClause() bool {
	for _, c := range f {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// CNF returns a DIMACS CNF representation of the formula.
func (f Formula) CNF(nbVars int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", nbVars, len(f))
	for _, c := range f {
		fmt.Fprintf(&sb, "%s\n", c.CNF())
	}
	return sb.String()
}

// Copy returns a deep copy of the formula. Solving consumes the formula it
// is given, so callers needing the original afterward copy it first.
func (f Formula) Copy() Formula {
	res := make(Formula, len(f))
	for i, c := range f {
		res[i] = make(Clause, len(c))
		copy(res[i], c)
	}
	return res
}
