package dpll

import "fmt"

// Describes the basic types the solver works on.

// Status is the status of a problem at a given moment.
type Status byte

const (
	// Indet means the problem is not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means the problem is satisfiable.
	Sat
	// Unsat means the problem is unsatisfiable.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		panic("invalid status")
	}
}

// A Literal pairs a variable with a polarity. Variables start at 0; thus the
// CNF literal 1 is the Literal {0, true} and -1 is {0, false}.
// Two literals are equal iff both fields match.
type Literal struct {
	Var int
	Pos bool
}

// IntToLit converts a non-null CNF literal to a Literal.
func IntToLit(i int) Literal {
	if i < 0 {
		return Literal{Var: -i - 1, Pos: false}
	}
	return Literal{Var: i - 1, Pos: true}
}

// Int returns the equivalent CNF literal.
func (l Literal) Int() int {
	if !l.Pos {
		return -l.Var - 1
	}
	return l.Var + 1
}

// Negation returns the literal on the same variable with the opposite polarity.
func (l Literal) Negation() Literal {
	return Literal{Var: l.Var, Pos: !l.Pos}
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", l.Int())
}

// A Value is the binding of one variable: free, false or true.
type Value byte

const (
	// Unassigned means the variable has no binding yet.
	Unassigned = Value(iota)
	// False means the variable is bound to false.
	False
	// True means the variable is bound to true.
	True
)

func (v Value) String() string {
	switch v {
	case Unassigned:
		return "UNASSIGNED"
	case False:
		return "FALSE"
	case True:
		return "TRUE"
	default:
		panic("invalid value")
	}
}

// An Assignment holds one Value per variable. Every literal of the formula
// it is solved against must reference a variable below its length; that is a
// caller invariant, not checked here.
type Assignment []Value

// NewAssignment returns an Assignment for nbVars variables, all unassigned.
func NewAssignment(nbVars int) Assignment {
	return make(Assignment, nbVars)
}

// Bind sets the binding for variable v, overwriting any previous one.
func (a Assignment) Bind(v int, pos bool) {
	if pos {
		a[v] = True
	} else {
		a[v] = False
	}
}

// FirstUnassigned returns the lowest variable with no binding, or -1 if all
// variables are bound.
func (a Assignment) FirstUnassigned() int {
	for v, val := range a {
		if val == Unassigned {
			return v
		}
	}
	return -1
}
