/*
Package dpll implements the classical DPLL decision procedure for boolean
satisfiability over CNF formulas: unit propagation, pure literal elimination
and the recursive branch-and-backtrack search combining them.

Describing a problem

A problem can be described in several ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the following
content:

    p cnf 3 3
    1 2 3 0
    -1 2 -3 0
    -2 3 0

the programmer can create the Problem by doing:

    pb, err := dpll.ParseCNF(f)

2. create the equivalent list of list of literals. The problem above can be
created programmatically this way:

    pb, err := dpll.ParseSlice([][]int{
        {1, 2, 3},
        {-1, 2, -3},
        {-2, 3},
    })

3. build the Formula and the Assignment directly, using zero-based variables:

    f := dpll.Formula{
        {{Var: 0, Pos: true}, {Var: 1, Pos: true}, {Var: 2, Pos: true}},
        {{Var: 0, Pos: false}, {Var: 1, Pos: true}, {Var: 2, Pos: false}},
        {{Var: 1, Pos: false}, {Var: 2, Pos: true}},
    }
    a := dpll.NewAssignment(3)

Solving a problem

The Solve methods answer satisfiability and leave the witness in the
assignment:

    if pb.Solve() == dpll.Sat {
        model, _ := pb.Model()
        ...
    }

Solving consumes the problem: clauses and literals are deleted as the search
simplifies the formula, and branching assumptions are appended to it as unit
clauses. A caller needing the original formula afterward, for instance to
Verify the model against it, must take a Copy first.

The search is purely sequential and recursive, with one stack frame per
branching step; its depth is bounded by the number of variables. Instances
with very many variables can exhaust the goroutine stack, a limit this
implementation documents rather than works around.
*/
package dpll
