package dpll

// purity returns the polarity with which variable v occurs in f, if v occurs
// with that one polarity only. A variable that does not occur at all, or that
// occurs with both polarities, is not pure.
func purity(v int, f Formula) (pos, pure bool) {
	seen := false
	val := false
	for _, c := range f {
		for _, lit := range c {
			if lit.Var != v {
				continue
			}
			if seen {
				if val != lit.Pos {
					return false, false
				}
			} else {
				seen = true
				val = lit.Pos
			}
		}
	}
	return val, seen
}

// EliminatePure binds every unassigned pure variable of f to its single
// polarity and removes the clauses that binding satisfies. No literal-level
// rewrite is needed: by purity, no remaining clause holds the opposite
// polarity. Each binding is recorded as a unit clause appended to f, so the
// next propagation round can discharge it.
//
// Variables are examined once each, in ascending order; the caller invokes
// this once per search node rather than iterating it to a fixpoint.
// It returns the number of variables eliminated.
func EliminatePure(f *Formula, a Assignment) int {
	eliminated := 0
	for v := range a {
		if a[v] != Unassigned {
			continue
		}
		pos, pure := purity(v, *f)
		if !pure {
			continue
		}
		a.Bind(v, pos)
		lit := Literal{Var: v, Pos: pos}
		i := 0
		for i < len(*f) {
			if (*f)[i].Contains(lit) {
				*f = append((*f)[:i], (*f)[i+1:]...)
			} else {
				i++
			}
		}
		*f = append(*f, Clause{lit})
		eliminated++
	}
	return eliminated
}
