package dpll

// Propagate performs one round of unit propagation on f, in place.
// It returns whether the round modified the formula.
//
// All current unit clauses are collected and bound before any clause is
// rewritten. Two units of the same round disagreeing on one variable are not
// detected: the later one overwrites the earlier binding. Then, for each unit,
// every clause satisfied by the binding is removed and every literal falsified
// by it is removed from its clause. A clause shrinking to nothing stays in the
// formula; the caller discovers the conflict there.
func Propagate(f *Formula, a Assignment) bool {
	var units []Literal
	for _, c := range *f {
		if c.Unit() {
			a.Bind(c[0].Var, c[0].Pos)
			units = append(units, c[0])
		}
	}
	if len(units) == 0 {
		return false
	}
	changed := false
	for _, unit := range units {
		i := 0
		for i < len(*f) {
			c := (*f)[i]
			satisfied := false
			j := 0
			for j < len(c) {
				lit := c[j]
				if lit.Var == unit.Var {
					changed = true
					if lit.Pos == unit.Pos {
						satisfied = true
						break
					}
					c = append(c[:j], c[j+1:]...)
					(*f)[i] = c
					continue
				}
				j++
			}
			if satisfied {
				*f = append((*f)[:i], (*f)[i+1:]...)
			} else {
				i++
			}
		}
	}
	return changed
}

// PropagateAll repeats Propagate until a round leaves the formula untouched.
// It returns the number of rounds that modified it.
func PropagateAll(f *Formula, a Assignment) int {
	rounds := 0
	for Propagate(f, a) {
		rounds++
	}
	return rounds
}
