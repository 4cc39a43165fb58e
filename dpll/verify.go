package dpll

import "github.com/samber/lo"

// Verify reports whether model satisfies f, i.e whether every clause of f
// holds at least one literal the model makes true. The model must bind every
// variable f references. Typically f is a Copy of a formula taken before
// solving it, and model the one returned by Problem.Model.
func Verify(f Formula, model []bool) bool {
	return lo.EveryBy(f, func(c Clause) bool {
		return lo.SomeBy(c, func(lit Literal) bool {
			return model[lit.Var] == lit.Pos
		})
	})
}
