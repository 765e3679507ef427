// Package equiv implements α- and β-equivalence over term.Term (spec.md
// §4.4): structural equality up to consistent renaming of bound names, and
// equality up to full β-reduction.
package equiv

import (
	"github.com/funvibe/henk/internal/reduce"
	"github.com/funvibe/henk/internal/subst"
	"github.com/funvibe/henk/internal/term"
)

// Alpha reports whether t and u are equal up to renaming of bound names.
// Free variables must be literally equal; all other variant pairings
// (including a variant paired with itself at different universe levels)
// are unequal.
func Alpha(t, u term.Term) bool {
	switch a := t.(type) {
	case term.Universe:
		b, ok := u.(term.Universe)
		return ok && a.Level == b.Level

	case term.Var:
		b, ok := u.(term.Var)
		return ok && a.Name == b.Name

	case term.App:
		b, ok := u.(term.App)
		return ok && Alpha(a.Fun, b.Fun) && Alpha(a.Arg, b.Arg)

	case term.Lam:
		b, ok := u.(term.Lam)
		if !ok {
			return false
		}
		return Alpha(a.Domain, b.Domain) &&
			Alpha(a.Body, subst.Subst(b.Body, b.Bound, term.Var{Name: a.Bound}))

	case term.Pi:
		b, ok := u.(term.Pi)
		if !ok {
			return false
		}
		return Alpha(a.Domain, b.Domain) &&
			Alpha(a.Codomain, subst.Subst(b.Codomain, b.Bound, term.Var{Name: a.Bound}))

	default:
		panic("equiv: unhandled term variant")
	}
}

// Beta reports whether t and u reduce to α-equivalent normal forms.
// Reduction may diverge if t or u is ill-typed; Beta is only guaranteed to
// terminate when both arguments are well-typed terms of this calculus.
func Beta(t, u term.Term) bool {
	return Alpha(reduce.NF(t), reduce.NF(u))
}
