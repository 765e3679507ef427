// Package subst implements capture-avoiding substitution over term.Term
// (spec.md §4.2), the core's most delicate operation: it mixes plain
// structural recursion with on-demand α-renaming of binders whose bound
// name would otherwise capture a free name of the replacement.
package subst

import "github.com/funvibe/henk/internal/term"

// Subst returns t with every free occurrence of x replaced by u, renaming
// bound names in t as needed so no free name of u is captured.
func Subst(t term.Term, x string, u term.Term) term.Term {
	switch n := t.(type) {
	case term.Universe:
		return n

	case term.Var:
		if n.Name == x {
			return u
		}
		return n

	case term.App:
		return term.App{Fun: Subst(n.Fun, x, u), Arg: Subst(n.Arg, x, u)}

	case term.Lam:
		y, dom, body := substBinder(n.Bound, n.Domain, n.Body, x, u)
		return term.Lam{Bound: y, Domain: dom, Body: body}

	case term.Pi:
		y, dom, cod := substBinder(n.Bound, n.Domain, n.Codomain, x, u)
		return term.Pi{Bound: y, Domain: dom, Codomain: cod}

	default:
		panic("subst: unhandled term variant")
	}
}

// substBinder implements the shared Lam/Pi case of spec.md §4.2 rule 4: the
// domain is always substituted; the body is substituted only when the
// binder name differs from x, renaming the binder first if that would
// capture a free name of u.
func substBinder(y string, domain, body term.Term, x string, u term.Term) (string, term.Term, term.Term) {
	domain = Subst(domain, x, u)

	if y == x {
		// Inner occurrences of x refer to this binder, not the outer free
		// name: the body is left untouched.
		return y, domain, body
	}

	uFree := term.FreeVars(u)
	if !uFree.Has(y) {
		return y, domain, Subst(body, x, u)
	}

	fresh := freshen(y, term.FreeVars(body).Union(uFree))
	renamedBody := Subst(body, y, term.Var{Name: fresh})
	return fresh, domain, Subst(renamedBody, x, u)
}

// freshen finds a name not present in avoid, starting from base and
// appending "'" until the candidate is unused (spec.md §4.2 freshening
// policy).
func freshen(base string, avoid term.Set) string {
	candidate := base
	for {
		candidate += "'"
		if !avoid.Has(candidate) {
			return candidate
		}
	}
}
