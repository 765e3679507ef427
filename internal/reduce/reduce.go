// Package reduce implements weak-head and full β-normalization (spec.md
// §4.3) via a spine machine: descend the left spine of a chain of
// applications while maintaining an explicit stack of pending arguments,
// rather than reducing App nodes pairwise from the outside in.
package reduce

import (
	"github.com/funvibe/henk/internal/subst"
	"github.com/funvibe/henk/internal/term"
)

// WHNF reduces t to weak head normal form: only β-redexes at the head are
// reduced. Arguments and the bodies of unapplied lambdas are left
// untouched. Reduction is call-by-name: an argument is substituted
// unevaluated.
func WHNF(t term.Term) term.Term {
	return whnf(t, nil)
}

// whnf descends the spine of t, collecting pending arguments onto stack
// (last element = next argument to apply, i.e. the one closest to the
// head in the original left-to-right application chain).
func whnf(t term.Term, stack []term.Term) term.Term {
	switch n := t.(type) {
	case term.App:
		return whnf(n.Fun, append(stack, n.Arg))

	case term.Lam:
		if len(stack) == 0 {
			return n
		}
		top := len(stack) - 1
		arg := stack[top]
		return whnf(subst.Subst(n.Body, n.Bound, arg), stack[:top])

	default:
		// Var, Pi, Universe: the head is a value in this position; replay
		// the stack back onto it, left-to-right, unreduced.
		return applyStack(n, stack, func(a term.Term) term.Term { return a })
	}
}

// NF reduces t to full normal form: the same spine machine as WHNF, but it
// additionally normalizes under every binder and every unreduced
// subterm (stack entries, Pi domain/codomain, Lam domain/body).
func NF(t term.Term) term.Term {
	return nf(t, nil)
}

func nf(t term.Term, stack []term.Term) term.Term {
	switch n := t.(type) {
	case term.App:
		return nf(n.Fun, append(stack, n.Arg))

	case term.Lam:
		if len(stack) == 0 {
			return term.Lam{Bound: n.Bound, Domain: NF(n.Domain), Body: NF(n.Body)}
		}
		top := len(stack) - 1
		arg := stack[top]
		return nf(subst.Subst(n.Body, n.Bound, arg), stack[:top])

	case term.Pi:
		head := term.Pi{Bound: n.Bound, Domain: NF(n.Domain), Codomain: NF(n.Codomain)}
		return applyStack(head, stack, NF)

	default:
		// Var, Universe.
		return applyStack(n, stack, NF)
	}
}

// applyStack rebuilds App(...App(App(head, f(stack[last])), f(stack[last-1])), ...)
// i.e. it replays the stack back onto head in its original left-to-right
// order (stack[last] was the first-encountered, innermost argument),
// running f over each entry as it goes.
func applyStack(head term.Term, stack []term.Term, f func(term.Term) term.Term) term.Term {
	result := head
	for i := len(stack) - 1; i >= 0; i-- {
		result = term.App{Fun: result, Arg: f(stack[i])}
	}
	return result
}
