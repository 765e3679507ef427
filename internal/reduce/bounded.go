package reduce

import (
	"errors"

	"github.com/funvibe/henk/internal/subst"
	"github.com/funvibe/henk/internal/term"
)

// ErrStepLimitExceeded is returned by NFBounded when normalization does not
// finish within the given step budget. spec.md §9 notes this as an
// optional production robustness addition, not part of the core NF
// contract: NF itself never returns an error and may diverge on ill-typed
// input.
var ErrStepLimitExceeded = errors.New("reduce: step limit exceeded")

// NFBounded behaves like NF but aborts with ErrStepLimitExceeded once more
// than maxSteps β-steps have been taken. maxSteps <= 0 means unbounded,
// equivalent to calling NF directly; the returned step count is always
// accurate up to the point reduction stopped.
func NFBounded(t term.Term, maxSteps int) (result term.Term, steps int, err error) {
	steps = 0
	var walk func(t term.Term, stack []term.Term) (term.Term, error)
	walk = func(t term.Term, stack []term.Term) (term.Term, error) {
		switch n := t.(type) {
		case term.App:
			return walk(n.Fun, append(stack, n.Arg))

		case term.Lam:
			if len(stack) == 0 {
				dom, err := walk(n.Domain, nil)
				if err != nil {
					return nil, err
				}
				body, err := walk(n.Body, nil)
				if err != nil {
					return nil, err
				}
				return term.Lam{Bound: n.Bound, Domain: dom, Body: body}, nil
			}
			steps++
			if maxSteps > 0 && steps > maxSteps {
				return nil, ErrStepLimitExceeded
			}
			top := len(stack) - 1
			reduced := subst.Subst(n.Body, n.Bound, stack[top])
			return walk(reduced, stack[:top])

		case term.Pi:
			dom, err := walk(n.Domain, nil)
			if err != nil {
				return nil, err
			}
			cod, err := walk(n.Codomain, nil)
			if err != nil {
				return nil, err
			}
			return applyStackErr(term.Pi{Bound: n.Bound, Domain: dom, Codomain: cod}, stack, walk)

		default:
			return applyStackErr(n, stack, walk)
		}
	}

	result, err = walk(t, nil)
	return result, steps, err
}

func applyStackErr(head term.Term, stack []term.Term, f func(term.Term, []term.Term) (term.Term, error)) (term.Term, error) {
	result := head
	for i := len(stack) - 1; i >= 0; i-- {
		normalized, err := f(stack[i], nil)
		if err != nil {
			return nil, err
		}
		result = term.App{Fun: result, Arg: normalized}
	}
	return result, nil
}
