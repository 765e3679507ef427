package check

import "github.com/funvibe/henk/internal/term"

// Scenario is one of spec.md §8's named concrete examples, or the
// catalog-worthy equivalent found in original_source/'s REPL-style main.rs
// (SPEC_FULL.md §5): a fixed, hand-built term a caller can run without a
// concrete-syntax parser.
type Scenario struct {
	Name string
	Term term.Term
	// Doc is a one-line description, used by `cmd/henk list`.
	Doc string
}

// Scenarios returns the built-in catalog, in the order spec.md §8 lists
// them. cmd/henk's `run <name>` and `list` subcommands index into this
// slice; it is the only term source an external caller needs, since the
// concrete-syntax parser is out of this module's scope (spec.md §1, §6).
func Scenarios() []Scenario {
	natBody := term.Lam{
		Bound:  "Succ",
		Domain: term.Pi{Bound: "_", Domain: term.Var{Name: "Nat"}, Codomain: term.Var{Name: "Nat"}},
		Body: term.Lam{
			Bound:  "Zero",
			Domain: term.Var{Name: "Nat"},
			Body:   term.Var{Name: "Zero"},
		},
	}

	return []Scenario{
		{
			Name: "identity-universe",
			Doc:  "the identity function on Universe 0",
			Term: term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
		},
		{
			Name: "identity-universe-11",
			Doc:  "the identity function on Universe 11",
			Term: term.Lam{Bound: "x", Domain: term.Universe{Level: 11}, Body: term.Var{Name: "x"}},
		},
		{
			Name: "unknown-variable",
			Doc:  "a free variable with no binding: expected to fail to type-check",
			Term: term.Var{Name: "y"},
		},
		{
			Name: "not-a-function",
			Doc:  "applying a universe as if it were a function: expected to fail",
			Term: term.App{Fun: term.Universe{Level: 0}, Arg: term.Universe{Level: 0}},
		},
		{
			Name: "arg-type-mismatch",
			Doc:  "applying the Universe-0 identity to Universe 0 itself: expected to fail",
			Term: term.App{
				Fun: term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
				Arg: term.Universe{Level: 0},
			},
		},
		{
			Name: "church-zero",
			Doc:  "the Church-encoded natural number zero",
			Term: term.Lam{Bound: "Nat", Domain: term.Universe{Level: 0}, Body: natBody},
		},
		{
			Name: "capture-witness",
			Doc:  "subst(Lam(y, Universe 0, Var x), x, Var y) must rename the inner y",
			// This scenario's interesting value is not its type — its "x"
			// is free, so ordinary type synthesis just fails with
			// UnknownVariable — but the result of applying subst directly.
			// cmd/henk special-cases this scenario by name to print the
			// substituted term instead of synthesizing its type.
			Term: term.Lam{Bound: "y", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
		},
	}
}

// Lookup returns the named scenario, or ok=false if no such scenario
// exists.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
