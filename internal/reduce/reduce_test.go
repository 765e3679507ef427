package reduce_test

import (
	"testing"

	"github.com/funvibe/henk/internal/equiv"
	"github.com/funvibe/henk/internal/reduce"
	"github.com/funvibe/henk/internal/term"
)

func TestWHNFBetaStep(t *testing.T) {
	// (\x: Universe 0. x) (Universe 5) -> Universe 5
	redex := term.App{
		Fun: term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
		Arg: term.Universe{Level: 5},
	}
	got := reduce.WHNF(redex)
	if !equiv.Alpha(got, term.Universe{Level: 5}) {
		t.Errorf("WHNF(redex) = %v, want Universe 5", got)
	}
}

func TestWHNFLeavesLamWithEmptyStack(t *testing.T) {
	lam := term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}}
	got := reduce.WHNF(lam)
	if !equiv.Alpha(got, lam) {
		t.Errorf("WHNF(lam) = %v, want unchanged %v", got, lam)
	}
}

func TestWHNFDoesNotDescendUnderBinders(t *testing.T) {
	// \x: (\y: U0. y) U0 . x -- the redex in the domain is untouched by WHNF.
	inner := term.App{
		Fun: term.Lam{Bound: "y", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "y"}},
		Arg: term.Universe{Level: 0},
	}
	lam := term.Lam{Bound: "x", Domain: inner, Body: term.Var{Name: "x"}}
	got := reduce.WHNF(lam)
	gotLam, ok := got.(term.Lam)
	if !ok {
		t.Fatalf("WHNF(lam) is not a Lam: %v", got)
	}
	if !equiv.Alpha(gotLam.Domain, inner) {
		t.Errorf("WHNF reduced under the Lam's domain: %v", gotLam.Domain)
	}
}

func TestWHNFPreservesStuckSpineOrder(t *testing.T) {
	// x a b, with x a free variable: stuck, but the application order must
	// be preserved by the spine machine's stack replay.
	x := term.Var{Name: "x"}
	a := term.Var{Name: "a"}
	b := term.Var{Name: "b"}
	in := term.App{Fun: term.App{Fun: x, Arg: a}, Arg: b}
	got := reduce.WHNF(in)
	if !equiv.Alpha(got, in) {
		t.Errorf("WHNF(x a b) = %v, want unchanged %v", got, in)
	}
}

func TestNFNormalizesUnderBinders(t *testing.T) {
	inner := term.App{
		Fun: term.Lam{Bound: "y", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "y"}},
		Arg: term.Universe{Level: 0},
	}
	lam := term.Lam{Bound: "x", Domain: inner, Body: term.Var{Name: "x"}}
	got := reduce.NF(lam)
	want := term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}}
	if !equiv.Alpha(got, want) {
		t.Errorf("NF(lam) = %v, want %v", got, want)
	}
}

func TestNFNormalizesStuckArguments(t *testing.T) {
	x := term.Var{Name: "x"}
	redex := term.App{
		Fun: term.Lam{Bound: "y", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "y"}},
		Arg: term.Universe{Level: 0},
	}
	in := term.App{Fun: x, Arg: redex}
	got := reduce.NF(in)
	want := term.App{Fun: x, Arg: term.Universe{Level: 0}}
	if !equiv.Alpha(got, want) {
		t.Errorf("NF(x redex) = %v, want %v", got, want)
	}
}

func TestNFIdempotent(t *testing.T) {
	redex := term.App{
		Fun: term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
		Arg: term.Universe{Level: 5},
	}
	once := reduce.NF(redex)
	twice := reduce.NF(once)
	if !equiv.Alpha(once, twice) {
		t.Errorf("NF not idempotent: NF(t) = %v, NF(NF(t)) = %v", once, twice)
	}
}

func TestNFNormalizesPiDomainAndCodomain(t *testing.T) {
	redex := term.App{
		Fun: term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
		Arg: term.Universe{Level: 0},
	}
	pi := term.Pi{Bound: "y", Domain: redex, Codomain: redex}
	got := reduce.NF(pi)
	want := term.Pi{Bound: "y", Domain: term.Universe{Level: 0}, Codomain: term.Universe{Level: 0}}
	if !equiv.Alpha(got, want) {
		t.Errorf("NF(pi) = %v, want %v", got, want)
	}
}

func TestReductionPreservesBetaEquivalence(t *testing.T) {
	redex := term.App{
		Fun: term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}},
		Arg: term.Universe{Level: 5},
	}
	if !equiv.Beta(reduce.NF(redex), redex) {
		t.Errorf("NF(t) not β-equivalent to t")
	}
	if !equiv.Beta(reduce.WHNF(redex), redex) {
		t.Errorf("WHNF(t) not β-equivalent to t")
	}
}
