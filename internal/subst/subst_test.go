package subst_test

import (
	"testing"

	"github.com/funvibe/henk/internal/equiv"
	"github.com/funvibe/henk/internal/subst"
	"github.com/funvibe/henk/internal/term"
)

func TestSubstIdentity(t *testing.T) {
	// subst(t, x, Var x) ≡α t
	cases := []term.Term{
		term.Universe{Level: 2},
		term.Var{Name: "x"},
		term.App{Fun: term.Var{Name: "x"}, Arg: term.Var{Name: "x"}},
		term.Lam{Bound: "y", Domain: term.Var{Name: "x"}, Body: term.Var{Name: "y"}},
	}
	for _, c := range cases {
		got := subst.Subst(c, "x", term.Var{Name: "x"})
		if !equiv.Alpha(got, c) {
			t.Errorf("Subst(%v, x, Var x) = %v, want α-equivalent to %v", c, got, c)
		}
	}
}

func TestSubstNoOpWhenNotFree(t *testing.T) {
	in := term.Lam{Bound: "x", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}}
	got := subst.Subst(in, "y", term.Universe{Level: 9})
	if !equiv.Alpha(got, in) {
		t.Errorf("Subst with unused name changed the term: got %v", got)
	}
}

func TestSubstReplacesFreeOccurrence(t *testing.T) {
	in := term.Var{Name: "x"}
	got := subst.Subst(in, "x", term.Universe{Level: 3})
	if !equiv.Alpha(got, term.Universe{Level: 3}) {
		t.Errorf("Subst(x, x, Universe 3) = %v, want Universe 3", got)
	}
}

func TestSubstBinderShadowsReplacement(t *testing.T) {
	// subst(Lam(x, T, Var x), x, u) leaves the body untouched: the inner
	// x refers to the binder, not the outer free name.
	in := term.Lam{Bound: "x", Domain: term.Var{Name: "T"}, Body: term.Var{Name: "x"}}
	got := subst.Subst(in, "x", term.Universe{Level: 0})
	want := term.Lam{Bound: "x", Domain: term.Var{Name: "T"}, Body: term.Var{Name: "x"}}
	if !equiv.Alpha(got, want) {
		t.Errorf("Subst shadowed binder changed: got %v, want %v", got, want)
	}
}

// TestCaptureAvoidanceWitness is spec.md §8 scenario 7: substituting x by
// Var y inside Lam(y, Universe 0, Var x) must rename the inner y so it
// does not capture the replacement's free variable.
func TestCaptureAvoidanceWitness(t *testing.T) {
	in := term.Lam{Bound: "y", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "x"}}
	got := subst.Subst(in, "x", term.Var{Name: "y"})

	lam, ok := got.(term.Lam)
	if !ok {
		t.Fatalf("Subst result is not a Lam: %v", got)
	}
	if lam.Bound == "y" {
		t.Fatalf("binder was not renamed, capture occurred: %v", got)
	}
	want := term.Lam{Bound: lam.Bound, Domain: term.Universe{Level: 0}, Body: term.Var{Name: "y"}}
	if !equiv.Alpha(got, want) {
		t.Errorf("Subst capture-avoidance = %v, want α-equivalent to %v", got, want)
	}

	// And it must be α-equivalent to the canonical witness Lam("y'", ...).
	canonical := term.Lam{Bound: "y'", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "y"}}
	if !equiv.Alpha(got, canonical) {
		t.Errorf("Subst capture-avoidance = %v, want α-equivalent to %v", got, canonical)
	}
}

func TestFresheningAppendsUntilUnused(t *testing.T) {
	// Lam(y, T, Var x) substituted for x := Var y, where y' is already
	// free in the body: the freshening policy must keep appending quotes.
	in := term.Lam{
		Bound:  "y",
		Domain: term.Var{Name: "T"},
		Body:   term.App{Fun: term.Var{Name: "x"}, Arg: term.Var{Name: "y'"}},
	}
	got := subst.Subst(in, "x", term.Var{Name: "y"})
	lam, ok := got.(term.Lam)
	if !ok {
		t.Fatalf("Subst result is not a Lam: %v", got)
	}
	if lam.Bound == "y" || lam.Bound == "y'" {
		t.Fatalf("expected binder fresher than y and y', got %q", lam.Bound)
	}
}

func TestSubstAppDistributes(t *testing.T) {
	in := term.App{Fun: term.Var{Name: "x"}, Arg: term.Var{Name: "x"}}
	got := subst.Subst(in, "x", term.Universe{Level: 1})
	want := term.App{Fun: term.Universe{Level: 1}, Arg: term.Universe{Level: 1}}
	if !equiv.Alpha(got, want) {
		t.Errorf("Subst(App) = %v, want %v", got, want)
	}
}

func TestSubstAlphaSoundness(t *testing.T) {
	// If t ≡α t' and u ≡α u', then subst(t,x,u) ≡α subst(t',x,u').
	t1 := term.Lam{Bound: "a", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "a"}}
	t2 := term.Lam{Bound: "b", Domain: term.Universe{Level: 0}, Body: term.Var{Name: "b"}}
	u1 := term.Var{Name: "z"}
	u2 := term.Var{Name: "z"}

	got1 := subst.Subst(t1, "x", u1)
	got2 := subst.Subst(t2, "x", u2)
	if !equiv.Alpha(got1, got2) {
		t.Errorf("Subst not α-sound: %v vs %v", got1, got2)
	}
}
