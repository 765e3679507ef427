// Package check implements type synthesis (spec.md §4.5): computing the
// type of a term in a typing context, recursively invoking substitution to
// open dependent products and WHNF to expose function types, and
// β-equivalence to compare argument types against declared domains.
//
// Grounded on internal/analyzer/inference.go's per-pass context object and
// internal/analyzer/inference_calls.go's App synthesis shape (synthesize
// the callee, expose its function type, synthesize and compare the
// argument) from the teacher.
package check

import (
	"github.com/funvibe/henk/internal/config"
	"github.com/funvibe/henk/internal/equiv"
	"github.com/funvibe/henk/internal/reduce"
	"github.com/funvibe/henk/internal/subst"
	"github.com/funvibe/henk/internal/term"
)

// Check synthesizes the type of t in an empty context using default
// settings (both open questions resolved the principled way). It is the
// spec.md §6 check() entry point.
func Check(t term.Term) (term.Term, error) {
	return Synthesize(t, term.Context{}, config.Default())
}

// Synthesize computes the type of t in ctx under cfg, or a *TypeError.
// Every Term has at most one type modulo β-equivalence under a given
// context; this is inference, not checking against an expected type.
func Synthesize(t term.Term, ctx term.Context, cfg config.Settings) (term.Term, error) {
	switch n := t.(type) {
	case term.Universe:
		return term.Universe{Level: n.Level + 1}, nil

	case term.Var:
		typ, ok := ctx.Lookup(n.Name)
		if !ok {
			return nil, NewUnknownVariable(n.Name)
		}
		return typ, nil

	case term.App:
		return synthApp(n, ctx, cfg)

	case term.Lam:
		return synthLam(n, ctx, cfg)

	case term.Pi:
		return synthPi(n, ctx, cfg)

	default:
		panic("check: unhandled term variant")
	}
}

func synthApp(a term.App, ctx term.Context, cfg config.Settings) (term.Term, error) {
	funType, err := Synthesize(a.Fun, ctx, cfg)
	if err != nil {
		return nil, err
	}
	funHead := reduce.WHNF(funType)

	pi, ok := funHead.(term.Pi)
	if !ok {
		return nil, NewNotAFunction(funHead)
	}

	argType, err := Synthesize(a.Arg, ctx, cfg)
	if err != nil {
		return nil, err
	}

	if !equiv.Beta(argType, pi.Domain) {
		return nil, NewArgTypeMismatch(pi.Domain, argType)
	}

	return subst.Subst(pi.Codomain, pi.Bound, a.Arg), nil
}

func synthLam(l term.Lam, ctx term.Context, cfg config.Settings) (term.Term, error) {
	domType, err := Synthesize(l.Domain, ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.LamDomainCheck == config.RulePrincipled {
		if _, ok := reduce.WHNF(domType).(term.Universe); !ok {
			return nil, NewNotAUniverseDomain(domType)
		}
	}
	// Reference mode: type_of(τ, Γ) is checked only for the side effect of
	// succeeding; its result (domType) is otherwise discarded here, per
	// spec.md §7.

	bodyType, err := Synthesize(l.Body, ctx.Extend(l.Bound, l.Domain), cfg)
	if err != nil {
		return nil, err
	}
	return term.Pi{Bound: l.Bound, Domain: l.Domain, Codomain: bodyType}, nil
}

func synthPi(p term.Pi, ctx term.Context, cfg config.Settings) (term.Term, error) {
	domType, err := Synthesize(p.Domain, ctx, cfg)
	if err != nil {
		return nil, err
	}
	codCtx := ctx.Extend(p.Bound, p.Domain)
	codType, err := Synthesize(p.Codomain, codCtx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.PiRule == config.RuleReference {
		return term.Pi{Bound: p.Bound, Domain: p.Domain, Codomain: p.Codomain}, nil
	}

	domUniv, ok := reduce.WHNF(domType).(term.Universe)
	if !ok {
		return nil, NewNotAUniverseDomain(domType)
	}
	codUniv, ok := reduce.WHNF(codType).(term.Universe)
	if !ok {
		return nil, NewNotAUniverseDomain(codType)
	}
	level := domUniv.Level
	if codUniv.Level > level {
		level = codUniv.Level
	}
	return term.Universe{Level: level}, nil
}
