package term

import (
	"fmt"
	"strings"
)

// String renders t in the canonical diagnostic syntax of spec.md §6. It is
// used only for diagnostics; it need not round-trip through any parser.
func (u Universe) String() string {
	return fmt.Sprintf("Universe %d", u.Level)
}

func (v Var) String() string {
	return v.Name
}

func (a App) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(a.Fun.String())
	b.WriteByte(' ')
	b.WriteString(a.Arg.String())
	b.WriteByte(')')
	return b.String()
}

func (l Lam) String() string {
	var b strings.Builder
	b.WriteString("(\\")
	b.WriteString(l.Bound)
	b.WriteString(": ")
	b.WriteString(l.Domain.String())
	b.WriteString(". ")
	b.WriteString(l.Body.String())
	b.WriteByte(')')
	return b.String()
}

func (p Pi) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(p.Bound)
	b.WriteString(": ")
	b.WriteString(p.Domain.String())
	b.WriteString(") -> ")
	b.WriteString(p.Codomain.String())
	return b.String()
}
