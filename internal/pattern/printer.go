package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a debug form of p. This is a debug aid only (spec.md §1
// excludes pattern pretty-printing beyond debug aids from the core's
// scope) — it is never consulted by structural equality or any predicate.
func (e EVar) String() string { return "EVar(" + strconv.Itoa(int(e.ID)) + ")" }
func (s SVar) String() string { return "SVar(" + strconv.Itoa(int(s.ID)) + ")" }
func (s Symbol) String() string { return "Symbol(" + strconv.Itoa(int(s.ID)) + ")" }

func (i Implication) String() string {
	return "(" + i.Left.String() + " -> " + i.Right.String() + ")"
}

func (a Application) String() string {
	return "Application(" + a.Left.String() + ", " + a.Right.String() + ")"
}

func (e Exists) String() string {
	return fmt.Sprintf("Exists(%d, %s)", e.Var, e.Body.String())
}

func (m Mu) String() string {
	return fmt.Sprintf("Mu(%d, %s)", m.Var, m.Body.String())
}

func (m MetaVar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MetaVar(%d", m.ID)
	writeIdSet(&b, "e_fresh", m.EFresh)
	writeIdSet(&b, "s_fresh", m.SFresh)
	writeIdSet(&b, "positive", m.Positive)
	writeIdSet(&b, "negative", m.Negative)
	writeIdSet(&b, "app_ctx_holes", m.AppCtxHoles)
	b.WriteByte(')')
	return b.String()
}

func writeIdSet(b *strings.Builder, label string, s IdSet) {
	if s.Len() == 0 {
		return
	}
	fmt.Fprintf(b, ", %s=%v", label, s.Ids())
}

func (e ESubst) String() string {
	return fmt.Sprintf("ESubst(%s, %d, %s)", e.Body.String(), e.Var, e.Plug.String())
}

func (s SSubst) String() string {
	return fmt.Sprintf("SSubst(%s, %d, %s)", s.Body.String(), s.Var, s.Plug.String())
}
