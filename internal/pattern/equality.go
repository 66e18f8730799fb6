package pattern

// Equal is deep structural equality, ported from
// original_source/cpp/src/lib.hpp:150-182 (Pattern::operator==). Two
// patterns are equal only if they have the same Kind and every
// corresponding field compares equal, recursively; there is no
// canonicalization or alpha-equivalence.
func Equal(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case EVar:
		return x.ID == b.(EVar).ID
	case SVar:
		return x.ID == b.(SVar).ID
	case Symbol:
		return x.ID == b.(Symbol).ID
	case Implication:
		y := b.(Implication)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Application:
		y := b.(Application)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Exists:
		y := b.(Exists)
		return x.Var == y.Var && Equal(x.Body, y.Body)
	case Mu:
		y := b.(Mu)
		return x.Var == y.Var && Equal(x.Body, y.Body)
	case MetaVar:
		y := b.(MetaVar)
		return x.ID == y.ID &&
			x.EFresh.Equal(y.EFresh) &&
			x.SFresh.Equal(y.SFresh) &&
			x.Positive.Equal(y.Positive) &&
			x.Negative.Equal(y.Negative) &&
			x.AppCtxHoles.Equal(y.AppCtxHoles)
	case ESubst:
		y := b.(ESubst)
		return x.Var == y.Var && Equal(x.Body, y.Body) && Equal(x.Plug, y.Plug)
	case SSubst:
		y := b.(SSubst)
		return x.Var == y.Var && Equal(x.Body, y.Body) && Equal(x.Plug, y.Plug)
	default:
		return false
	}
}

func (e EVar) Equal(other Pattern) bool        { return Equal(e, other) }
func (s SVar) Equal(other Pattern) bool        { return Equal(s, other) }
func (s Symbol) Equal(other Pattern) bool      { return Equal(s, other) }
func (i Implication) Equal(other Pattern) bool { return Equal(i, other) }
func (a Application) Equal(other Pattern) bool { return Equal(a, other) }
func (e Exists) Equal(other Pattern) bool      { return Equal(e, other) }
func (m Mu) Equal(other Pattern) bool          { return Equal(m, other) }
func (m MetaVar) Equal(other Pattern) bool     { return Equal(m, other) }
func (e ESubst) Equal(other Pattern) bool      { return Equal(e, other) }
func (s SSubst) Equal(other Pattern) bool      { return Equal(s, other) }
