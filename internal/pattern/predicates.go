package pattern

// EFresh reports whether x does not occur free as an element variable in p.
// Ported from original_source/cpp/src/lib.hpp:186-229 (pattern_e_fresh).
func EFresh(p Pattern, x Id) bool {
	switch v := p.(type) {
	case EVar:
		return v.ID != x
	case SVar, Symbol:
		return true
	case Implication:
		return EFresh(v.Left, x) && EFresh(v.Right, x)
	case Application:
		return EFresh(v.Left, x) && EFresh(v.Right, x)
	case Exists:
		return v.Var == x || EFresh(v.Body, x)
	case Mu:
		return EFresh(v.Body, x)
	case MetaVar:
		return v.EFresh.Contains(x)
	case ESubst:
		// Assumes well-formedness: the plug occurs in the result.
		if x == v.Var {
			return EFresh(v.Plug, x)
		}
		return EFresh(v.Body, x) && EFresh(v.Plug, x)
	case SSubst:
		return EFresh(v.Body, x) && EFresh(v.Plug, x)
	default:
		return false
	}
}

// SFresh reports whether X does not occur free as a set variable in p.
// Ported from original_source/cpp/src/lib.hpp:231-271 (pattern_s_fresh).
func SFresh(p Pattern, x Id) bool {
	switch v := p.(type) {
	case EVar:
		return true
	case SVar:
		return v.ID != x
	case Symbol:
		return true
	case Implication:
		return SFresh(v.Left, x) && SFresh(v.Right, x)
	case Application:
		return SFresh(v.Left, x) && SFresh(v.Right, x)
	case Exists:
		return SFresh(v.Body, x)
	case Mu:
		return v.Var == x || SFresh(v.Body, x)
	case MetaVar:
		return v.SFresh.Contains(x)
	case ESubst:
		return SFresh(v.Body, x) && SFresh(v.Plug, x)
	case SSubst:
		if x == v.Var {
			return SFresh(v.Plug, x)
		}
		return SFresh(v.Body, x) && SFresh(v.Plug, x)
	default:
		return false
	}
}

// Positive reports whether set variable x occurs only positively in p.
// Ported from original_source/cpp/src/lib.hpp:273-307 (pattern_positive).
func Positive(p Pattern, x Id) bool {
	switch v := p.(type) {
	case EVar, SVar, Symbol:
		return true
	case MetaVar:
		return v.Positive.Contains(x)
	case Implication:
		return Negative(v.Left, x) && Positive(v.Right, x)
	case Application:
		return Positive(v.Left, x) && Positive(v.Right, x)
	case Exists:
		return Positive(v.Body, x)
	case Mu:
		return v.Var == x || Positive(v.Body, x)
	case ESubst:
		// Best-effort approximation, per spec.
		return Positive(v.Body, x) && SFresh(v.Plug, x)
	case SSubst:
		plugPositive := SFresh(v.Plug, x) ||
			(Positive(v.Body, v.Var) && Positive(v.Plug, x)) ||
			(Negative(v.Body, v.Var) && Negative(v.Plug, x))
		if x == v.Var {
			return plugPositive
		}
		return Positive(v.Body, x) && plugPositive
	default:
		return false
	}
}

// Negative reports whether set variable x occurs only negatively in p.
// Ported from original_source/cpp/src/lib.hpp:309-345 (pattern_negative).
func Negative(p Pattern, x Id) bool {
	switch v := p.(type) {
	case EVar:
		return true
	case SVar:
		return v.ID != x
	case Symbol:
		return true
	case MetaVar:
		return v.Negative.Contains(x)
	case Implication:
		return Positive(v.Left, x) && Negative(v.Right, x)
	case Application:
		return Negative(v.Left, x) && Negative(v.Right, x)
	case Exists:
		// Conservative approximation (see DESIGN.md Open Question 2):
		// negativity under an existential uses freshness, not a recursive
		// negativity check.
		return SFresh(v.Body, x)
	case Mu:
		return v.Var == x || Negative(v.Body, x)
	case ESubst:
		return Negative(v.Body, x) && SFresh(v.Plug, x)
	case SSubst:
		plugNegative := SFresh(v.Plug, x) ||
			(Positive(v.Body, v.Var) && Negative(v.Plug, x)) ||
			(Negative(v.Body, v.Var) && Positive(v.Plug, x))
		if x == v.Var {
			return plugNegative
		}
		return Negative(v.Body, x) && plugNegative
	default:
		return false
	}
}

// WellFormed checks the construction invariant for the four kinds that
// carry one (MetaVar, Mu, ESubst, SSubst), assuming subpatterns are already
// well-formed. Other kinds are well-formed by construction and this
// function is not meant to be called on them by the interpreter, which
// only constructs and checks these four; it returns false defensively if
// asked. Ported from original_source/cpp/src/lib.hpp:347-362.
func WellFormed(p Pattern) bool {
	switch v := p.(type) {
	case MetaVar:
		return !v.AppCtxHoles.IntersectsAny(v.EFresh)
	case Mu:
		return Positive(v.Body, v.Var)
	case ESubst:
		return !EFresh(v.Body, v.Var) && substitutableHead(v.Body)
	case SSubst:
		return !SFresh(v.Body, v.Var) && substitutableHead(v.Body)
	default:
		return false
	}
}

// AppCtxHole reports whether p is an application-context hole for x: either
// EVar(x) directly, a MetaVar whose hole-set contains x, or an Application
// where exactly one side is a hole for x and the other is e-fresh in x.
// Ported from spec.md §4.1; consulted by Frame/Application-context rules,
// which this checker treats as reserved (see DESIGN.md Open Question 3).
func AppCtxHole(p Pattern, x Id) bool {
	switch v := p.(type) {
	case EVar:
		return v.ID == x
	case MetaVar:
		return v.AppCtxHoles.Contains(x)
	case Application:
		leftHole := AppCtxHole(v.Left, x)
		rightHole := AppCtxHole(v.Right, x)
		if leftHole && rightHole {
			return false
		}
		if leftHole {
			return EFresh(v.Right, x)
		}
		if rightHole {
			return EFresh(v.Left, x)
		}
		return false
	default:
		return false
	}
}
