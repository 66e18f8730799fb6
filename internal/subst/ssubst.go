package subst

import "proofcheck/internal/pattern"

// ApplySSubst performs the single-variable set substitution phi[psi/X],
// symmetric to ApplyESubst with element/set roles swapped. A Mu(X, ...)
// binder blocks the substitution, exactly like Exists(x, ...) does for
// ApplyESubst.
func ApplySSubst(phi pattern.Pattern, x pattern.Id, psi pattern.Pattern) pattern.Pattern {
	switch v := phi.(type) {
	case pattern.EVar, pattern.Symbol:
		return phi
	case pattern.SVar:
		if v.ID == x {
			return psi
		}
		return v
	case pattern.Implication:
		return pattern.NewImplication(ApplySSubst(v.Left, x, psi), ApplySSubst(v.Right, x, psi))
	case pattern.Application:
		return pattern.NewApplication(ApplySSubst(v.Left, x, psi), ApplySSubst(v.Right, x, psi))
	case pattern.Exists:
		return pattern.NewExists(v.Var, ApplySSubst(v.Body, x, psi))
	case pattern.Mu:
		if v.Var == x {
			return phi
		}
		return pattern.NewMu(v.Var, ApplySSubst(v.Body, x, psi))
	case pattern.MetaVar, pattern.ESubst, pattern.SSubst:
		return pattern.NewSSubst(phi, x, psi)
	default:
		return phi
	}
}
