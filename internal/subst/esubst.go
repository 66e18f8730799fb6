package subst

import "proofcheck/internal/pattern"

// ApplyESubst performs the single-variable element substitution
// phi[psi/x], reducing through every concrete connective and stopping
// (by re-wrapping in a deferred ESubst node) whenever it reaches a
// metavariable or an already-deferred substitution, since those cannot be
// reduced further without another instantiation. Ported from spec.md §4.2.
func ApplyESubst(phi pattern.Pattern, x pattern.Id, psi pattern.Pattern) pattern.Pattern {
	switch v := phi.(type) {
	case pattern.EVar:
		if v.ID == x {
			return psi
		}
		return v
	case pattern.SVar, pattern.Symbol:
		return phi
	case pattern.Implication:
		return pattern.NewImplication(ApplyESubst(v.Left, x, psi), ApplyESubst(v.Right, x, psi))
	case pattern.Application:
		return pattern.NewApplication(ApplyESubst(v.Left, x, psi), ApplyESubst(v.Right, x, psi))
	case pattern.Exists:
		if v.Var == x {
			// Binder blocks: x is not free in the body from this point.
			return phi
		}
		return pattern.NewExists(v.Var, ApplyESubst(v.Body, x, psi))
	case pattern.Mu:
		// A set binder does not capture element variables.
		return pattern.NewMu(v.Var, ApplyESubst(v.Body, x, psi))
	case pattern.MetaVar, pattern.ESubst, pattern.SSubst:
		return pattern.NewESubst(phi, x, psi)
	default:
		return phi
	}
}
