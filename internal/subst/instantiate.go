// Package subst implements the matching-logic substitution engine:
// simultaneous metavariable instantiation under freshness/polarity side
// conditions, and the single-variable element/set substitution reduction
// rules used to build ESubst/SSubst stack contents.
package subst

import (
	"fmt"

	"proofcheck/internal/errs"
	"proofcheck/internal/pattern"
)

// SideConditionError reports that a plug pattern violated a freshness or
// polarity constraint carried by the metavariable being instantiated.
type SideConditionError struct {
	MetaVarID pattern.Id
	Kind      string // "e-fresh", "s-fresh", "positive", "negative"
	VarID     pattern.Id
}

func (e *SideConditionError) Error() string {
	return fmt.Sprintf("instantiation of MetaVar %d breaks a %s constraint: %d", e.MetaVarID, e.Kind, e.VarID)
}

// Instantiate performs simultaneous metavariable substitution over p: every
// MetaVar(i, ...) with i = vars[k] is replaced by plugs[k], after verifying
// that plugs[k] satisfies every freshness/polarity side condition the
// metavariable carries. vars and plugs must have equal length. When vars
// lists an id more than once, the first occurrence wins. Instantiate
// returns (nil, nil) when no metavariable anywhere in p was touched, so the
// caller can keep the original pattern unchanged (mirroring the C++
// Optional<Rc<Pattern>> sentinel at
// original_source/cpp/src/lib.hpp:617-805).
func Instantiate(p pattern.Pattern, vars []pattern.Id, plugs []pattern.Pattern) (pattern.Pattern, error) {
	switch v := p.(type) {
	case pattern.EVar, pattern.SVar, pattern.Symbol:
		return nil, nil

	case pattern.MetaVar:
		for pos, id := range vars {
			if id != v.ID {
				continue
			}
			plug := plugs[pos]
			for _, e := range v.EFresh.Ids() {
				if !pattern.EFresh(plug, e) {
					return nil, errs.Wrap(errs.CodeSideCondition, "", &SideConditionError{MetaVarID: v.ID, Kind: "e-fresh", VarID: e})
				}
			}
			for _, s := range v.SFresh.Ids() {
				if !pattern.SFresh(plug, s) {
					return nil, errs.Wrap(errs.CodeSideCondition, "", &SideConditionError{MetaVarID: v.ID, Kind: "s-fresh", VarID: s})
				}
			}
			for _, s := range v.Positive.Ids() {
				if !pattern.Positive(plug, s) {
					return nil, errs.Wrap(errs.CodeSideCondition, "", &SideConditionError{MetaVarID: v.ID, Kind: "positive", VarID: s})
				}
			}
			for _, s := range v.Negative.Ids() {
				if !pattern.Negative(plug, s) {
					return nil, errs.Wrap(errs.CodeSideCondition, "", &SideConditionError{MetaVarID: v.ID, Kind: "negative", VarID: s})
				}
			}
			return plug, nil
		}
		return nil, nil

	case pattern.Implication:
		left, right, err := instantiatePair(v.Left, v.Right, vars, plugs)
		if err != nil {
			return nil, err
		}
		if left == nil && right == nil {
			return nil, nil
		}
		return pattern.NewImplication(orOriginal(left, v.Left), orOriginal(right, v.Right)), nil

	case pattern.Application:
		left, right, err := instantiatePair(v.Left, v.Right, vars, plugs)
		if err != nil {
			return nil, err
		}
		if left == nil && right == nil {
			return nil, nil
		}
		return pattern.NewApplication(orOriginal(left, v.Left), orOriginal(right, v.Right)), nil

	case pattern.Exists:
		body, err := Instantiate(v.Body, vars, plugs)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, nil
		}
		return pattern.NewExists(v.Var, body), nil

	case pattern.Mu:
		body, err := Instantiate(v.Body, vars, plugs)
		if err != nil {
			return nil, err
		}
		if body == nil {
			return nil, nil
		}
		return pattern.NewMu(v.Var, body), nil

	case pattern.ESubst:
		body, plug, err := instantiatePair(v.Body, v.Plug, vars, plugs)
		if err != nil {
			return nil, err
		}
		if body == nil && plug == nil {
			return nil, nil
		}
		return reduceESubstAfterInstantiate(orOriginal(body, v.Body), v.Var, orOriginal(plug, v.Plug)), nil

	case pattern.SSubst:
		body, plug, err := instantiatePair(v.Body, v.Plug, vars, plugs)
		if err != nil {
			return nil, err
		}
		if body == nil && plug == nil {
			return nil, nil
		}
		return reduceSSubstAfterInstantiate(orOriginal(body, v.Body), v.Var, orOriginal(plug, v.Plug)), nil

	default:
		return nil, nil
	}
}

func instantiatePair(left, right pattern.Pattern, vars []pattern.Id, plugs []pattern.Pattern) (pattern.Pattern, pattern.Pattern, error) {
	instLeft, err := Instantiate(left, vars, plugs)
	if err != nil {
		return nil, nil, err
	}
	instRight, err := Instantiate(right, vars, plugs)
	if err != nil {
		return nil, nil, err
	}
	return instLeft, instRight, nil
}

func orOriginal(instantiated, original pattern.Pattern) pattern.Pattern {
	if instantiated == nil {
		return original
	}
	return instantiated
}

// reduceESubstAfterInstantiate applies the deferred element substitution
// once the body is no longer headed by a metavariable (the only point at
// which capture-avoidance is enforced, via the freshness side conditions
// already checked above) — and otherwise rebuilds the deferred node.
func reduceESubstAfterInstantiate(body pattern.Pattern, v pattern.Id, plug pattern.Pattern) pattern.Pattern {
	if isStillDeferrable(body) {
		return pattern.NewESubst(body, v, plug)
	}
	return ApplyESubst(body, v, plug)
}

func reduceSSubstAfterInstantiate(body pattern.Pattern, v pattern.Id, plug pattern.Pattern) pattern.Pattern {
	if isStillDeferrable(body) {
		return pattern.NewSSubst(body, v, plug)
	}
	return ApplySSubst(body, v, plug)
}

func isStillDeferrable(p pattern.Pattern) bool {
	switch p.Kind() {
	case pattern.MetaVarKind, pattern.ESubstKind, pattern.SSubstKind:
		return true
	default:
		return false
	}
}
