package interp

import (
	"fmt"

	"proofcheck/internal/errs"
	"proofcheck/internal/pattern"
	"proofcheck/internal/subst"
)

// modusPonens pops two proved terms, requires the lower one to be an
// implication whose antecedent equals the upper one, and pushes the
// consequent as proved. Ported from original_source/cpp/src/lib.hpp:1107-1132.
func modusPonens(s *Stack) error {
	premise2, err := s.PopProved()
	if err != nil {
		return err
	}
	premise1, err := s.PopProved()
	if err != nil {
		return err
	}
	impl, ok := premise1.(pattern.Implication)
	if !ok {
		return errs.Wrap(errs.CodeRuleMismatch, "", fmt.Errorf("modus ponens: expected an implication, got %s", premise1.Kind()))
	}
	if !pattern.Equal(impl.Left, premise2) {
		return errs.Wrap(errs.CodeRuleMismatch, "", fmt.Errorf("modus ponens: antecedent does not match the second premise"))
	}
	s.Push(pattern.Proved(impl.Right))
	return nil
}

// generalization pops a proved implication phi -> psi and an element-id
// operand x, requires x fresh in psi, and pushes (exists x. phi) -> psi.
// Ported from original_source/cpp/src/lib.hpp:1138-1171.
func generalization(s *Stack, x pattern.Id) error {
	proved, err := s.PopProved()
	if err != nil {
		return err
	}
	impl, ok := proved.(pattern.Implication)
	if !ok {
		return errs.Wrap(errs.CodeRuleMismatch, "", fmt.Errorf("generalization: expected an implication on the stack"))
	}
	if !pattern.EFresh(impl.Right, x) {
		return errs.Wrap(errs.CodeRuleMismatch, "", fmt.Errorf("generalization: the binding variable must be fresh in the conclusion"))
	}
	s.Push(pattern.Proved(pattern.NewImplication(pattern.NewExists(x, impl.Left), impl.Right)))
	return nil
}

// substitution pops a pattern plug and a proved term whose head can still
// carry a deferred set substitution, and pushes the set-substituted proved
// pattern, collapsing to the unsubstituted original if the substitution
// would be redundant (ill-formed on construction). Named Substitution in
// the fixed opcode table, but — like the source it is ported from — only
// ever builds an SSubst. Ported from lib.hpp:1177-1209.
func substitution(s *Stack, x pattern.Id) error {
	plug, err := s.PopPattern()
	if err != nil {
		return err
	}
	proved, err := s.PopProved()
	if err != nil {
		return err
	}
	if !headSubstitutable(proved) {
		return errs.Wrap(errs.CodeRuleMismatch, "", fmt.Errorf("substitution: cannot substitute into a concrete term"))
	}
	built := pattern.NewSSubst(proved, x, plug)
	if pattern.WellFormed(built) {
		s.Push(pattern.Proved(built))
	} else {
		s.Push(pattern.Proved(proved))
	}
	return nil
}

func headSubstitutable(p pattern.Pattern) bool {
	switch p.Kind() {
	case pattern.MetaVarKind, pattern.ESubstKind, pattern.SSubstKind:
		return true
	default:
		return false
	}
}

// instantiateTerm instantiates every metavariable in term matching one of
// ids with the corresponding plug, preserving term's Syntactic/Proved tag.
// The caller is responsible for popping the metaterm before popping the
// plugs, since on the stack the metaterm sits above them. Ported from
// lib.hpp:1211-1242.
func instantiateTerm(term pattern.Term, ids []pattern.Id, plugs []pattern.Pattern) (pattern.Term, error) {
	result, err := subst.Instantiate(term.Pattern, ids, plugs)
	if err != nil {
		return pattern.Term{}, err
	}
	if result == nil {
		result = term.Pattern
	}
	return pattern.Term{Kind: term.Kind, Pattern: result}, nil
}
