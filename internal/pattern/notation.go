package pattern

// Bot is the bottom pattern, mu X0. X0 — the standard matching-logic
// encoding of false. Ported from original_source/cpp/src/lib.hpp:585.
func Bot() Pattern {
	return NewMu(0, NewSVar(0))
}

// Negate is logical negation, psi -> bot. Ported from
// original_source/cpp/src/lib.hpp:587-590.
func Negate(p Pattern) Pattern {
	return NewImplication(p, Bot())
}

// Forall is universal quantification, encoded as the negation of an
// existential over the negation: ~exists x. ~p. Ported from
// original_source/cpp/src/lib.hpp:592-594.
func Forall(x Id, p Pattern) Pattern {
	return Negate(NewExists(x, Negate(p)))
}
