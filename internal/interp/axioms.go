package interp

import "proofcheck/internal/pattern"

// axiomSchemas caches the Proved(·) instances pushed by Prop1/2/3,
// Quantifier and Existence, built once per interpreter the way the C++
// source builds phi0/phi1/phi2 and the five schemas once per
// execute_instructions call (original_source/cpp/src/lib.hpp:868-892).
type axiomSchemas struct {
	prop1      pattern.Pattern
	prop2      pattern.Pattern
	prop3      pattern.Pattern
	quantifier pattern.Pattern
	existence  pattern.Pattern
}

func newAxiomSchemas() axiomSchemas {
	phi0 := pattern.UnconstrainedMetaVar(0)
	phi1 := pattern.UnconstrainedMetaVar(1)
	phi2 := pattern.UnconstrainedMetaVar(2)

	// Prop1: phi0 -> (phi1 -> phi0)
	prop1 := pattern.NewImplication(phi0, pattern.NewImplication(phi1, phi0))

	// Prop2: (phi0 -> (phi1 -> phi2)) -> ((phi0 -> phi1) -> (phi0 -> phi2))
	prop2 := pattern.NewImplication(
		pattern.NewImplication(phi0, pattern.NewImplication(phi1, phi2)),
		pattern.NewImplication(
			pattern.NewImplication(phi0, phi1),
			pattern.NewImplication(phi0, phi2),
		),
	)

	// Prop3: ~~phi0 -> phi0
	prop3 := pattern.NewImplication(pattern.Negate(pattern.Negate(phi0)), phi0)

	// Quantifier: phi0[x1/x0] -> exists x0. phi0
	quantifier := pattern.NewImplication(
		pattern.NewESubst(phi0, 0, pattern.NewEVar(1)),
		pattern.NewExists(0, phi0),
	)

	// Existence: exists x0. phi0
	existence := pattern.NewExists(0, phi0)

	return axiomSchemas{
		prop1:      prop1,
		prop2:      prop2,
		prop3:      prop3,
		quantifier: quantifier,
		existence:  existence,
	}
}
