// Package verifier sequences the three phases of a proof-checking run over
// a Gamma (assumption) stream, a Claim stream, and a Proof stream, and
// reports the final verdict. Ported from verify() in
// original_source/cpp/src/lib.hpp:1349-1391.
package verifier

import "proofcheck/internal/interp"

// Status is the two-valued result spec.md §4.5/§6 defines: 0 when every
// claim was proved, 1 when the run completed but left claims unproved.
type Status int

const (
	StatusProved   Status = 0
	StatusUnproved Status = 1
)

// Verify runs gamma, claims and proof in sequence against one Machine,
// sharing memory and the claim queue across all three phases and clearing
// the operand stack between them. A fatal error in any phase (malformed
// stream, broken side condition, rule precondition failure, claim
// mismatch) aborts immediately and is returned as the error; an
// unproved-but-otherwise-clean run returns StatusUnproved with a nil error.
func Verify(gamma, claims, proof []int) (Status, error) {
	status, _, err := VerifyDetailed(gamma, claims, proof)
	return status, err
}

// VerifyDetailed is Verify plus the count of claims still unproved when the
// run ends with StatusUnproved, for callers that want to report it (the
// core's own status code carries no count, per spec.md §4.5/§6).
func VerifyDetailed(gamma, claims, proof []int) (Status, int, error) {
	m := interp.NewMachine()

	if err := m.Run(gamma, interp.GammaPhase); err != nil {
		return 0, 0, err
	}
	if err := m.Run(claims, interp.ClaimPhase); err != nil {
		return 0, 0, err
	}
	if err := m.Run(proof, interp.ProofPhase); err != nil {
		return 0, 0, err
	}

	if !m.Claims.Empty() {
		return StatusUnproved, m.Claims.Len(), nil
	}
	return StatusProved, 0, nil
}
