package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proofcheck/internal/decode"
)

func op(o decode.Opcode) int { return int(o) }

// unconstrainedMetaVar encodes "MetaVar(id)" with all five side-condition
// sets empty.
func unconstrainedMetaVar(id int) []int {
	return []int{op(decode.OpMetaVar), id, 0, 0, 0, 0, 0}
}

func TestVerifyPublishesAssumptionIntoMemory(t *testing.T) {
	gamma := append([]int{0, op(decode.OpSymbol), 0, op(decode.OpPublish)}, op(decode.OpNoOp))
	claims := []int{0}
	proof := []int{0}

	status, err := Verify(gamma, claims, proof)
	require.NoError(t, err)
	assert.Equal(t, StatusProved, status)
}

// TestVerifyProvesReflexiveImplication runs the classical Prop1/Prop2/
// ModusPonens proof of phi0 -> phi0, the same derivation spec.md's worked
// example walks through step by step.
func TestVerifyProvesReflexiveImplication(t *testing.T) {
	gamma := []int{0}

	var claims []int
	claims = append(claims, 0)
	claims = append(claims, unconstrainedMetaVar(0)...)
	claims = append(claims, unconstrainedMetaVar(0)...)
	claims = append(claims, op(decode.OpImplication))
	claims = append(claims, op(decode.OpPublish))
	claims = append(claims, op(decode.OpNoOp))

	var proof []int
	proof = append(proof, 0)
	proof = append(proof, unconstrainedMetaVar(0)...) // MetaVar(0)
	proof = append(proof, op(decode.OpSave))           // memory[0] = phi0
	proof = append(proof, op(decode.OpLoad), 0)        // push phi0
	proof = append(proof, op(decode.OpLoad), 0)        // push phi0
	proof = append(proof, op(decode.OpImplication))    // push phi0 -> phi0
	proof = append(proof, op(decode.OpSave))           // memory[1] = phi0 -> phi0
	proof = append(proof, op(decode.OpProp2))
	proof = append(proof, op(decode.OpInstantiate), 1, 1) // phi1 := phi0 -> phi0
	proof = append(proof, op(decode.OpInstantiate), 1, 2) // phi2 := phi0
	proof = append(proof, op(decode.OpLoad), 1)
	proof = append(proof, op(decode.OpProp1))
	proof = append(proof, op(decode.OpInstantiate), 1, 1) // phi1 := phi0 -> phi0
	proof = append(proof, op(decode.OpModusPonens))
	proof = append(proof, op(decode.OpLoad), 0)
	proof = append(proof, op(decode.OpProp1))
	proof = append(proof, op(decode.OpInstantiate), 1, 1) // phi1 := phi0
	proof = append(proof, op(decode.OpModusPonens))
	proof = append(proof, op(decode.OpPublish))
	proof = append(proof, op(decode.OpNoOp))

	status, err := Verify(gamma, claims, proof)
	require.NoError(t, err)
	assert.Equal(t, StatusProved, status)
}

func TestVerifyResidualClaimReturnsUnproved(t *testing.T) {
	gamma := []int{0}
	claims := append([]int{0, op(decode.OpSymbol), 0, op(decode.OpPublish)}, op(decode.OpNoOp))
	proof := []int{0}

	status, err := Verify(gamma, claims, proof)
	require.NoError(t, err)
	assert.Equal(t, StatusUnproved, status)
}

func TestVerifyInstantiationSideConditionAborts(t *testing.T) {
	gamma := []int{0}
	claims := []int{0}

	var proof []int
	proof = append(proof, 0)
	proof = append(proof, op(decode.OpEVar), 1) // plug, pushed first
	// MetaVar(0, e_fresh={1}), pushed last so it's the metaterm on top
	proof = append(proof, op(decode.OpMetaVar), 0, 1, 1 /*one e-fresh id*/)
	proof = append(proof, 0, 0, 0) // s_fresh, positive, negative all empty
	proof = append(proof, 0)       // app_ctx_holes empty
	proof = append(proof, op(decode.OpInstantiate), 1, 0)

	_, err := Verify(gamma, claims, proof)
	assert.Error(t, err)
}

func TestVerifyESubstOnSymbolIsFatal(t *testing.T) {
	gamma := []int{0}
	claims := []int{0}

	proof := []int{0,
		op(decode.OpEVar), 1, // plug, pushed first
		op(decode.OpSymbol), 0, // body, pushed last so it's on top
		op(decode.OpESubst), 0,
	}

	_, err := Verify(gamma, claims, proof)
	assert.Error(t, err)
}

func TestVerifyESubstRedundantOnEFreshMetaVar(t *testing.T) {
	gamma := []int{0}
	claims := []int{0}

	var proof []int
	proof = append(proof, 0)
	proof = append(proof, op(decode.OpEVar), 2) // plug, pushed first
	proof = append(proof, op(decode.OpMetaVar), 0, 1, 1, 0, 0, 0, 0) // MetaVar(0, e_fresh={1}), pushed last
	proof = append(proof, op(decode.OpESubst), 1)
	proof = append(proof, op(decode.OpPop))

	status, err := Verify(gamma, claims, proof)
	require.NoError(t, err)
	assert.Equal(t, StatusProved, status)
}
