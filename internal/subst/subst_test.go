package subst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proofcheck/internal/pattern"
)

func TestApplyESubstOnMatchingEVar(t *testing.T) {
	psi := pattern.NewSymbol(9)
	result := ApplyESubst(pattern.NewEVar(1), 1, psi)
	assert.True(t, pattern.Equal(result, psi))
}

func TestApplyESubstOnNonMatchingEVar(t *testing.T) {
	result := ApplyESubst(pattern.NewEVar(2), 1, pattern.NewSymbol(9))
	assert.True(t, pattern.Equal(result, pattern.NewEVar(2)))
}

func TestApplyESubstBinderBlocks(t *testing.T) {
	body := pattern.NewEVar(1)
	ex := pattern.NewExists(1, body)
	result := ApplyESubst(ex, 1, pattern.NewSymbol(9))
	assert.True(t, pattern.Equal(result, ex))
}

func TestApplyESubstOnMetaVarDefers(t *testing.T) {
	m := pattern.UnconstrainedMetaVar(0)
	result := ApplyESubst(m, 1, pattern.NewSymbol(9))
	esub, ok := result.(pattern.ESubst)
	require.True(t, ok)
	assert.Equal(t, pattern.Id(1), esub.Var)
}

func TestInstantiateEmptyVarsReturnsNil(t *testing.T) {
	phi := pattern.NewImplication(pattern.UnconstrainedMetaVar(0), pattern.UnconstrainedMetaVar(0))
	result, err := Instantiate(phi, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestInstantiateReplacesMatchingMetaVar(t *testing.T) {
	phi := pattern.NewImplication(pattern.UnconstrainedMetaVar(0), pattern.UnconstrainedMetaVar(1))
	plug := pattern.NewSymbol(7)
	result, err := Instantiate(phi, []pattern.Id{0}, []pattern.Pattern{plug})
	require.NoError(t, err)
	require.NotNil(t, result)
	expected := pattern.NewImplication(plug, pattern.UnconstrainedMetaVar(1))
	assert.True(t, pattern.Equal(result, expected))
}

func TestInstantiateFirstMatchWins(t *testing.T) {
	phi := pattern.UnconstrainedMetaVar(0)
	plugs := []pattern.Pattern{pattern.NewSymbol(1), pattern.NewSymbol(2)}
	result, err := Instantiate(phi, []pattern.Id{0, 0}, plugs)
	require.NoError(t, err)
	assert.True(t, pattern.Equal(result, pattern.NewSymbol(1)))
}

func TestInstantiateViolatesEFreshSideCondition(t *testing.T) {
	m := pattern.NewMetaVar(0, pattern.NewIdSet(1), pattern.IdSet{}, pattern.IdSet{}, pattern.IdSet{}, pattern.IdSet{})
	plug := pattern.NewEVar(1)
	_, err := Instantiate(m, []pattern.Id{0}, []pattern.Pattern{plug})
	require.Error(t, err)
	var sideErr *SideConditionError
	require.ErrorAs(t, err, &sideErr)
	assert.Equal(t, "e-fresh", sideErr.Kind)
}

func TestInstantiateReducesESubstWhenBodyBecomesConcrete(t *testing.T) {
	// ESubst(MetaVar(0), 1, EVar(2)) with MetaVar(0) -> EVar(1): the body
	// is no longer a deferrable head, so the substitution reduces.
	deferred := pattern.NewESubst(pattern.UnconstrainedMetaVar(0), 1, pattern.NewEVar(2))
	plug := pattern.NewEVar(1)
	result, err := Instantiate(deferred, []pattern.Id{0}, []pattern.Pattern{plug})
	require.NoError(t, err)
	// EVar(1)[EVar(2)/1] = EVar(2)
	assert.True(t, pattern.Equal(result, pattern.NewEVar(2)))
}
