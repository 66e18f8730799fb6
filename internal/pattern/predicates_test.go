package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExistsBindsEFresh(t *testing.T) {
	p := NewExists(1, NewEVar(1))
	assert.True(t, EFresh(p, 1))
}

func TestMuBindsSFresh(t *testing.T) {
	p := NewMu(2, NewSVar(2))
	assert.True(t, SFresh(p, 2))
}

func TestEFreshImplication(t *testing.T) {
	p := NewImplication(NewEVar(1), NewEVar(2))
	assert.False(t, EFresh(p, 1))
	assert.False(t, EFresh(p, 2))
	assert.True(t, EFresh(p, 3))
}

func TestMetaVarFreshnessFromSet(t *testing.T) {
	m := NewMetaVar(0, NewIdSet(1), NewIdSet(2), IdSet{}, IdSet{}, IdSet{})
	assert.True(t, EFresh(m, 1))
	assert.False(t, EFresh(m, 2))
	assert.True(t, SFresh(m, 2))
	assert.False(t, SFresh(m, 1))
}

func TestPositiveNegativeAtoms(t *testing.T) {
	assert.True(t, Positive(NewEVar(0), 5))
	assert.True(t, Negative(NewEVar(0), 5))
	assert.True(t, Positive(NewSVar(5), 5))
	assert.False(t, Negative(NewSVar(5), 5))
	assert.True(t, Negative(NewSVar(6), 5))
}

func TestPositiveImplicationFlipsLeft(t *testing.T) {
	// X -> X : X occurs negatively on the left, positively on the right,
	// so overall X is neither strictly positive nor strictly negative.
	p := NewImplication(NewSVar(0), NewSVar(0))
	assert.False(t, Positive(p, 0))
	assert.False(t, Negative(p, 0))
}

func TestPositiveDoubleNegation(t *testing.T) {
	// ~~X, i.e. (X -> bot) -> bot, is positive in X (the antecedent shape of Prop3).
	notNotX := NewImplication(NewImplication(NewSVar(0), Bot()), Bot())
	assert.True(t, Positive(notNotX, 0))
}

func TestMuWellFormedRequiresPositivity(t *testing.T) {
	negative := NewImplication(NewSVar(0), Bot())
	muNeg := NewMu(0, negative)
	assert.False(t, WellFormed(muNeg))

	positive := NewApplication(NewSVar(0), NewSVar(0))
	muPos := NewMu(0, positive)
	assert.True(t, WellFormed(muPos))
}

func TestMetaVarWellFormedRejectsHoleInEFresh(t *testing.T) {
	m := NewMetaVar(0, NewIdSet(1), IdSet{}, IdSet{}, IdSet{}, NewIdSet(1))
	assert.False(t, WellFormed(m))

	ok := NewMetaVar(0, NewIdSet(1), IdSet{}, IdSet{}, IdSet{}, NewIdSet(2))
	assert.True(t, WellFormed(ok))
}

func TestESubstWellFormedRequiresNonFreshSubstitutableHead(t *testing.T) {
	// Symbol is not a substitutable head: ill-formed regardless of freshness.
	bad := NewESubst(NewSymbol(0), 1, NewEVar(2))
	assert.False(t, WellFormed(bad))

	// MetaVar fresh in the target var: substitution would be a no-op, ill-formed.
	mFresh := NewMetaVar(0, NewIdSet(1), IdSet{}, IdSet{}, IdSet{}, IdSet{})
	redundant := NewESubst(mFresh, 1, NewEVar(2))
	assert.False(t, WellFormed(redundant))

	// MetaVar not fresh in the target var: well-formed.
	mNotFresh := UnconstrainedMetaVar(0)
	ok := NewESubst(mNotFresh, 1, NewEVar(2))
	assert.True(t, WellFormed(ok))
}

func TestAppCtxHoleDirectEVar(t *testing.T) {
	assert.True(t, AppCtxHole(NewEVar(3), 3))
	assert.False(t, AppCtxHole(NewEVar(3), 4))
}

func TestAppCtxHoleApplication(t *testing.T) {
	hole := NewApplication(NewEVar(3), NewSymbol(9))
	assert.True(t, AppCtxHole(hole, 3))

	bothHoles := NewApplication(NewEVar(3), NewEVar(3))
	assert.False(t, AppCtxHole(bothHoles, 3))
}
