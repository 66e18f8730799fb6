package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualStructural(t *testing.T) {
	a := NewImplication(NewEVar(1), NewSymbol(2))
	b := NewImplication(NewEVar(1), NewSymbol(2))
	c := NewImplication(NewEVar(1), NewSymbol(3))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestImplicationChildrenNoCanonicalization(t *testing.T) {
	a := NewEVar(1)
	b := NewSymbol(2)
	impl := NewImplication(a, b).(Implication)

	assert.True(t, Equal(impl.Left, a))
	assert.True(t, Equal(impl.Right, b))
}

func TestEqualDifferentKinds(t *testing.T) {
	assert.False(t, Equal(NewEVar(1), NewSVar(1)))
}

func TestTermEqualRequiresSameVariant(t *testing.T) {
	p := NewSymbol(0)
	assert.False(t, Syntactic(p).Equal(Proved(p)))
	assert.True(t, Syntactic(p).Equal(Syntactic(p)))
}
