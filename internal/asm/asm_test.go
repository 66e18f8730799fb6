package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proofcheck/internal/decode"
)

func TestParseAndCompileBareMnemonics(t *testing.T) {
	prog, err := ParseString("test.pma", "evar 1\nsvar 2\nsymbol 3\nimplication\napplication\n")
	assert.NoError(t, err)
	assert.Len(t, prog.Instructions, 5)

	stream, err := Compile(prog)
	assert.NoError(t, err)
	assert.Equal(t, []int{
		0,
		int(decode.OpEVar), 1,
		int(decode.OpSVar), 2,
		int(decode.OpSymbol), 3,
		int(decode.OpImplication),
		int(decode.OpApplication),
	}, stream)
}

func TestParseAndCompileMetaVarWithClauses(t *testing.T) {
	prog, err := ParseString("test.pma", "metavar 0 fresh(e: 1, 2) pos(3) hole(4)\n")
	assert.NoError(t, err)
	assert.Len(t, prog.Instructions, 1)

	stream, err := Compile(prog)
	assert.NoError(t, err)
	assert.Equal(t, []int{
		0,
		int(decode.OpMetaVar), 0,
		2, 1, 2, // fresh(e: ...)
		0,       // fresh(s: ...) absent
		1, 3,    // pos(...)
		0,       // neg(...) absent
		1, 4,    // hole(...)
	}, stream)
}

func TestParseAndCompileMetaVarWithNoClauses(t *testing.T) {
	prog, err := ParseString("test.pma", "metavar 7\n")
	assert.NoError(t, err)

	stream, err := Compile(prog)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, int(decode.OpMetaVar), 7, 0, 0, 0, 0, 0}, stream)
}

func TestCompileInstantiateInfersCountFromOperands(t *testing.T) {
	prog, err := ParseString("test.pma", "instantiate 2 1 0\n")
	assert.NoError(t, err)

	stream, err := Compile(prog)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, int(decode.OpInstantiate), 3, 2, 1, 0}, stream)
}

func TestCompileRejectsWrongArityForUnaryMnemonic(t *testing.T) {
	prog, err := ParseString("test.pma", "evar 1 2\n")
	assert.NoError(t, err)

	_, err = Compile(prog)
	assert.Error(t, err)
}

func TestCompileRejectsWrongArityForNullaryMnemonic(t *testing.T) {
	prog, err := ParseString("test.pma", "publish 1\n")
	assert.NoError(t, err)

	_, err = Compile(prog)
	assert.Error(t, err)
}

func TestCompileRejectsUnknownMnemonic(t *testing.T) {
	prog, err := ParseString("test.pma", "frobnicate 1\n")
	assert.NoError(t, err)

	_, err = Compile(prog)
	assert.Error(t, err)
}

func TestParseAndCompileIsCaseInsensitiveAndSkipsComments(t *testing.T) {
	prog, err := ParseString("test.pma", "// a comment\nPROP1 // inline note\npublish\n")
	assert.NoError(t, err)

	stream, err := Compile(prog)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, int(decode.OpProp1), int(decode.OpPublish)}, stream)
}

func TestParseStringReportsPosition(t *testing.T) {
	_, err := ParseString("test.pma", "evar 1\n@@@\n")
	assert.Error(t, err)

	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}
