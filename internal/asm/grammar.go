package asm

import "github.com/alecthomas/participle/v2/lexer"

// Program is one instruction stream — the syntax for a single Gamma, Claim
// or Proof file (spec.md names three separate streams; this mnemonic
// surface is a one-stream-per-file producer for them, the way kanso's
// grammar.Program is a one-contract-per-file surface). Grounded on
// kanso/grammar/grammar.go's "list of top-level productions" shape.
type Program struct {
	Instructions []*Instruction `@@*`
}

// Instruction is a single mnemonic line. MetaVar carries its own grammar
// because it is the only instruction with named, optional operand groups;
// every other mnemonic is a bare keyword followed by a flat integer list.
type Instruction struct {
	Pos     lexer.Position
	MetaVar *MetaVarInstr `  @@`
	Plain   *PlainInstr   `| @@`
}

// PlainInstr covers every mnemonic except metavar: a keyword and zero or
// more integer operands (id(s), a load/generalization/substitution index,
// or the list of instantiation ids).
type PlainInstr struct {
	Pos      lexer.Position
	Mnemonic string `@Ident`
	Args     []int  `@Int*`
}

// MetaVarInstr is "metavar <id> [fresh(e: ids...)] [fresh(s: ids...)]
// [pos(ids...)] [neg(ids...)] [hole(ids...)]", each clause optional and
// order-independent in principle but fixed here in the canonical MetaVar
// field order for simplicity.
type MetaVarInstr struct {
	Pos      lexer.Position
	Keyword  string `"metavar"`
	ID       int    `@Int`
	EFresh   []int  `( "fresh" "(" "e" ":" ( @Int ( "," @Int )* )? ")" )?`
	SFresh   []int  `( "fresh" "(" "s" ":" ( @Int ( "," @Int )* )? ")" )?`
	Positive []int  `( "pos" "(" ( @Int ( "," @Int )* )? ")" )?`
	Negative []int  `( "neg" "(" ( @Int ( "," @Int )* )? ")" )?`
	Holes    []int  `( "hole" "(" ( @Int ( "," @Int )* )? ")" )?`
}
