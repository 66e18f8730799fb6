package asm

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the proof-machine assembly mnemonic syntax. Grounded on
// kanso/grammar/lexer.go's stateful-lexer shape; narrowed to the token
// classes this syntax actually needs.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Int", `-?[0-9]+`, nil},
		{"Punctuation", `[:(),]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
