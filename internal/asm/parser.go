package asm

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build proof-machine assembly parser: %w", err))
	}
	return p
}

// ParseError carries a parse failure's source position, for both the CLI's
// "line:column: message" error text and the language server's diagnostics.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseString parses source under the given name (used only in position
// reporting), returning a structured ParseError on failure.
func ParseString(name, source string) (*Program, error) {
	prog, err := parser.ParseString(name, source)
	if err != nil {
		if pe, ok := err.(participle.Error); ok {
			pos := pe.Position()
			return nil, &ParseError{Line: pos.Line, Column: pos.Column, Message: pe.Message()}
		}
		return nil, err
	}
	return prog, nil
}
