package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"proofcheck/internal/asm"
)

// ConvertParseError transforms a proof-machine assembly parse failure into
// an LSP diagnostic. Proof-machine assembly has a single lexer+parser pass
// rather than kanso's separate scanner/parser error streams, so there is
// only one conversion here instead of a ConvertParseErrors/ConvertScanErrors
// pair.
func ConvertParseError(err error) []protocol.Diagnostic {
	if err == nil {
		return nil
	}

	var pe *asm.ParseError
	if !errors.As(err, &pe) {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{Start: zeroPosition, End: protocol.Position{Line: 0, Character: 1}},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("proofcheck-asm"),
			Message:  err.Error(),
		}}
	}

	line := uint32(pe.Line - 1)
	col := uint32(pe.Column - 1)
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("proofcheck-asm"),
		Message:  pe.Message,
	}}
}

var zeroPosition = protocol.Position{Line: 0, Character: 0}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
