package lsp_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"proofcheck/internal/asm"
	"proofcheck/internal/lsp"
)

func writeTempPma(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "proof.pma")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestTextDocumentDidOpenOnValidSourcePublishesNoDiagnostics(t *testing.T) {
	path := writeTempPma(t, "evar 1\npublish\n")
	uri := "file://" + filepath.ToSlash(path)

	handler := lsp.NewHandler()
	ctx := &glsp.Context{}

	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	})
	assert.NoError(t, err)
}

func TestConvertParseErrorMapsPositionToZeroBasedRange(t *testing.T) {
	_, err := asm.ParseString("test.pma", "evar 1\n@@@\n")
	require.Error(t, err)

	diagnostics := lsp.ConvertParseError(err)
	require.Len(t, diagnostics, 1)
	assert.EqualValues(t, 1, diagnostics[0].Range.Start.Line)
}

func TestTextDocumentDidCloseClearsCache(t *testing.T) {
	path := writeTempPma(t, "noop\n")
	uri := "file://" + filepath.ToSlash(path)

	handler := lsp.NewHandler()
	ctx := &glsp.Context{}

	require.NoError(t, handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri},
	}))

	err := handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	assert.NoError(t, err)
}
