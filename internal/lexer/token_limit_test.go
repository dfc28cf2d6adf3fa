package lexer

import (
	"strings"
	"testing"

	"kermlc/internal/diag"
	"kermlc/internal/source"
	"kermlc/internal/token"
)

func TestTokenTooLongTriggersDiagnosticAndStops(t *testing.T) {
	content := strings.Repeat("a", maxTokenLength+1)
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("long.kerml", []byte(content))
	file := fs.Get(fileID)

	ctx := diag.NewContext(4)
	lx := New(file, Options{Reporter: ctx})

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	if !ctx.HasErrors() {
		t.Fatalf("expected diagnostics for long token")
	}
	items := ctx.Items()
	if items[0].Code != diag.LexInvalidChar {
		t.Fatalf("expected LexInvalidChar, got %v", items[0].Code)
	}

	// Lexer should fast-forward to EOF after the error.
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF after long token, got %v", next.Kind)
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	content := strings.Repeat("b", maxTokenLength)
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("limit.kerml", []byte(content))
	file := fs.Get(fileID)

	ctx := diag.NewContext(1)
	lx := New(file, Options{Reporter: ctx})

	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("expected ident token, got %v", tok.Kind)
	}
	if ctx.HasErrors() {
		t.Fatalf("did not expect diagnostics, got %v", ctx.Items())
	}
}
