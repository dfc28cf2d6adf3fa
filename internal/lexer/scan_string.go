package lexer

import (
	"kermlc/internal/diag"
	"kermlc/internal/token"
)

// scanString scans a double-quoted string literal: "...". Escapes follow
// scanQuoted; an embedded raw newline or a missing closing quote is E1002.
func (lx *Lexer) scanString() token.Token {
	return lx.scanQuoted('"', token.StringLit, diag.LexUnterminatedString, "string literal")
}

// scanQuoted scans a literal delimited by quote, handling backslash escapes
// uniformly for string literals and unrestricted names. A raw newline or an
// EOF before the closing quote is reported as unterminated under code.
func (lx *Lexer) scanQuoted(quote byte, kind token.Kind, code diag.Code, what string) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case b == '\\':
			lx.scanEscape()
		case b == '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(code, sp, "newline in "+what)
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, "unterminated "+what)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscape consumes a backslash escape sequence: \\, \", \', \n, \t, \r.
// Any other escaped byte is reported as E1006 but consumed anyway so
// scanning can continue to the closing quote.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	if lx.cursor.EOF() {
		return
	}
	switch lx.cursor.Peek() {
	case '\\', '"', '\'', 'n', 't', 'r':
		lx.cursor.Bump()
	default:
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidEscape, sp, "invalid escape sequence")
	}
}
