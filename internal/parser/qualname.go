package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/source"
	"kermlc/internal/token"
)

// parseQualifiedName parses a (possibly globally-anchored) '::'-separated
// path per spec §4.5: an optional leading '::' sets Global, then one or
// more identifier/unrestricted-name segments separated by '::'. A
// trailing '::' with no following identifier (the wildcard-import case,
// 'pkg::*' or 'pkg::**') is left unconsumed for the caller.
func (p *Parser) parseQualifiedName() (ast.QualifiedName, source.Span, bool) {
	start := p.lx.Peek().Span
	var qn ast.QualifiedName

	if p.match(token.ColonColon) {
		qn.Global = true
	}

	seg, ok := p.parseIdentText()
	if !ok {
		return qn, start.Cover(p.errSpan()), false
	}
	qn.Segments = append(qn.Segments, seg)

	for p.at(token.ColonColon) {
		prev := p.lastSpan
		sep := p.advance()
		if !p.at(token.Ident) && !p.at(token.UnrestrictedName) {
			// A trailing '::' not followed by a segment: rewind the lexer
			// to the '::' so the caller reads it and the token after it
			// (e.g. an import's '::*'/'::**' wildcard suffix) again; the
			// one-token lookahead cannot hold both.
			p.lx.SetRange(sep.Span.Start, 0)
			p.lastSpan = prev
			break
		}
		seg, ok := p.parseIdentText()
		if !ok {
			return qn, start.Cover(p.lastSpan), false
		}
		qn.Segments = append(qn.Segments, seg)
	}

	return qn, start.Cover(p.lastSpan), true
}
