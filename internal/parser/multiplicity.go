package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/diag"
	"kermlc/internal/token"
)

// parseMultiplicity parses a '[...]' bound per spec §4.5: a lone '*'
// means unbounded (no lower recorded); an integer literal sets the
// lower bound and, absent a following '..', also the upper bound (the
// '[n]' desugars-to-'[n..n]' rule, reusing the same literal's ExprID
// for both). An explicit '..' then takes '*' (upper left absent) or
// another integer literal as the upper bound. Any trailing sequence of
// 'ordered'/'nonunique' keywords sets the corresponding flags.
func (p *Parser) parseMultiplicity() (ast.Multiplicity, bool) {
	open := p.advance() // '['
	var m ast.Multiplicity
	m.Span = open.Span

	switch {
	case p.at(token.Star):
		star := p.advance()
		m.Span = m.Span.Cover(star.Span)

	case p.at(token.IntLit):
		tok := p.advance()
		lit := p.tree.NewIntLit(tok.Span, tok.Text)
		m.Lower, m.HasLower = lit, true
		m.Upper, m.HasUpper = lit, true
		m.Span = m.Span.Cover(tok.Span)

	default:
		p.report(diag.SevError, diag.SynExpectExpression, p.errSpan(), "expected '*' or an integer literal in a multiplicity")
		return m, false
	}

	if p.match(token.DotDot) {
		switch {
		case p.at(token.Star):
			star := p.advance()
			m.Upper, m.HasUpper = ast.NoExprID, false
			m.Span = m.Span.Cover(star.Span)

		case p.at(token.IntLit):
			tok := p.advance()
			m.Upper = p.tree.NewIntLit(tok.Span, tok.Text)
			m.HasUpper = true
			m.Span = m.Span.Cover(tok.Span)

		default:
			p.report(diag.SevError, diag.SynExpectExpression, p.errSpan(), "expected '*' or an integer literal after '..'")
			return m, false
		}
	}

	for p.atAny(token.KwOrdered, token.KwNonunique) {
		switch {
		case p.match(token.KwOrdered):
			m.Ordered = true
		case p.match(token.KwNonunique):
			m.Nonunique = true
		}
		m.Span = m.Span.Cover(p.lastSpan)
	}

	closeTok, ok := p.expect(token.RBracket, "expected ']' to close the multiplicity")
	if !ok {
		return m, false
	}
	m.Span = m.Span.Cover(closeTok.Span)
	return m, true
}
