package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/source"
	"kermlc/internal/token"
)

// parseMemberList parses members until stop reports true, EOF is
// reached, or the diagnostic context asks the parser to halt, linking
// each into the returned list via Member.Next.
func (p *Parser) parseMemberList(stop func() bool) ast.MemberID {
	var first, last ast.MemberID

	for !stop() && !p.at(token.EOF) && !p.shouldStop() {
		beforeSpan := p.lx.Peek().Span
		member, ok := p.parseMember()
		if !ok {
			p.synchronize(syncNamespace)
		}
		if member.IsValid() {
			if !first.IsValid() {
				first = member
			} else {
				p.tree.Member(last).Next = member
			}
			last = member
		}
		// Guarantee forward progress: a member that consumed nothing and
		// produced nothing would otherwise spin forever on malformed input.
		if !ok && !member.IsValid() && p.lx.Peek().Span == beforeSpan && !p.at(token.EOF) {
			p.advance()
		}
	}

	return first
}

// parseBraceBody parses a '{ members }' body, or a bare ';' for an empty
// one, per spec §4.5's shared name/body grammar (namespace, feature).
// It returns the body's first member and the span covering whichever
// terminator closed it. When neither alternative is present, the error
// is reported as a missing ';' (with its edit suggestion), not a missing
// '{': a forgotten terminator is the more common mistake, and spec
// §4.5's worked example (a missing ';' immediately before the next
// declaration) expects E2001, not "expected '{'".
func (p *Parser) parseBraceBody(openMsg string) (ast.MemberID, source.Span, bool) {
	if p.at(token.LBrace) {
		return p.parseRequiredBraceBody(openMsg)
	}
	semiTok, ok := p.expect(token.Semicolon, "expected ';' or '{' after the declaration")
	if !ok {
		return ast.NoMemberID, p.errSpan(), false
	}
	return ast.NoMemberID, semiTok.Span, true
}

// parseRequiredBraceBody parses a '{ members }' body with no ';'
// alternative, for the kinds spec §4.5 gives a plain "body" (package,
// classifier).
func (p *Parser) parseRequiredBraceBody(openMsg string) (ast.MemberID, source.Span, bool) {
	open, ok := p.expect(token.LBrace, openMsg)
	if !ok {
		return ast.NoMemberID, p.errSpan(), false
	}

	first := p.parseMemberList(func() bool { return p.at(token.RBrace) })

	closeTok, ok := p.expect(token.RBrace, "expected '}' to close the body")
	sp := open.Span.Cover(closeTok.Span)
	return first, sp, ok
}
