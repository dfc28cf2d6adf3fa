package parser

import (
	"slices"

	"kermlc/internal/diag"
	"kermlc/internal/source"
	"kermlc/internal/token"
)

// at reports whether the next token has kind k, without consuming it.
func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// atAny reports whether the next token's kind is one of kinds.
func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// match consumes the next token and reports true if it has kind k;
// otherwise it leaves the token stream untouched.
func (p *Parser) match(k token.Kind) bool {
	if !p.at(k) {
		return false
	}
	p.advance()
	return true
}

// matchSpan is match, but also returns the consumed token's span.
func (p *Parser) matchSpan(k token.Kind) (source.Span, bool) {
	if !p.at(k) {
		return source.Span{}, false
	}
	return p.advance().Span, true
}

// advance consumes and returns the next token, tracking its span as
// lastSpan for diagnostics placed just after malformed input.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// shouldStop reports whether the bound diagnostic context has asked the
// parser to halt (a fatal diagnostic, or the max-errors cutoff), per
// spec §5's cooperative cancellation between members.
func (p *Parser) shouldStop() bool {
	ctx, ok := p.opts.Reporter.(interface{ ShouldStop() bool })
	return ok && ctx.ShouldStop()
}

// errSpan returns the span a diagnostic about the current token should
// use: the token's own span, or a zero-length span right after the last
// consumed token when the current token is EOF, so errors at the end of
// input don't all collapse onto offset 0.
func (p *Parser) errSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expectCode maps an expected token kind to the diagnostic code spec
// §4.5 assigns consume()'s failure for that kind.
func expectCode(k token.Kind) diag.Code {
	switch k {
	case token.Semicolon:
		return diag.SynExpectSemicolon
	case token.Ident:
		return diag.SynExpectIdent
	case token.LBrace:
		return diag.SynExpectLBrace
	case token.RBrace:
		return diag.SynExpectRBrace
	case token.Colon:
		return diag.SynExpectColon
	case token.LParen:
		return diag.SynExpectLParen
	case token.RParen:
		return diag.SynExpectRParen
	case token.LBracket:
		return diag.SynExpectLBracket
	case token.RBracket:
		return diag.SynExpectRBracket
	default:
		return diag.SynUnexpectedToken
	}
}

// expect consumes a token of kind k, or reports a coded diagnostic and
// returns ok=false without consuming anything. For a missing semicolon
// it attaches the help text and insertion edit spec §4.5 calls for.
func (p *Parser) expect(k token.Kind, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.errSpan()
	b := p.reportBuilder(diag.SevError, expectCode(k), sp, msg)
	if k == token.Semicolon {
		b.WithHelp("add a ';' to terminate the declaration").
			WithEdit(p.lastSpan.ZeroideToEnd(), ";")
	}
	b.Emit()
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

// reportBuilder starts a diagnostic bound to the parser's reporter.
func (p *Parser) reportBuilder(sev diag.Severity, code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
}

// report emits a plain coded diagnostic with no help, edits, or notes.
func (p *Parser) report(sev diag.Severity, code diag.Code, sp source.Span, msg string) {
	p.reportBuilder(sev, code, sp, msg).Emit()
}

// parseIdentText consumes an identifier or unrestricted name and returns
// its text (quotes stripped for an unrestricted name).
func (p *Parser) parseIdentText() (string, bool) {
	if p.at(token.Ident) {
		return p.advance().Text, true
	}
	if p.at(token.UnrestrictedName) {
		tok := p.advance()
		return stripQuotes(tok.Text), true
	}
	p.expect(token.Ident, "expected an identifier")
	return "", false
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
