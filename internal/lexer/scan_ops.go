package lexer

import (
	"fmt"

	"kermlc/internal/diag"
	"kermlc/internal/token"
)

// scanOperatorOrPunct scans punctuation and operators. Matching is greedy:
// 3-byte operators are tried first, then 2-byte, then the single-byte set.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch {
	case lx.try3(':', ':', '>'):
		return emit(token.ColonColonGt)
	case lx.try3(':', '>', '>'):
		return emit(token.ColonGtGt)
	case lx.try3('=', '=', '='):
		return emit(token.EqEqEq)
	case lx.try3('!', '=', '='):
		return emit(token.BangEqEq)
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)

	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2(':', '>'):
		return emit(token.ColonGt)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '~':
		return emit(token.Tilde)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '!':
		return emit(token.Bang)
	case '@':
		return emit(token.At)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidChar, sp, fmt.Sprintf("unexpected character %q", ch))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
