package lexer

import (
	"kermlc/internal/diag"
	"kermlc/internal/token"
)

// scanNumber scans an integer or real literal:
//
//	IntLit  = "0" ("x"|"X") hexdigit+ | digit+
//	RealLit = digit* "." digit+ (("e"|"E") ("+"|"-")? digit+)?
//	        | digit+ ("e"|"E") ("+"|"-")? digit+
//
// A malformed exponent (no digit following e/E, or after a sign) is E1005.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump() // '0'
			lx.cursor.Bump() // 'x'/'X'
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexInvalidNumber, sp, "expected hex digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	// Leading '.' means the caller already confirmed a digit follows.
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.RealLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumberExponent(start, kind)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			// ".." or "..." is a multiplicity range/unbounded operator, not a
			// decimal point.
		} else if isDec(nextAfterDot(lx)) {
			lx.cursor.Bump() // '.'
			kind = token.RealLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	return lx.finishNumberExponent(start, kind)
}

func nextAfterDot(lx *Lexer) byte {
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return 0
	}
	return b1
}

func (lx *Lexer) finishNumberExponent(start Mark, kind token.Kind) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		lx.cursor.Bump() // e/E
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexInvalidNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.RealLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
