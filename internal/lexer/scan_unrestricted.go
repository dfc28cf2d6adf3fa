package lexer

import (
	"kermlc/internal/diag"
	"kermlc/internal/token"
)

// scanUnrestrictedName scans a single-quoted name such as 'Fuel Tank',
// letting a member's declared name contain spaces, punctuation, or keywords
// that would otherwise need escaping as a plain identifier.
func (lx *Lexer) scanUnrestrictedName() token.Token {
	return lx.scanQuoted('\'', token.UnrestrictedName, diag.LexUnterminatedName, "unrestricted name")
}
