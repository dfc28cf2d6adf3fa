// Package token defines the lexical token kinds for the modeling-language
// front end.
// Invariants:
//   - Token.Text holds exactly the source bytes the token spans.
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are case-sensitive; any other casing lexes as Ident.
//   - Single-quoted unrestricted names lex as UnrestrictedName, with Text
//     holding the name with its surrounding quotes (the parser strips
//     them).
package token
