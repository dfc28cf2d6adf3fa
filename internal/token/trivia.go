package token

import "kermlc/internal/source"

// TriviaKind classifies a non-code source element.
type TriviaKind uint8

const (
	// TriviaSpace represents horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline represents a newline character.
	TriviaNewline
	// TriviaLineComment represents a '//' line comment.
	TriviaLineComment
	// TriviaBlockComment represents a '/* */' comment. Block comments nest:
	// the lexer tracks a depth counter so "/* outer /* inner */ still-outer */"
	// closes only at the matching outer '*/'.
	TriviaBlockComment
)

// Trivia represents a non-code source element attached ahead of a Token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
