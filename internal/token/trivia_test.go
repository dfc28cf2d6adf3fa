package token_test

import (
	"testing"

	"kermlc/internal/source"
	"kermlc/internal/token"
)

func TestBlockCommentTriviaShape(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaBlockComment,
		Span: source.Span{Start: 0, End: 26},
		Text: "/* outer /* inner */ */",
	}
	tok := token.Token{
		Kind:    token.KwPackage,
		Span:    source.Span{Start: 27, End: 34},
		Text:    "package",
		Leading: []token.Trivia{tv},
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("block comment trivia must be present and structured")
	}
}

func TestLineCommentTriviaShape(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaLineComment,
		Span: source.Span{Start: 0, End: 12},
		Text: "// a comment",
	}
	if tv.Kind != token.TriviaLineComment {
		t.Fatalf("expected line comment kind")
	}
}
