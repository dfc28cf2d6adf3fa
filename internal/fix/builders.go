// Package fix materializes the machine-applicable edits a diagnostic
// carries in its Edits field (spec §4.3's "suggestion" line) into changes
// on disk. Construction helpers here build diag.Edit values for the
// shapes call sites reach for most often; Apply below turns a batch of
// diagnostics into applied files.
package fix

import (
	"strings"

	"kermlc/internal/diag"
	"kermlc/internal/source"
)

// InsertText returns an edit that inserts text at a zero-width span.
func InsertText(at source.Span, text string) diag.Edit {
	return diag.Edit{Span: source.Span{File: at.File, Start: at.Start, End: at.Start}, Replacement: text}
}

// DeleteSpan returns an edit that removes the text covered by span.
func DeleteSpan(span source.Span) diag.Edit {
	return diag.Edit{Span: span, Replacement: ""}
}

// ReplaceSpan returns an edit that replaces the text covered by span with
// newText.
func ReplaceSpan(span source.Span, newText string) diag.Edit {
	return diag.Edit{Span: span, Replacement: newText}
}

// WrapWith returns two edits that insert prefix before span and suffix
// after it, for suggestions like wrapping an expression in parentheses.
func WrapWith(span source.Span, prefix, suffix string) []diag.Edit {
	return []diag.Edit{
		{Span: source.Span{File: span.File, Start: span.Start, End: span.Start}, Replacement: prefix},
		{Span: source.Span{File: span.File, Start: span.End, End: span.End}, Replacement: suffix},
	}
}

// CommentLine returns an edit that replaces lineSpan's text with a //
// commented variant, leaving an already-commented line untouched.
func CommentLine(lineSpan source.Span, lineText string) diag.Edit {
	lineNoNL := strings.TrimSuffix(lineText, "\n")
	if strings.HasPrefix(strings.TrimSpace(lineNoNL), "//") {
		return ReplaceSpan(lineSpan, lineText)
	}
	trimmedLeft := strings.TrimLeft(lineNoNL, " \t")
	leading := lineNoNL[:len(lineNoNL)-len(trimmedLeft)]
	comment := leading + "// " + trimmedLeft
	if strings.HasSuffix(lineText, "\n") {
		comment += "\n"
	}
	return ReplaceSpan(lineSpan, comment)
}

// DeleteLine returns an edit that removes lineSpan's text entirely. The
// caller decides whether lineSpan includes the trailing newline.
func DeleteLine(lineSpan source.Span) diag.Edit {
	return ReplaceSpan(lineSpan, "")
}
