package diag

import "kermlc/internal/source"

// Note is auxiliary context attached to a Diagnostic. Per spec, a note is
// itself a diagnostic with severity note; Note keeps only the fields a
// nested render needs rather than embedding a full Diagnostic, since notes
// never carry their own notes, help text, or edits.
type Note struct {
	Span source.Span
	Msg  string
}

// Edit is a machine-applicable textual fix suggestion: replace the bytes at
// Span with Replacement. An insertion has Span.Empty() == true.
type Edit struct {
	Span        source.Span
	Replacement string
}

// Diagnostic is a single coded, source-localized issue.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Primary  source.Span
	Message  string
	Help     string
	Edits    []Edit
	Notes    []Note
}

// WithHelp returns a copy of d with Help set. Mirrors the builder-style
// augmentation spec §4.3 describes for add_help before emission.
func (d Diagnostic) WithHelp(text string) Diagnostic {
	d.Help = text
	return d
}

// WithEdit returns a copy of d with an edit suggestion appended.
func (d Diagnostic) WithEdit(span source.Span, replacement string) Diagnostic {
	d.Edits = append(append([]Edit(nil), d.Edits...), Edit{Span: span, Replacement: replacement})
	return d
}

// WithNote returns a copy of d with a note appended.
func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Span: span, Msg: msg})
	return d
}
