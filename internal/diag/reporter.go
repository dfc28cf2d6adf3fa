package diag

import "kermlc/internal/source"

// Reporter is the minimal contract the lexer, parser, and semantic
// analyzer emit diagnostics through, so none of them needs a concrete
// *Context reference.
type Reporter interface {
	Report(d Diagnostic)
}

// Report implements Reporter directly on *Context.
func (c *Context) Report(d Diagnostic) { c.Emit(d) }

// ReportBuilder accumulates a diagnostic's help text, edits, and notes
// before a single Emit call, the fluent style every call site in the
// lexer and parser uses (e.g. consume() attaching a fix-it before
// reporting a missing ';').
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder starts building a diagnostic bound to r.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag: Diagnostic{
			Severity: sev,
			Code:     code,
			Primary:  primary,
			Message:  msg,
		},
	}
}

// ReportError starts a SevError diagnostic.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

// ReportWarning starts a SevWarning diagnostic.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

// ReportFatal starts a SevFatal diagnostic.
func ReportFatal(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevFatal, code, primary, msg)
}

// WithHelp sets the diagnostic's help text.
func (b *ReportBuilder) WithHelp(text string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Help = text
	return b
}

// WithEdit appends a machine-applicable edit suggestion.
func (b *ReportBuilder) WithEdit(span source.Span, replacement string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Edits = append(b.diag.Edits, Edit{Span: span, Replacement: replacement})
	return b
}

// WithNote appends an attached note.
func (b *ReportBuilder) WithNote(span source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Notes = append(b.diag.Notes, Note{Span: span, Msg: msg})
	return b
}

// Emit sends the accumulated diagnostic to the bound Reporter exactly
// once; later calls are no-ops.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}
