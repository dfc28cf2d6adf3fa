package diagfmt

import (
	"encoding/json"
	"io"

	"kermlc/internal/diag"
	"kermlc/internal/source"
)

// LocationJSON is a diagnostic or note's location in its JSON shape.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is an attached note's JSON shape.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// EditJSON is a machine-applicable edit suggestion's JSON shape.
type EditJSON struct {
	Location    LocationJSON `json:"location"`
	Replacement string       `json:"replacement"`
}

// DiagnosticJSON is a single diagnostic's JSON shape.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Help     string       `json:"help,omitempty"`
	Edits    []EditJSON   `json:"edits,omitempty"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root shape of machine-readable diagnostic
// output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{
		File:      formatPath(f, fs, opts.PathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if opts.IncludePositions {
		start, end := fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// BuildDiagnosticsOutput builds the JSON-ready shape of ctx's diagnostics
// without serializing it, so a caller can inspect or further filter it.
func BuildDiagnosticsOutput(ctx *diag.Context, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := ctx.Items()
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}

	out := DiagnosticsOutput{Diagnostics: make([]DiagnosticJSON, 0, n)}
	for i := range n {
		d := items[i]
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts),
			Help:     d.Help,
		}
		for _, edit := range d.Edits {
			dj.Edits = append(dj.Edits, EditJSON{
				Location:    makeLocation(edit.Span, fs, opts),
				Replacement: edit.Replacement,
			})
		}
		for _, note := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{
				Message:  note.Msg,
				Location: makeLocation(note.Span, fs, opts),
			})
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes ctx's diagnostics to w as indented JSON.
func JSON(w io.Writer, ctx *diag.Context, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(ctx, fs, opts))
}
