package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"kermlc/internal/diag"
	"kermlc/internal/diagfmt"
	"kermlc/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("class Car :> Vehicle {}\n"))

	ctx := diag.NewContext(0)
	sp := source.Span{File: fileID, Start: 13, End: 20}
	diag.ReportError(ctx, diag.SemUndefinedType, sp, "undefined supertype 'Vehicle'").
		WithHelp("did you mean 'Vehicles'?").
		Emit()

	var buf bytes.Buffer
	opts := diagfmt.JSONOpts{IncludePositions: true, PathMode: diagfmt.PathModeBasename}
	if err := diagfmt.JSON(&buf, ctx, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "E3001" || d.Severity != "error" {
		t.Fatalf("unexpected code/severity: %+v", d)
	}
	if d.Location.File != "test.kerml" || d.Location.StartLine != 1 || d.Location.StartCol != 14 {
		t.Fatalf("unexpected location: %+v", d.Location)
	}
	if d.Help != "did you mean 'Vehicles'?" {
		t.Fatalf("unexpected help: %q", d.Help)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("class A {} class B {} class C {}\n"))
	ctx := diag.NewContext(0)
	for i, name := range []string{"A", "B", "C"} {
		sp := source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)}
		diag.ReportWarning(ctx, diag.WarnUnusedImport, sp, "unused import "+name).Emit()
	}

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, ctx, fs, diagfmt.JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("expected Max to cap output at 2, got %d", out.Count)
	}
}

func TestJSONIncludesNotesAndEdits(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("import Vehicles\nfeature x : Wheel;\n"))
	ctx := diag.NewContext(0)
	insertAt := source.Span{File: fileID, Start: 15, End: 15}
	noteSp := source.Span{File: fileID, Start: 0, End: 6}
	diag.ReportError(ctx, diag.SynExpectSemicolon, insertAt, "expected ';'").
		WithEdit(insertAt, ";").
		WithNote(noteSp, "statement started here").
		Emit()

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, ctx, fs, diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d := out.Diagnostics[0]
	if len(d.Edits) != 1 || d.Edits[0].Replacement != ";" {
		t.Fatalf("unexpected edits: %+v", d.Edits)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "statement started here" {
		t.Fatalf("unexpected notes: %+v", d.Notes)
	}
}
