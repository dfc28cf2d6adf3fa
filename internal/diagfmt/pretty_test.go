package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"kermlc/internal/diag"
	"kermlc/internal/diagfmt"
	"kermlc/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/src/test.kerml", []byte("class A :> Missing {}\n"))
	fs.SetBaseDir("/home/user/project")

	ctx := diag.NewContext(0)
	diag.ReportError(ctx, diag.SemUndefinedType, source.Span{File: fileID, Start: 11, End: 18}, "undefined supertype 'Missing'").Emit()

	tests := []struct {
		name     string
		mode     diagfmt.PathMode
		contains string
	}{
		{"absolute", diagfmt.PathModeAbsolute, "/home/user/project/src/test.kerml"},
		{"relative", diagfmt.PathModeRelative, "src/test.kerml"},
		{"basename", diagfmt.PathModeBasename, "test.kerml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			diagfmt.Pretty(&buf, ctx, fs, diagfmt.PrettyOpts{Color: diagfmt.ColorNever, PathMode: tt.mode})
			if !strings.Contains(buf.String(), tt.contains) {
				t.Fatalf("output %q does not contain %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestPrettyRendersHeaderCodeAndMessage(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("class Car :> Vehicle {}\n"))

	ctx := diag.NewContext(0)
	diag.ReportError(ctx, diag.SemUndefinedType, source.Span{File: fileID, Start: 13, End: 20}, "undefined supertype 'Vehicle'").Emit()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, ctx, fs, diagfmt.PrettyOpts{Color: diagfmt.ColorNever})
	out := buf.String()

	if !strings.Contains(out, "test.kerml:1:14: error[E3001]: undefined supertype 'Vehicle'") {
		t.Fatalf("missing expected header line, got:\n%s", out)
	}
	if !strings.Contains(out, "1 | class Car :> Vehicle {}") {
		t.Fatalf("missing expected source window, got:\n%s", out)
	}
}

func TestPrettyRendersHelpAndSuggestion(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("feature x : Whel\n"))

	ctx := diag.NewContext(0)
	sp := source.Span{File: fileID, Start: 12, End: 16}
	diag.ReportError(ctx, diag.SemUndefinedType, sp, "undefined type 'Whel'").
		WithHelp("did you mean 'Wheel'?").
		WithEdit(sp, "Wheel").
		Emit()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, ctx, fs, diagfmt.PrettyOpts{Color: diagfmt.ColorNever})
	out := buf.String()

	if !strings.Contains(out, "   = help: did you mean 'Wheel'?") {
		t.Fatalf("missing help line, got:\n%s", out)
	}
	if !strings.Contains(out, "   = suggestion: replace with 'Wheel'") {
		t.Fatalf("missing suggestion line, got:\n%s", out)
	}
}

func TestPrettyRendersNoteRecursively(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("class A {}\nclass A {}\n"))

	ctx := diag.NewContext(0)
	firstSpan := source.Span{File: fileID, Start: 6, End: 7}
	secondSpan := source.Span{File: fileID, Start: 17, End: 18}
	diag.ReportError(ctx, diag.SemDuplicateName, secondSpan, "duplicate definition of 'A'").
		WithNote(firstSpan, "previous definition of 'A' here").
		Emit()

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, ctx, fs, diagfmt.PrettyOpts{Color: diagfmt.ColorNever})
	out := buf.String()

	if !strings.Contains(out, "test.kerml:2:7: error[E3004]: duplicate definition of 'A'") {
		t.Fatalf("missing primary header, got:\n%s", out)
	}
	if !strings.Contains(out, "test.kerml:1:7: note: previous definition of 'A' here") {
		t.Fatalf("missing note header, got:\n%s", out)
	}
}

func TestPrintSummaryOmittedWhenClean(t *testing.T) {
	ctx := diag.NewContext(0)
	var buf bytes.Buffer
	diagfmt.PrintSummary(&buf, ctx)
	if buf.Len() != 0 {
		t.Fatalf("expected no summary line, got %q", buf.String())
	}
}

func TestPrintSummaryCountsErrorsAndWarnings(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kerml", []byte("class A {}\n"))
	sp := source.Span{File: fileID, Start: 0, End: 5}

	ctx := diag.NewContext(0)
	diag.ReportError(ctx, diag.SemUndefinedType, sp, "undefined type 'X'").Emit()
	diag.ReportWarning(ctx, diag.WarnUnusedImport, sp, "unused import").Emit()

	var buf bytes.Buffer
	diagfmt.PrintSummary(&buf, ctx)
	if got := buf.String(); got != "1 error(s) and 1 warning(s) generated.\n" {
		t.Fatalf("unexpected summary: %q", got)
	}
}
