package diag

import (
	"testing"

	"kermlc/internal/source"
)

func TestContextEmitCountsBySeverity(t *testing.T) {
	c := NewContext(DefaultMaxErrors)
	c.Emit(Diagnostic{Code: SemUndefinedType, Severity: SevError})
	c.Emit(Diagnostic{Code: WarnUnusedImport, Severity: SevWarning})
	c.Emit(Diagnostic{Code: WarnShadowedName, Severity: SevNote})

	if c.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1", c.ErrorCount())
	}
	if c.WarningCount() != 1 {
		t.Fatalf("WarningCount() = %d, want 1", c.WarningCount())
	}
	if !c.HasErrors() || !c.HasWarnings() {
		t.Fatalf("expected both HasErrors and HasWarnings true")
	}
}

func TestContextFamilyCounters(t *testing.T) {
	c := NewContext(0)
	c.Emit(Diagnostic{Code: LexInvalidChar, Severity: SevError})
	c.Emit(Diagnostic{Code: SynExpectSemicolon, Severity: SevError})
	c.Emit(Diagnostic{Code: SemDuplicateName, Severity: SevError})

	if c.ParseErrorCount() != 2 {
		t.Fatalf("ParseErrorCount() = %d, want 2", c.ParseErrorCount())
	}
	if c.SemanticErrorCount() != 1 {
		t.Fatalf("SemanticErrorCount() = %d, want 1", c.SemanticErrorCount())
	}
}

func TestContextPromoteWarnings(t *testing.T) {
	c := NewContext(0)
	c.SetPromoteWarnings(true)
	got := c.Emit(Diagnostic{Code: WarnDeprecated, Severity: SevWarning})
	if got.Severity != SevError {
		t.Fatalf("promoted warning severity = %v, want SevError", got.Severity)
	}
	if c.ErrorCount() != 1 || c.WarningCount() != 0 {
		t.Fatalf("promotion must move the count from warning to error: errors=%d warnings=%d", c.ErrorCount(), c.WarningCount())
	}
}

func TestContextShouldStopOnMaxErrors(t *testing.T) {
	c := NewContext(2)
	c.Emit(Diagnostic{Code: SemDuplicateName, Severity: SevError})
	if c.ShouldStop() {
		t.Fatal("should not stop before reaching max errors")
	}
	c.Emit(Diagnostic{Code: SemDuplicateName, Severity: SevError})
	if !c.ShouldStop() {
		t.Fatal("should stop once error count reaches max errors")
	}
}

func TestContextShouldStopOnFatal(t *testing.T) {
	c := NewContext(0)
	c.Emit(Diagnostic{Code: LexInvalidChar, Severity: SevFatal})
	if !c.ShouldStop() {
		t.Fatal("a fatal diagnostic must short-circuit the session regardless of max errors")
	}
}

func TestContextMaxErrorsZeroMeansUnlimited(t *testing.T) {
	c := NewContext(0)
	for i := 0; i < 1000; i++ {
		c.Emit(Diagnostic{Code: SemDuplicateName, Severity: SevError})
	}
	if c.ShouldStop() {
		t.Fatal("max errors of 0 must mean unlimited")
	}
}

func TestContextClear(t *testing.T) {
	c := NewContext(0)
	c.Emit(Diagnostic{Code: SemDuplicateName, Severity: SevError})
	c.Clear()
	if c.ErrorCount() != 0 || len(c.Items()) != 0 {
		t.Fatal("Clear must reset counters and items")
	}
}

func TestContextSortOrder(t *testing.T) {
	c := NewContext(0)
	c.Emit(Diagnostic{Code: SemDuplicateName, Severity: SevError, Primary: source.Span{File: 0, Start: 10, End: 12}})
	c.Emit(Diagnostic{Code: SemUndefinedType, Severity: SevError, Primary: source.Span{File: 0, Start: 1, End: 2}})
	c.Sort()
	items := c.Items()
	if items[0].Primary.Start != 1 {
		t.Fatalf("expected ascending order by start offset, got %+v", items)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	c := NewContext(0)
	b := ReportError(c, SemUndefinedType, source.Span{}, "undefined type 'X'").
		WithHelp("did you mean 'Y'?").
		WithEdit(source.Span{}, ";").
		WithNote(source.Span{}, "declared here")
	b.Emit()
	b.Emit() // second call must be a no-op
	if c.ErrorCount() != 1 {
		t.Fatalf("ErrorCount() = %d, want 1 (double Emit must not double-count)", c.ErrorCount())
	}
	d := c.Items()[0]
	if d.Help == "" || len(d.Edits) != 1 || len(d.Notes) != 1 {
		t.Fatalf("diagnostic missing accumulated fields: %+v", d)
	}
}
