package diagfmt_test

import (
	"testing"

	"kermlc/internal/ast"
	"kermlc/internal/diagfmt"
	"kermlc/internal/source"
	"kermlc/internal/symbols"
)

func TestBuildSemanticsOutputIncludesPreludeAndUserSymbols(t *testing.T) {
	table := symbols.NewTable(64)
	sym := table.AllocSymbol(symbols.Symbol{
		Name:    "Car",
		Kind:    symbols.SymbolClassifier,
		Scope:   table.Root(),
		Member:  ast.MemberID(1),
		DefSpan: source.Span{File: 0, Start: 6, End: 9},
	})
	table.Scope(table.Root()).Declare("Car", sym)

	out := diagfmt.BuildSemanticsOutput(table)
	if len(out.Scopes) != 1 {
		t.Fatalf("expected exactly the root scope, got %d", len(out.Scopes))
	}
	if out.Scopes[0].Kind != "root" {
		t.Fatalf("expected root scope kind, got %q", out.Scopes[0].Kind)
	}

	foundCar := false
	for _, s := range out.Symbols {
		if s.Name == "Car" {
			foundCar = true
			if s.Builtin {
				t.Fatalf("Car should not be marked builtin")
			}
		}
	}
	if !foundCar {
		t.Fatalf("expected Car among dumped symbols, got %+v", out.Symbols)
	}
}

func TestBuildSemanticsOutputOnNilTable(t *testing.T) {
	out := diagfmt.BuildSemanticsOutput(nil)
	if out.Scopes != nil || out.Symbols != nil {
		t.Fatalf("expected empty output for nil table, got %+v", out)
	}
}
