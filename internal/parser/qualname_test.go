package parser_test

import (
	"testing"

	"kermlc/internal/ast"
)

func TestParseQualifiedNameSimple(t *testing.T) {
	tree, root, ctx := makeTestParser("alias A for Vehicle;")
	if len(ctx.Items()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", ctx.Items())
	}
	ns, _ := tree.Namespace(root)
	alias, _ := tree.Alias(tree.MemberList(ns.Members)[0])
	if !alias.Target.IsSimple() || alias.Target.Join() != "Vehicle" {
		t.Fatalf("target = %+v, want simple 'Vehicle'", alias.Target)
	}
}

func TestParseQualifiedNameGlobal(t *testing.T) {
	tree, root, ctx := makeTestParser("alias A for ::Vehicles::Vehicle;")
	if len(ctx.Items()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", ctx.Items())
	}
	ns, _ := tree.Namespace(root)
	alias, _ := tree.Alias(tree.MemberList(ns.Members)[0])
	if !alias.Target.Global {
		t.Fatalf("expected Global flag set")
	}
	if alias.Target.Join() != "::Vehicles::Vehicle" {
		t.Fatalf("target = %q", alias.Target.Join())
	}
}

func TestParseQualifiedNameLeavesTrailingWildcardSeparator(t *testing.T) {
	tree, root, ctx := makeTestParser("import Vehicles::Wheel::*;")
	if len(ctx.Items()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", ctx.Items())
	}
	ns, _ := tree.Namespace(root)
	imp, _ := tree.Import(tree.MemberList(ns.Members)[0])
	if imp.Target.Last() != "Wheel" {
		t.Fatalf("last segment = %q, want Wheel (the '::*' should not be folded into the name)", imp.Target.Last())
	}
	if imp.Wildcard != ast.ImportStar {
		t.Fatalf("wildcard = %v, want ImportStar", imp.Wildcard)
	}
}

func TestParseQualifiedNameUnrestrictedSegment(t *testing.T) {
	tree, root, ctx := makeTestParser("alias A for 'Fuel Tank';")
	if len(ctx.Items()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", ctx.Items())
	}
	ns, _ := tree.Namespace(root)
	alias, _ := tree.Alias(tree.MemberList(ns.Members)[0])
	if alias.Target.Join() != "Fuel Tank" {
		t.Fatalf("target = %q, want quotes stripped", alias.Target.Join())
	}
}
