package ast

import (
	"testing"

	"kermlc/internal/source"
)

func TestMemberLinkedList(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	first := tr.NewFeature(Public, sp, "a", true, Feature{})
	second := tr.NewFeature(Public, sp, "b", true, Feature{})
	third := tr.NewFeature(Public, sp, "c", true, Feature{})

	tr.Member(first).Next = second
	tr.Member(second).Next = third

	got := tr.MemberList(first)
	want := []MemberID{first, second, third}
	if len(got) != len(want) {
		t.Fatalf("MemberList length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MemberList[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestNamespaceRoundTrip(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	member := tr.NewFeature(Public, sp, "x", true, Feature{})
	id := tr.NewNamespace(Public, sp, "pkg", true, Namespace{Members: member})

	got, ok := tr.Namespace(id)
	if !ok {
		t.Fatalf("Namespace(id) ok = false, want true")
	}
	if got.Members != member {
		t.Fatalf("Namespace.Members = %d, want %d", got.Members, member)
	}

	if _, ok := tr.Package(id); ok {
		t.Fatalf("Package(id) on a namespace member must fail")
	}
}

func TestClassifierPayloadAndRelationships(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	rel := Relationship{Kind: RelSpecializes, Target: QualifiedName{Segments: []string{"Base"}}}
	id := tr.NewClassifier(Public, sp, "Foo", true, Classifier{
		Prefix:        TypePrefix{Abstract: true},
		Relationships: []Relationship{rel},
	})

	c, ok := tr.Classifier(id)
	if !ok {
		t.Fatalf("Classifier(id) ok = false, want true")
	}
	if !c.Prefix.Abstract {
		t.Fatalf("Classifier.Prefix.Abstract = false, want true")
	}
	if len(c.Relationships) != 1 || c.Relationships[0].Kind != RelSpecializes {
		t.Fatalf("Classifier.Relationships = %+v, want one RelSpecializes", c.Relationships)
	}
}

func TestIndexExprStoresBaseAndIndex(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	base := tr.NewName(sp, QualifiedName{Segments: []string{"arr"}})
	index := tr.NewIntLit(sp, "0")
	id := tr.NewIndex(sp, base, index)

	got, ok := tr.Index(id)
	if !ok {
		t.Fatalf("Index(id) ok = false, want true")
	}
	if got.Base != base {
		t.Fatalf("IndexExpr.Base = %d, want %d", got.Base, base)
	}
	if got.Index != index {
		t.Fatalf("IndexExpr.Index = %d, want %d", got.Index, index)
	}
}

func TestConditionalExprOptionalElse(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	cond := tr.NewBoolLit(sp, true)
	then := tr.NewIntLit(sp, "1")
	id := tr.NewConditional(sp, cond, then, NoExprID)

	got, ok := tr.Conditional(id)
	if !ok {
		t.Fatalf("Conditional(id) ok = false, want true")
	}
	if got.Else.IsValid() {
		t.Fatalf("Conditional.Else = %d, want NoExprID", got.Else)
	}
}

func TestBinaryExprPayload(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	left := tr.NewIntLit(sp, "1")
	right := tr.NewIntLit(sp, "2")
	id := tr.NewBinary(sp, BinAdd, left, right)

	got, ok := tr.Binary(id)
	if !ok {
		t.Fatalf("Binary(id) ok = false, want true")
	}
	if got.Op != BinAdd || got.Left != left || got.Right != right {
		t.Fatalf("BinaryExpr = %+v, want Op=BinAdd Left=%d Right=%d", got, left, right)
	}
}

func TestResetClearsMembersAndExprs(t *testing.T) {
	tr := NewTree(8)
	sp := source.Span{}

	tr.NewFeature(Public, sp, "a", true, Feature{})
	tr.NewIntLit(sp, "1")
	tr.Reset()

	if tr.Members.Len() != 0 {
		t.Fatalf("Members.Len() after Reset = %d, want 0", tr.Members.Len())
	}
	if tr.Exprs.Len() != 0 {
		t.Fatalf("Exprs.Len() after Reset = %d, want 0", tr.Exprs.Len())
	}
}

func TestQualifiedNameJoinRoundTrip(t *testing.T) {
	cases := []struct {
		name QualifiedName
		want string
	}{
		{QualifiedName{Segments: []string{"A"}}, "A"},
		{QualifiedName{Segments: []string{"A", "B", "C"}}, "A::B::C"},
		{QualifiedName{Segments: []string{"A", "B"}, Global: true}, "::A::B"},
	}
	for _, tc := range cases {
		if got := tc.name.Join(); got != tc.want {
			t.Fatalf("Join() = %q, want %q", got, tc.want)
		}
	}
}

func TestQualifiedNameIsSimple(t *testing.T) {
	if !(QualifiedName{Segments: []string{"A"}}).IsSimple() {
		t.Fatalf("single non-global segment should be simple")
	}
	if (QualifiedName{Segments: []string{"A"}, Global: true}).IsSimple() {
		t.Fatalf("a global name should not be simple")
	}
	if (QualifiedName{Segments: []string{"A", "B"}}).IsSimple() {
		t.Fatalf("a multi-segment name should not be simple")
	}
}
