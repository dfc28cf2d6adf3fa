package ast

// Namespace is the payload of a MemberNamespace. The parser's root result
// is itself a Namespace whose owning Member is synthetic (spec §4.5's
// "entry point returns a root namespace").
type Namespace struct {
	Members MemberID // first member of the body; NoMemberID if empty
}

// Package is the payload of a MemberPackage.
type Package struct {
	IsLibrary bool
	Members   MemberID
}
