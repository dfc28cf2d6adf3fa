package ast

import "kermlc/internal/source"

// MemberKind tags the variant a Member's Payload handle indexes into.
type MemberKind uint8

const (
	// MemberNamespace is a 'namespace' declaration.
	MemberNamespace MemberKind = iota
	// MemberPackage is a 'package' or 'library package' declaration.
	MemberPackage
	// MemberImport is an 'import' declaration.
	MemberImport
	// MemberAlias is an 'alias ... for ...' declaration.
	MemberAlias
	// MemberComment is a 'comment' or 'doc' annotation.
	MemberComment
	// MemberClassifier is any classifier-kind declaration (type, classifier,
	// class, datatype, struct, assoc, behavior, function, predicate, and the
	// SysML definition keywords).
	MemberClassifier
	// MemberFeature is any feature-kind declaration (feature, connector,
	// binding, succession, the SysML usage keywords, or an anonymous
	// feature).
	MemberFeature
)

// Member wraps a single declaration inside its owning body: a visibility,
// a kind tag, a link to its owner and next sibling, and a handle into the
// kind-specific payload arena. Members form a singly linked list per
// container via Next so a container only needs to remember its first
// member.
type Member struct {
	Kind       MemberKind
	Visibility Visibility
	Span       source.Span
	Name       string
	HasName    bool
	Owner      MemberID
	Next       MemberID
	Payload    uint32
}
