package ast

import "kermlc/internal/source"

// RelationshipKind classifies the directed edge a Relationship records
// between a classifier or feature and one of its targets.
type RelationshipKind uint8

const (
	// RelTypedBy is the ':' typing relationship.
	RelTypedBy RelationshipKind = iota
	// RelSpecializes is ':>' or the word form 'specializes'.
	RelSpecializes
	// RelSubsets is '::>' or the word form 'subsets'.
	RelSubsets
	// RelRedefines is ':>>' or the word form 'redefines'.
	RelRedefines
	// RelReferences is the word form 'references'.
	RelReferences
	// RelConjugates is '~'.
	RelConjugates
)

func (k RelationshipKind) String() string {
	switch k {
	case RelTypedBy:
		return "typed-by"
	case RelSpecializes:
		return "specializes"
	case RelSubsets:
		return "subsets"
	case RelRedefines:
		return "redefines"
	case RelReferences:
		return "references"
	case RelConjugates:
		return "conjugates"
	default:
		return "unknown"
	}
}

// Relationship is a single directed edge from the declaration that owns it
// to Target. A clause with several comma-separated targets produces one
// Relationship per target, all of the same Kind.
type Relationship struct {
	Kind   RelationshipKind
	Target QualifiedName
	Span   source.Span
}
