package ast

import "kermlc/internal/token"

// Feature is the payload of a MemberFeature: a feature declaration, a
// connector/binding/succession, a SysML usage, or an anonymous feature
// (Keyword == token.Invalid).
type Feature struct {
	Keyword       token.Kind
	IsDef         bool
	Prefix        TypePrefix
	Direction     Direction
	Multiplicity  *Multiplicity
	Relationships []Relationship
	Init          ExprID
	HasInit       bool
	IsDefaultInit bool // true for 'default expr', false for '= expr'
	Members       MemberID
}
