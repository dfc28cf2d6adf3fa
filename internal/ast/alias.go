package ast

// Alias is the payload of a MemberAlias: 'alias Name for Target;'.
type Alias struct {
	Target QualifiedName
}
