package ast

import "kermlc/internal/token"

// Classifier is the payload of a MemberClassifier. Keyword records which
// declaration keyword introduced it (token.KwType, token.KwClassifier,
// token.KwPart, ...), which the semantic analyzer uses to tell a plain
// 'type' declaration (symbol kind Type) apart from every other classifier
// keyword (symbol kind Classifier).
type Classifier struct {
	Keyword       token.Kind
	IsDef         bool // true when the keyword was suffixed with 'def'
	Prefix        TypePrefix
	Multiplicity  *Multiplicity
	Relationships []Relationship
	Members       MemberID
}
