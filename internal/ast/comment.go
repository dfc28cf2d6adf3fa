package ast

// Comment is the payload of a MemberComment, shared by the 'comment' and
// 'doc' keywords; IsDoc distinguishes them.
type Comment struct {
	IsDoc     bool
	About     []QualifiedName
	Locale    string
	HasLocale bool
	Body      string
}
