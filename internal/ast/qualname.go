package ast

import "strings"

// QualifiedName is an ordered sequence of interned segment names, with a
// flag marking a leading '::' that anchors the lookup at the root scope
// instead of the enclosing scope stack.
type QualifiedName struct {
	Segments []string
	Global   bool
}

// Join renders the qualified name in its canonical '::'-separated textual
// form, reconstructing the leading '::' when Global is set. This is the
// lossless round-trip form spec §8 requires of the segment representation.
func (q QualifiedName) Join() string {
	var b strings.Builder
	if q.Global {
		b.WriteString("::")
	}
	for i, seg := range q.Segments {
		if i > 0 {
			b.WriteString("::")
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Last returns the final segment, or "" for an empty name.
func (q QualifiedName) Last() string {
	if len(q.Segments) == 0 {
		return ""
	}
	return q.Segments[len(q.Segments)-1]
}

// IsSimple reports whether q is a single, non-global segment — a plain
// identifier rather than a path.
func (q QualifiedName) IsSimple() bool {
	return !q.Global && len(q.Segments) == 1
}
