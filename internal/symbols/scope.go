package symbols

import "kermlc/internal/ast"

// ScopeKind classifies what a scope represents, for diagnostics and for
// the analyzer's "push a scope per member with a body" traversal rule.
type ScopeKind uint8

const (
	// ScopeRoot is the single top-level scope holding the builtin
	// prelude, shared by every file in a session.
	ScopeRoot ScopeKind = iota
	// ScopeNamespace is a 'namespace' or 'package' body.
	ScopeNamespace
	// ScopeClassifier is a classifier-kind body.
	ScopeClassifier
	// ScopeFeature is a feature-kind body.
	ScopeFeature
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeRoot:
		return "root"
	case ScopeNamespace:
		return "namespace"
	case ScopeClassifier:
		return "classifier"
	case ScopeFeature:
		return "feature"
	default:
		return "invalid"
	}
}

// Scope is a named frame in the scope stack: its own symbol table, a
// pointer to the member whose body it represents (NoMemberID for the
// root scope), and a pointer to the enclosing scope for qualified-name
// fallback lookup.
type Scope struct {
	Kind      ScopeKind
	Owner     ast.MemberID
	Enclosing ScopeID
	names     map[string]SymbolID
}

// Declare binds name to sym in this scope, overwriting any prior binding.
// Duplicate detection (E3004) happens one layer up, in the analyzer, so it
// can attach a note pointing at the prior definition before it is lost.
func (s *Scope) Declare(name string, sym SymbolID) {
	if s.names == nil {
		s.names = make(map[string]SymbolID)
	}
	s.names[name] = sym
}

// Lookup resolves name against this scope's own bindings only.
func (s *Scope) Lookup(name string) (SymbolID, bool) {
	id, ok := s.names[name]
	return id, ok
}

// Names returns every name bound directly in this scope, for
// did-you-mean suggestion search.
func (s *Scope) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	return out
}
