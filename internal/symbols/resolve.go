package symbols

import "kermlc/internal/ast"

// Stack is the scope stack active at some point in a two-pass walk:
// index 0 is the innermost scope, the last entry is always the root.
type Stack []ScopeID

// Push returns a new stack with scope as the innermost frame.
func (s Stack) Push(scope ScopeID) Stack {
	out := make(Stack, 0, len(s)+1)
	out = append(out, scope)
	return append(out, s...)
}

// Lookup resolves a single identifier against the stack, innermost scope
// first, per spec §7's scope-stack lookup rule.
func (t *Table) Lookup(stack Stack, name string) (SymbolID, bool) {
	for _, sc := range stack {
		scope := t.Scope(sc)
		if scope == nil {
			continue
		}
		if id, ok := scope.Lookup(name); ok {
			return id, true
		}
	}
	return NoSymbolID, false
}

// LookupQualified resolves a qualified name. A global name (leading
// '::') is looked up starting at the root scope only; otherwise the
// first segment is resolved against the full stack and every remaining
// segment is resolved as a member of the namespace/classifier the
// previous segment named.
func (t *Table) LookupQualified(stack Stack, qn ast.QualifiedName) (SymbolID, bool) {
	if len(qn.Segments) == 0 {
		return NoSymbolID, false
	}
	var cur SymbolID
	var ok bool
	if qn.Global {
		cur, ok = t.Scope(t.root).Lookup(qn.Segments[0])
	} else {
		cur, ok = t.Lookup(stack, qn.Segments[0])
	}
	if !ok {
		return NoSymbolID, false
	}
	for _, seg := range qn.Segments[1:] {
		sym := t.Symbol(cur)
		if sym == nil {
			return NoSymbolID, false
		}
		memberScope := t.scopeOwnedBy(sym.Member)
		if !memberScope.IsValid() {
			return NoSymbolID, false
		}
		cur, ok = t.Scope(memberScope).Lookup(seg)
		if !ok {
			return NoSymbolID, false
		}
	}
	return cur, true
}

// scopeOwnedBy finds the scope (if any) whose Owner is member, searching
// the owner index from the first allocated scope forward; members that
// open a body get exactly one scope, pushed when the analyzer descends
// into that body.
func (t *Table) scopeOwnedBy(member ast.MemberID) ScopeID {
	if !member.IsValid() {
		return NoScopeID
	}
	for _, sc := range t.ownerIndex {
		if sc.owner == member {
			return sc.id
		}
	}
	return NoScopeID
}
