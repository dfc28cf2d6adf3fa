package symbols

import (
	"kermlc/internal/arena"
	"kermlc/internal/ast"
)

// Table aggregates a session's scope stack and symbol arena. It is built
// fresh per analysis run and discarded (or Reset) along with the rest of
// the session's arenas.
type Table struct {
	scopes     *arena.Typed[Scope]
	symbols    *arena.Typed[Symbol]
	root       ScopeID
	ownerIndex []ownerEntry
}

// ownerEntry records which scope a body-bearing member opened, so
// LookupQualified can walk into a nested namespace or classifier by
// member instead of by scope ID.
type ownerEntry struct {
	owner ast.MemberID
	id    ScopeID
}

// NewTable creates a Table with a single root scope already pushed,
// pre-populated by Prelude.
func NewTable(capHint uint32) *Table {
	t := &Table{
		scopes:  arena.NewTyped[Scope](capHint / 8),
		symbols: arena.NewTyped[Symbol](capHint),
	}
	t.root = ScopeID(t.scopes.Alloc(Scope{Kind: ScopeRoot, Owner: ast.NoMemberID, Enclosing: NoScopeID}))
	for _, b := range Prelude() {
		id := t.AllocSymbol(Symbol{Name: b.Name, Kind: b.Kind, Scope: t.root, IsBuiltin: true})
		t.Scope(t.root).Declare(b.Name, id)
	}
	return t
}

// Root returns the session's single root scope.
func (t *Table) Root() ScopeID { return t.root }

// ScopeCount returns the number of scopes allocated so far, for callers
// (diagfmt's semantics dump) that need to enumerate every scope by ID.
func (t *Table) ScopeCount() uint32 { return t.scopes.Len() }

// SymbolCount returns the number of symbols allocated so far, including
// the builtin prelude.
func (t *Table) SymbolCount() uint32 { return t.symbols.Len() }

// Scope returns the scope at id, or nil for NoScopeID.
func (t *Table) Scope(id ScopeID) *Scope { return t.scopes.Get(uint32(id)) }

// Symbol returns the symbol at id, or nil for NoSymbolID.
func (t *Table) Symbol(id SymbolID) *Symbol { return t.symbols.Get(uint32(id)) }

// PushScope allocates a child scope of enclosing and returns its ID. When
// owner is valid, the scope is indexed by owner so LookupQualified can
// later resolve a qualified-name segment into it.
func (t *Table) PushScope(kind ScopeKind, owner ast.MemberID, enclosing ScopeID) ScopeID {
	id := ScopeID(t.scopes.Alloc(Scope{Kind: kind, Owner: owner, Enclosing: enclosing}))
	if owner.IsValid() {
		t.ownerIndex = append(t.ownerIndex, ownerEntry{owner: owner, id: id})
	}
	return id
}

// AllocSymbol allocates sym and returns its ID.
func (t *Table) AllocSymbol(sym Symbol) SymbolID {
	return SymbolID(t.symbols.Alloc(sym))
}

// Reset rewinds the scope and symbol arenas and re-pushes the root scope,
// per spec §4.1's bulk-reset arena discipline.
func (t *Table) Reset() {
	t.scopes.Reset()
	t.symbols.Reset()
	t.ownerIndex = t.ownerIndex[:0]
	t.root = ScopeID(t.scopes.Alloc(Scope{Kind: ScopeRoot, Owner: ast.NoMemberID, Enclosing: NoScopeID}))
	for _, b := range Prelude() {
		id := t.AllocSymbol(Symbol{Name: b.Name, Kind: b.Kind, Scope: t.root, IsBuiltin: true})
		t.Scope(t.root).Declare(b.Name, id)
	}
}
