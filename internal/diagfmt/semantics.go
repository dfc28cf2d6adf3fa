package diagfmt

import (
	"kermlc/internal/source"
	"kermlc/internal/symbols"
)

// ScopeJSON is one scope's JSON shape in a semantics dump.
type ScopeJSON struct {
	ID        uint32 `json:"id"`
	Kind      string `json:"kind"`
	Enclosing uint32 `json:"enclosing,omitempty"`
	Owner     uint32 `json:"owner,omitempty"`
}

// SymbolJSON is one symbol's JSON shape in a semantics dump.
type SymbolJSON struct {
	ID      uint32      `json:"id"`
	Name    string      `json:"name"`
	Kind    string      `json:"kind"`
	Scope   uint32      `json:"scope"`
	Span    source.Span `json:"span"`
	Builtin bool        `json:"builtin,omitempty"`
}

// SemanticsOutput is the root shape of a debug table dump (no kermlc
// command-line flag emits it):
// every scope and symbol a session's analysis run allocated, for
// inspecting resolution without attaching a debugger.
type SemanticsOutput struct {
	Scopes  []ScopeJSON  `json:"scopes"`
	Symbols []SymbolJSON `json:"symbols"`
}

// BuildSemanticsOutput walks table's scope and symbol arenas into their
// JSON shape. table may be nil, yielding an empty output.
func BuildSemanticsOutput(table *symbols.Table) SemanticsOutput {
	out := SemanticsOutput{}
	if table == nil {
		return out
	}

	for n := uint32(1); n <= table.ScopeCount(); n++ {
		id := symbols.ScopeID(n)
		scope := table.Scope(id)
		out.Scopes = append(out.Scopes, ScopeJSON{
			ID:        n,
			Kind:      scope.Kind.String(),
			Enclosing: uint32(scope.Enclosing),
			Owner:     uint32(scope.Owner),
		})
	}

	for n := uint32(1); n <= table.SymbolCount(); n++ {
		id := symbols.SymbolID(n)
		sym := table.Symbol(id)
		out.Symbols = append(out.Symbols, SymbolJSON{
			ID:      n,
			Name:    sym.Name,
			Kind:    sym.Kind.String(),
			Scope:   uint32(sym.Scope),
			Span:    sym.DefSpan,
			Builtin: sym.IsBuiltin,
		})
	}

	return out
}
