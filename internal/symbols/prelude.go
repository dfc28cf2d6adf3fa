package symbols

// BuiltinEntry names a symbol that exists in the root scope without any
// corresponding AST node, pre-dating every file in a session.
type BuiltinEntry struct {
	Name string
	Kind SymbolKind
}

// kerml base library + SysML foundation types every model can reference
// without an explicit import, per spec §7's builtin root scope.
var preludeEntries = []BuiltinEntry{
	{Name: "Base", Kind: SymbolType},
	{Name: "Anything", Kind: SymbolType},
	{Name: "Boolean", Kind: SymbolType},
	{Name: "String", Kind: SymbolType},
	{Name: "Integer", Kind: SymbolType},
	{Name: "Real", Kind: SymbolType},
	{Name: "Natural", Kind: SymbolType},
	{Name: "Positive", Kind: SymbolType},
	{Name: "UnlimitedNatural", Kind: SymbolType},
	{Name: "Occurrence", Kind: SymbolType},
	{Name: "Object", Kind: SymbolType},
	{Name: "Link", Kind: SymbolType},
	{Name: "Classifier", Kind: SymbolType},
	{Name: "Type", Kind: SymbolType},
	{Name: "Feature", Kind: SymbolType},
	{Name: "Class", Kind: SymbolType},
	{Name: "DataType", Kind: SymbolType},
	{Name: "Struct", Kind: SymbolType},
	{Name: "Association", Kind: SymbolType},
	{Name: "Behavior", Kind: SymbolType},
	{Name: "Function", Kind: SymbolType},
	{Name: "Predicate", Kind: SymbolType},
}

// Prelude returns the builtin symbols every root scope starts with.
func Prelude() []BuiltinEntry { return preludeEntries }
