package sema

import (
	"kermlc/internal/ast"
	"kermlc/internal/diag"
	"kermlc/internal/symbols"
)

// Analyzer drives the two-pass walk spec §4.6 describes: per scope,
// definitions are fully collected before any reference is checked, and
// reference checking recurses into a member's body only after that
// member's own relationships have been validated.
type Analyzer struct {
	tree     *ast.Tree
	reporter diag.Reporter
	table    *symbols.Table
}

// New creates an Analyzer over tree, reporting through opts.Reporter and
// building a fresh symbol table pre-populated with the builtin prelude.
func New(tree *ast.Tree, opts Options) *Analyzer {
	return &Analyzer{
		tree:     tree,
		reporter: opts.Reporter,
		table:    symbols.NewTable(256),
	}
}

// Table returns the symbol table the most recent Analyze call built, for
// callers (or a later pass) that need to inspect resolved symbols.
func (a *Analyzer) Table() *symbols.Table { return a.table }

// Analyze walks root's member list, declaring and resolving every member
// reachable from it, and returns the symbol table the walk populated.
func (a *Analyzer) Analyze(root ast.MemberID) *symbols.Table {
	ns, ok := a.tree.Namespace(root)
	if !ok {
		return a.table
	}
	stack := symbols.Stack{a.table.Root()}
	a.analyzeScope(stack, ns.Members)

	// Reserved for future work per spec §4.6: these hooks must compile
	// and run as no-ops until cycle detection, type compatibility,
	// multiplicity validation, and import resolution are implemented.
	a.checkSpecializationCycles(a.table)
	a.checkTypeCompatibility(a.table)
	a.checkMultiplicityConstraints(a.table)
	a.checkImports(a.table)

	return a.table
}

func (a *Analyzer) shouldStop() bool {
	ctx, ok := a.reporter.(interface{ ShouldStop() bool })
	return ok && ctx.ShouldStop()
}
