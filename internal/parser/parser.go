// Package parser implements the recursive-descent, precedence-climbing
// parser: a token stream from internal/lexer becomes an internal/ast
// Tree, with panic-mode recovery at five synchronization levels.
package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/lexer"
	"kermlc/internal/source"
)

// Parser holds the state of a single-file parse: the token source, the
// AST it builds into, and the span of the last token consumed (used to
// place a diagnostic immediately after malformed input rather than at a
// confusing EOF position).
type Parser struct {
	lx       *lexer.Lexer
	tree     *ast.Tree
	opts     Options
	lastSpan source.Span
}

// New creates a Parser reading from lx and allocating into tree.
func New(lx *lexer.Lexer, tree *ast.Tree, opts Options) *Parser {
	return &Parser{lx: lx, tree: tree, opts: opts, lastSpan: lx.EmptySpan()}
}

// ParseFile is the parser's entry point: it returns a root namespace
// member whose body holds every top-level member of the source, per
// spec §4.5.
func ParseFile(lx *lexer.Lexer, tree *ast.Tree, opts Options) ast.MemberID {
	p := New(lx, tree, opts)
	return p.parseRoot()
}

func (p *Parser) parseRoot() ast.MemberID {
	start := p.lx.Peek().Span

	first := p.parseMemberList(func() bool { return false })

	sp := start.Cover(p.lastSpan)
	root := p.tree.NewNamespace(ast.Public, sp, "", false, ast.Namespace{Members: first})
	p.tree.Root = root
	return root
}
