// Package session wires arena, source, diagnostic context, lexer, parser,
// and semantic analyzer together in the order spec §3's lifecycle
// paragraph describes, giving spec §6's external-interface operations
// (arena_init, intern_init, diag_context_init, lexer_init, parser_init,
// semantic_init) a single concrete Go entry point.
package session

import (
	"fmt"
	"io"

	"kermlc/internal/ast"
	"kermlc/internal/diag"
	"kermlc/internal/intern"
	"kermlc/internal/lexer"
	"kermlc/internal/parser"
	"kermlc/internal/sema"
	"kermlc/internal/source"
	"kermlc/internal/symbols"
)

// DefaultArenaBlockSize seeds every Tree a Session parses when Options
// does not override it.
const DefaultArenaBlockSize = 256

// Options configures a Session's resource limits and diagnostic policy.
// A zero Options is usable: it sets no error cutoff and the default arena
// block size.
type Options struct {
	// MaxErrors is the cutoff spec §7 describes (0 means unlimited). The
	// default of diag.DefaultMaxErrors comes from config.Default.
	MaxErrors int
	// PromoteWarnings, when true, escalates every warning to an error
	// before it reaches the diagnostic context's counters.
	PromoteWarnings bool
	// ArenaBlockSize seeds the capacity hint for each file's AST arena.
	// Zero is filled in with DefaultArenaBlockSize.
	ArenaBlockSize uint32
}

// resolved returns a copy of opts with a zero ArenaBlockSize replaced by
// DefaultArenaBlockSize; a zero MaxErrors is kept as "unlimited".
func (o Options) resolved() Options {
	if o.ArenaBlockSize == 0 {
		o.ArenaBlockSize = DefaultArenaBlockSize
	}
	return o
}

// Session owns every resource a single compilation needs: the file set,
// the interned-string table, and the diagnostic context. Per spec §5,
// a Session is a single-threaded cooperative unit; running several
// compilations in parallel means giving each its own Session (see
// internal/batch).
type Session struct {
	Files  *source.FileSet
	Interp *intern.Table
	Diags  *diag.Context

	opts Options
}

// New creates a Session configured by opts.
func New(opts Options) *Session {
	opts = opts.resolved()
	ctx := diag.NewContext(opts.MaxErrors)
	ctx.SetPromoteWarnings(opts.PromoteWarnings)
	return &Session{
		Files:  source.NewFileSet(),
		Interp: intern.New(),
		Diags:  ctx,
		opts:   opts,
	}
}

// Result is the outcome of compiling a single file through lex, parse,
// and semantic analysis.
type Result struct {
	File  source.FileID
	Tree  *ast.Tree
	Table *symbols.Table
}

// CompileFile loads path from disk and compiles it.
func (s *Session) CompileFile(path string) (*Result, error) {
	fileID, err := s.Files.Load(path)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return s.compile(fileID), nil
}

// CompileReader drains r under name and compiles the result, the
// collaborator surface spec §1 names for the thin CLI's stdin mode.
func (s *Session) CompileReader(name string, r io.Reader) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return s.CompileSource(name, content), nil
}

// CompileSource registers content directly under name (tests, embedded
// snippets) and compiles it.
func (s *Session) CompileSource(name string, content []byte) *Result {
	fileID := s.Files.AddVirtual(name, content)
	return s.compile(fileID)
}

func (s *Session) compile(fileID source.FileID) *Result {
	file := s.Files.Get(fileID)

	lx := lexer.New(file, lexer.Options{Reporter: s.Diags})
	tree := ast.NewTree(s.opts.ArenaBlockSize)
	root := parser.ParseFile(lx, tree, parser.Options{Reporter: s.Diags})

	result := &Result{File: fileID, Tree: tree}
	if s.Diags.HasFatal() {
		return result
	}

	analyzer := sema.New(tree, sema.Options{Reporter: s.Diags})
	result.Table = analyzer.Analyze(root)
	return result
}

// Reset clears accumulated diagnostics so a Session can be reused for a
// fresh compilation without reallocating its file set or intern table.
func (s *Session) Reset() {
	s.Diags.Clear()
}
