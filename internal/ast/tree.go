package ast

import (
	"kermlc/internal/arena"
	"kermlc/internal/source"
)

// Tree owns every node of a parsed source file: the Member and Expr spines,
// plus one handle arena per payload kind. Destroying or resetting the
// session arena a Tree's handle arenas are built on releases the whole
// tree in one step, per spec §3's arena lifecycle.
type Tree struct {
	Root MemberID

	Members *arena.Typed[Member]
	Exprs   *arena.Typed[Expr]

	namespaces  *arena.Typed[Namespace]
	packages    *arena.Typed[Package]
	classifiers *arena.Typed[Classifier]
	features    *arena.Typed[Feature]
	imports     *arena.Typed[Import]
	aliases     *arena.Typed[Alias]
	comments    *arena.Typed[Comment]

	intLits      *arena.Typed[IntLitExpr]
	realLits     *arena.Typed[RealLitExpr]
	stringLits   *arena.Typed[StringLitExpr]
	boolLits     *arena.Typed[BoolLitExpr]
	names        *arena.Typed[NameExpr]
	chains       *arena.Typed[ChainExpr]
	invokes      *arena.Typed[InvokeExpr]
	indexes      *arena.Typed[IndexExpr]
	unaries      *arena.Typed[UnaryExpr]
	binaries     *arena.Typed[BinaryExpr]
	conditionals *arena.Typed[ConditionalExpr]
}

// NewTree creates an empty Tree whose handle arenas are pre-sized to
// capHint entries.
func NewTree(capHint uint32) *Tree {
	return &Tree{
		Members: arena.NewTyped[Member](capHint),
		Exprs:   arena.NewTyped[Expr](capHint),

		namespaces:  arena.NewTyped[Namespace](capHint / 4),
		packages:    arena.NewTyped[Package](capHint / 4),
		classifiers: arena.NewTyped[Classifier](capHint / 4),
		features:    arena.NewTyped[Feature](capHint / 2),
		imports:     arena.NewTyped[Import](capHint / 8),
		aliases:     arena.NewTyped[Alias](capHint / 8),
		comments:    arena.NewTyped[Comment](capHint / 8),

		intLits:      arena.NewTyped[IntLitExpr](capHint / 4),
		realLits:     arena.NewTyped[RealLitExpr](capHint / 8),
		stringLits:   arena.NewTyped[StringLitExpr](capHint / 8),
		boolLits:     arena.NewTyped[BoolLitExpr](capHint / 8),
		names:        arena.NewTyped[NameExpr](capHint / 2),
		chains:       arena.NewTyped[ChainExpr](capHint / 8),
		invokes:      arena.NewTyped[InvokeExpr](capHint / 8),
		indexes:      arena.NewTyped[IndexExpr](capHint / 8),
		unaries:      arena.NewTyped[UnaryExpr](capHint / 8),
		binaries:     arena.NewTyped[BinaryExpr](capHint / 4),
		conditionals: arena.NewTyped[ConditionalExpr](capHint / 8),
	}
}

// Reset rewinds every handle arena so the Tree can be reused by the next
// parse in the same session, per spec §4.1's bulk-reset contract.
func (t *Tree) Reset() {
	t.Root = NoMemberID
	t.Members.Reset()
	t.Exprs.Reset()
	t.namespaces.Reset()
	t.packages.Reset()
	t.classifiers.Reset()
	t.features.Reset()
	t.imports.Reset()
	t.aliases.Reset()
	t.comments.Reset()
	t.intLits.Reset()
	t.realLits.Reset()
	t.stringLits.Reset()
	t.boolLits.Reset()
	t.names.Reset()
	t.chains.Reset()
	t.invokes.Reset()
	t.indexes.Reset()
	t.unaries.Reset()
	t.binaries.Reset()
	t.conditionals.Reset()
}

// Member returns the member at id, or nil for NoMemberID.
func (t *Tree) Member(id MemberID) *Member { return t.Members.Get(uint32(id)) }

// Expr returns the expression at id, or nil for NoExprID.
func (t *Tree) Expr(id ExprID) *Expr { return t.Exprs.Get(uint32(id)) }

// MemberList walks a Member.Next linked list starting at first, in source
// order, and returns the collected member IDs.
func (t *Tree) MemberList(first MemberID) []MemberID {
	var out []MemberID
	for id := first; id.IsValid(); {
		out = append(out, id)
		m := t.Member(id)
		if m == nil {
			break
		}
		id = m.Next
	}
	return out
}

func (t *Tree) newMember(kind MemberKind, vis Visibility, sp source.Span, name string, hasName bool, payload uint32) MemberID {
	return MemberID(t.Members.Alloc(Member{
		Kind:       kind,
		Visibility: vis,
		Span:       sp,
		Name:       name,
		HasName:    hasName,
		Payload:    payload,
	}))
}

// NewNamespace allocates a namespace member and its payload.
func (t *Tree) NewNamespace(vis Visibility, sp source.Span, name string, hasName bool, ns Namespace) MemberID {
	payload := t.namespaces.Alloc(ns)
	return t.newMember(MemberNamespace, vis, sp, name, hasName, payload)
}

// Namespace resolves a MemberNamespace's payload.
func (t *Tree) Namespace(id MemberID) (*Namespace, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberNamespace {
		return nil, false
	}
	return t.namespaces.Get(m.Payload), true
}

// NewPackage allocates a package member and its payload.
func (t *Tree) NewPackage(vis Visibility, sp source.Span, name string, pkg Package) MemberID {
	payload := t.packages.Alloc(pkg)
	return t.newMember(MemberPackage, vis, sp, name, true, payload)
}

// Package resolves a MemberPackage's payload.
func (t *Tree) Package(id MemberID) (*Package, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberPackage {
		return nil, false
	}
	return t.packages.Get(m.Payload), true
}

// NewClassifier allocates a classifier member and its payload.
func (t *Tree) NewClassifier(vis Visibility, sp source.Span, name string, hasName bool, c Classifier) MemberID {
	payload := t.classifiers.Alloc(c)
	return t.newMember(MemberClassifier, vis, sp, name, hasName, payload)
}

// Classifier resolves a MemberClassifier's payload.
func (t *Tree) Classifier(id MemberID) (*Classifier, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberClassifier {
		return nil, false
	}
	return t.classifiers.Get(m.Payload), true
}

// NewFeature allocates a feature member and its payload.
func (t *Tree) NewFeature(vis Visibility, sp source.Span, name string, hasName bool, f Feature) MemberID {
	payload := t.features.Alloc(f)
	return t.newMember(MemberFeature, vis, sp, name, hasName, payload)
}

// Feature resolves a MemberFeature's payload.
func (t *Tree) Feature(id MemberID) (*Feature, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberFeature {
		return nil, false
	}
	return t.features.Get(m.Payload), true
}

// NewImport allocates an import member and its payload.
func (t *Tree) NewImport(vis Visibility, sp source.Span, imp Import) MemberID {
	payload := t.imports.Alloc(imp)
	return t.newMember(MemberImport, vis, sp, "", false, payload)
}

// Import resolves a MemberImport's payload.
func (t *Tree) Import(id MemberID) (*Import, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberImport {
		return nil, false
	}
	return t.imports.Get(m.Payload), true
}

// NewAlias allocates an alias member and its payload.
func (t *Tree) NewAlias(vis Visibility, sp source.Span, name string, a Alias) MemberID {
	payload := t.aliases.Alloc(a)
	return t.newMember(MemberAlias, vis, sp, name, true, payload)
}

// Alias resolves a MemberAlias's payload.
func (t *Tree) Alias(id MemberID) (*Alias, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberAlias {
		return nil, false
	}
	return t.aliases.Get(m.Payload), true
}

// NewComment allocates a comment/doc member and its payload.
func (t *Tree) NewComment(vis Visibility, sp source.Span, name string, hasName bool, c Comment) MemberID {
	payload := t.comments.Alloc(c)
	return t.newMember(MemberComment, vis, sp, name, hasName, payload)
}

// Comment resolves a MemberComment's payload.
func (t *Tree) Comment(id MemberID) (*Comment, bool) {
	m := t.Member(id)
	if m == nil || m.Kind != MemberComment {
		return nil, false
	}
	return t.comments.Get(m.Payload), true
}

func (t *Tree) newExpr(kind ExprKind, sp source.Span, payload uint32) ExprID {
	return ExprID(t.Exprs.Alloc(Expr{Kind: kind, Span: sp, Payload: payload}))
}

// NewIntLit allocates an ExprIntLit.
func (t *Tree) NewIntLit(sp source.Span, text string) ExprID {
	return t.newExpr(ExprIntLit, sp, t.intLits.Alloc(IntLitExpr{Text: text}))
}

// IntLit resolves an ExprIntLit's payload.
func (t *Tree) IntLit(id ExprID) (*IntLitExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprIntLit {
		return nil, false
	}
	return t.intLits.Get(e.Payload), true
}

// NewRealLit allocates an ExprRealLit.
func (t *Tree) NewRealLit(sp source.Span, text string) ExprID {
	return t.newExpr(ExprRealLit, sp, t.realLits.Alloc(RealLitExpr{Text: text}))
}

// RealLit resolves an ExprRealLit's payload.
func (t *Tree) RealLit(id ExprID) (*RealLitExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprRealLit {
		return nil, false
	}
	return t.realLits.Get(e.Payload), true
}

// NewStringLit allocates an ExprStringLit.
func (t *Tree) NewStringLit(sp source.Span, value string) ExprID {
	return t.newExpr(ExprStringLit, sp, t.stringLits.Alloc(StringLitExpr{Value: value}))
}

// StringLit resolves an ExprStringLit's payload.
func (t *Tree) StringLit(id ExprID) (*StringLitExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprStringLit {
		return nil, false
	}
	return t.stringLits.Get(e.Payload), true
}

// NewBoolLit allocates an ExprBoolLit.
func (t *Tree) NewBoolLit(sp source.Span, value bool) ExprID {
	return t.newExpr(ExprBoolLit, sp, t.boolLits.Alloc(BoolLitExpr{Value: value}))
}

// BoolLit resolves an ExprBoolLit's payload.
func (t *Tree) BoolLit(id ExprID) (*BoolLitExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprBoolLit {
		return nil, false
	}
	return t.boolLits.Get(e.Payload), true
}

// NewNullLit allocates an ExprNullLit; it carries no payload.
func (t *Tree) NewNullLit(sp source.Span) ExprID {
	return t.newExpr(ExprNullLit, sp, 0)
}

// NewName allocates an ExprName.
func (t *Tree) NewName(sp source.Span, name QualifiedName) ExprID {
	return t.newExpr(ExprName, sp, t.names.Alloc(NameExpr{Name: name}))
}

// Name resolves an ExprName's payload.
func (t *Tree) Name(id ExprID) (*NameExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprName {
		return nil, false
	}
	return t.names.Get(e.Payload), true
}

// NewChain allocates an ExprChain.
func (t *Tree) NewChain(sp source.Span, base ExprID, member string) ExprID {
	return t.newExpr(ExprChain, sp, t.chains.Alloc(ChainExpr{Base: base, Member: member}))
}

// Chain resolves an ExprChain's payload.
func (t *Tree) Chain(id ExprID) (*ChainExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprChain {
		return nil, false
	}
	return t.chains.Get(e.Payload), true
}

// NewInvoke allocates an ExprInvoke.
func (t *Tree) NewInvoke(sp source.Span, target ExprID, args []ExprID) ExprID {
	return t.newExpr(ExprInvoke, sp, t.invokes.Alloc(InvokeExpr{Target: target, Args: args}))
}

// Invoke resolves an ExprInvoke's payload.
func (t *Tree) Invoke(id ExprID) (*InvokeExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprInvoke {
		return nil, false
	}
	return t.invokes.Get(e.Payload), true
}

// NewIndex allocates an ExprIndex, storing both the base and the index
// expression (spec §9's fix for the original C implementation's
// index-only representation).
func (t *Tree) NewIndex(sp source.Span, base, index ExprID) ExprID {
	return t.newExpr(ExprIndex, sp, t.indexes.Alloc(IndexExpr{Base: base, Index: index}))
}

// Index resolves an ExprIndex's payload.
func (t *Tree) Index(id ExprID) (*IndexExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprIndex {
		return nil, false
	}
	return t.indexes.Get(e.Payload), true
}

// NewUnary allocates an ExprUnary.
func (t *Tree) NewUnary(sp source.Span, op UnaryOp, operand ExprID) ExprID {
	return t.newExpr(ExprUnary, sp, t.unaries.Alloc(UnaryExpr{Op: op, Operand: operand}))
}

// Unary resolves an ExprUnary's payload.
func (t *Tree) Unary(id ExprID) (*UnaryExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprUnary {
		return nil, false
	}
	return t.unaries.Get(e.Payload), true
}

// NewBinary allocates an ExprBinary.
func (t *Tree) NewBinary(sp source.Span, op BinaryOp, left, right ExprID) ExprID {
	return t.newExpr(ExprBinary, sp, t.binaries.Alloc(BinaryExpr{Op: op, Left: left, Right: right}))
}

// Binary resolves an ExprBinary's payload.
func (t *Tree) Binary(id ExprID) (*BinaryExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprBinary {
		return nil, false
	}
	return t.binaries.Get(e.Payload), true
}

// NewConditional allocates an ExprConditional. elseExpr is NoExprID when
// the 'else' clause is absent.
func (t *Tree) NewConditional(sp source.Span, cond, then, elseExpr ExprID) ExprID {
	return t.newExpr(ExprConditional, sp, t.conditionals.Alloc(ConditionalExpr{Cond: cond, Then: then, Else: elseExpr}))
}

// Conditional resolves an ExprConditional's payload.
func (t *Tree) Conditional(id ExprID) (*ConditionalExpr, bool) {
	e := t.Expr(id)
	if e == nil || e.Kind != ExprConditional {
		return nil, false
	}
	return t.conditionals.Get(e.Payload), true
}
