package sema

import (
	"kermlc/internal/ast"
	"kermlc/internal/diag"
	"kermlc/internal/source"
	"kermlc/internal/symbols"
	"kermlc/internal/token"
)

// analyzeScope runs pass 1 (definition collection) to completion over a
// scope's member list before pass 2 (reference check and recursion)
// begins, per spec §4.6: definition-collection fully completes before
// reference checking starts for any given scope.
func (a *Analyzer) analyzeScope(stack symbols.Stack, first ast.MemberID) {
	scope := stack[0]
	a.definePass(scope, first)
	a.checkPass(stack, first)
}

// definePass declares every named, symbol-bearing member of the scope's
// member list, emitting E3004 for a name already bound locally. Members
// with no declared name are skipped: spec §4.6 names only the anonymous
// exemption, not an anonymous-member error.
func (a *Analyzer) definePass(scope symbols.ScopeID, first ast.MemberID) {
	for _, id := range a.tree.MemberList(first) {
		if a.shouldStop() {
			return
		}
		m := a.tree.Member(id)
		if !m.HasName {
			continue
		}
		kind, ok := a.symbolKindFor(id, m)
		if !ok {
			continue
		}
		if existing, found := a.table.Scope(scope).Lookup(m.Name); found {
			prior := a.table.Symbol(existing)
			diag.ReportError(a.reporter, diag.SemDuplicateName, m.Span,
				"duplicate definition of '"+m.Name+"'").
				WithNote(prior.DefSpan, "previous definition of '"+m.Name+"' here").
				Emit()
			continue
		}
		sym := a.table.AllocSymbol(symbols.Symbol{
			Name:       m.Name,
			Kind:       kind,
			Visibility: m.Visibility,
			Scope:      scope,
			Member:     id,
			DefSpan:    m.Span,
		})
		a.table.Scope(scope).Declare(m.Name, sym)
	}
}

// checkPass validates every member's relationship targets, then recurses
// into any body the member opens.
func (a *Analyzer) checkPass(stack symbols.Stack, first ast.MemberID) {
	for _, id := range a.tree.MemberList(first) {
		if a.shouldStop() {
			return
		}
		a.checkMember(stack, id)
	}
}

func (a *Analyzer) checkMember(stack symbols.Stack, id ast.MemberID) {
	m := a.tree.Member(id)
	switch m.Kind {
	case ast.MemberClassifier:
		c, _ := a.tree.Classifier(id)
		a.checkRelationships(stack, c.Relationships)
		a.pushAndRecurse(stack, symbols.ScopeClassifier, id, c.Members)
	case ast.MemberFeature:
		f, _ := a.tree.Feature(id)
		a.checkRelationships(stack, f.Relationships)
		a.pushAndRecurse(stack, symbols.ScopeFeature, id, f.Members)
	case ast.MemberNamespace:
		ns, _ := a.tree.Namespace(id)
		a.pushAndRecurse(stack, symbols.ScopeNamespace, id, ns.Members)
	case ast.MemberPackage:
		pkg, _ := a.tree.Package(id)
		a.pushAndRecurse(stack, symbols.ScopeNamespace, id, pkg.Members)
	case ast.MemberAlias:
		al, _ := a.tree.Alias(id)
		a.checkAliasTarget(stack, al.Target, m.Span)
	}
}

// pushAndRecurse opens a new scope for a body-bearing member and walks
// its members under it. A member whose body was a bare ';' has no
// members, so recursing over it is harmless: the AST does not (and need
// not) distinguish an absent body from an empty one.
func (a *Analyzer) pushAndRecurse(stack symbols.Stack, kind symbols.ScopeKind, owner ast.MemberID, members ast.MemberID) {
	child := a.table.PushScope(kind, owner, stack[0])
	a.analyzeScope(stack.Push(child), members)
}

// checkRelationships resolves every relationship target against stack,
// emitting the code and wording spec §4.6 assigns to the relationship's
// kind, with a did-you-mean help line when a close name exists.
func (a *Analyzer) checkRelationships(stack symbols.Stack, rels []ast.Relationship) {
	for _, rel := range rels {
		if a.shouldStop() {
			return
		}
		if _, ok := a.resolve(stack, rel.Target); ok {
			continue
		}
		code, word := relationshipDiagnostic(rel.Kind)
		a.reportUnresolved(stack, code, rel.Span, word, rel.Target)
	}
}

// checkAliasTarget resolves an alias's 'for' target. spec §4.6's two-pass
// description only calls out relationship targets explicitly, but an
// alias is itself a named reference to another element and the external
// code space reserves E3003 ("undefined namespace") for exactly this
// case; ast.Alias carries no separate span for its target, so the whole
// alias member's span stands in as the diagnostic's range.
func (a *Analyzer) checkAliasTarget(stack symbols.Stack, target ast.QualifiedName, span source.Span) {
	if _, ok := a.resolve(stack, target); ok {
		return
	}
	a.reportUnresolved(stack, diag.SemUndefinedNamespace, span, "namespace", target)
}

func (a *Analyzer) reportUnresolved(stack symbols.Stack, code diag.Code, span source.Span, word string, target ast.QualifiedName) {
	b := diag.ReportError(a.reporter, code, span, "undefined "+word+" '"+target.Join()+"'")
	if suggestion, ok := a.table.Suggest(stack, target.Last()); ok {
		b = b.WithHelp("did you mean '" + suggestion + "'?")
	}
	b.Emit()
}

// resolve implements spec §4.6's fallback order: a qualified lookup
// against the scope stack first, then a simple lookup of the first
// segment alone.
func (a *Analyzer) resolve(stack symbols.Stack, qn ast.QualifiedName) (symbols.SymbolID, bool) {
	if id, ok := a.table.LookupQualified(stack, qn); ok {
		return id, true
	}
	if len(qn.Segments) == 0 {
		return symbols.NoSymbolID, false
	}
	return a.table.Lookup(stack, qn.Segments[0])
}

// symbolKindFor maps a member's declaration kind to the symbol kind spec
// §4.6 assigns it. A classifier introduced with the plain 'type' keyword
// is Type rather than Classifier; every other classifier keyword maps to
// Classifier.
func (a *Analyzer) symbolKindFor(id ast.MemberID, m *ast.Member) (symbols.SymbolKind, bool) {
	switch m.Kind {
	case ast.MemberNamespace:
		return symbols.SymbolNamespace, true
	case ast.MemberPackage:
		return symbols.SymbolPackage, true
	case ast.MemberClassifier:
		if c, ok := a.tree.Classifier(id); ok && c.Keyword == token.KwType {
			return symbols.SymbolType, true
		}
		return symbols.SymbolClassifier, true
	case ast.MemberFeature:
		return symbols.SymbolFeature, true
	case ast.MemberAlias:
		return symbols.SymbolAlias, true
	default:
		return symbols.SymbolInvalid, false
	}
}

// relationshipDiagnostic maps a relationship kind to the code and the
// message wording spec §4.6 names for it. Typing and specialization
// (and conjugation, which targets a type the same way specialization
// does) fail as E3001; subsetting, redefinition, and reference targets
// fail as E3002.
func relationshipDiagnostic(kind ast.RelationshipKind) (diag.Code, string) {
	switch kind {
	case ast.RelTypedBy:
		return diag.SemUndefinedType, "type"
	case ast.RelSpecializes:
		return diag.SemUndefinedType, "supertype"
	case ast.RelConjugates:
		return diag.SemUndefinedType, "type"
	case ast.RelSubsets:
		return diag.SemUndefinedFeature, "subsetted feature"
	case ast.RelRedefines:
		return diag.SemUndefinedFeature, "redefined feature"
	case ast.RelReferences:
		return diag.SemUndefinedFeature, "reference"
	default:
		return diag.SemUndefinedType, "type"
	}
}
