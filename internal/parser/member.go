package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/diag"
	"kermlc/internal/source"
	"kermlc/internal/token"
)

// classifierKeywords are the declaration keywords that open a
// MemberClassifier, each optionally suffixed with 'def'.
var classifierKeywords = []token.Kind{
	token.KwType, token.KwClassifier, token.KwClass, token.KwDatatype,
	token.KwStruct, token.KwAssoc, token.KwBehavior, token.KwFunction,
	token.KwPredicate,
}

// featureKeywords are the declaration keywords that open a
// MemberFeature, each optionally suffixed with 'def'.
var featureKeywords = []token.Kind{
	token.KwFeature, token.KwConnector, token.KwBinding, token.KwSuccession,
	token.KwPart, token.KwAction, token.KwState, token.KwRequirement,
	token.KwConstraint, token.KwPort, token.KwAttribute, token.KwItem,
}

// parseMember implements spec §4.5's top-level dispatch: an optional
// visibility, optional repeated type-prefix flags, an optional
// direction keyword, then a declaration keyword (or, failing that, an
// anonymous feature if the lookahead still names something).
func (p *Parser) parseMember() (ast.MemberID, bool) {
	start := p.lx.Peek().Span

	vis := p.parseVisibility()
	prefix := p.parseTypePrefix()
	dir, hasDir := p.parseDirection()

	switch {
	case p.at(token.KwNamespace):
		return p.parseNamespace(start, vis)

	case p.at(token.KwPackage) || p.at(token.KwLibrary):
		return p.parsePackage(start, vis)

	case p.at(token.KwImport):
		return p.parseImport(start, vis)

	case p.at(token.KwAlias):
		return p.parseAlias(start, vis)

	case p.at(token.KwComment) || p.at(token.KwDoc):
		return p.parseComment(start, vis)

	case p.atAny(classifierKeywords...):
		return p.parseClassifier(start, vis, prefix)

	case p.atAny(featureKeywords...):
		return p.parseFeature(start, vis, prefix, dir, true)
	}

	if hasDir || p.at(token.Ident) || p.at(token.UnrestrictedName) {
		return p.parseFeature(start, vis, prefix, dir, false)
	}

	p.report(diag.SevError, diag.SynUnexpectedToken, p.errSpan(), "expected a declaration")
	p.advance()
	return ast.NoMemberID, false
}

func (p *Parser) parseVisibility() ast.Visibility {
	switch {
	case p.match(token.KwPublic):
		return ast.Public
	case p.match(token.KwPrivate):
		return ast.Private
	case p.match(token.KwProtected):
		return ast.Protected
	default:
		return ast.Public
	}
}

func (p *Parser) parseTypePrefix() ast.TypePrefix {
	var prefix ast.TypePrefix
	for {
		switch {
		case p.match(token.KwAbstract):
			prefix.Abstract = true
		case p.match(token.KwReadonly):
			prefix.Readonly = true
		case p.match(token.KwDerived):
			prefix.Derived = true
		case p.match(token.KwEnd):
			prefix.End = true
		case p.match(token.KwComposite):
			prefix.Composite = true
		case p.match(token.KwPortion):
			prefix.Portion = true
		case p.match(token.KwRef):
			prefix.Ref = true
		default:
			return prefix
		}
	}
}

func (p *Parser) parseDirection() (ast.Direction, bool) {
	switch {
	case p.match(token.KwIn):
		return ast.DirIn, true
	case p.match(token.KwOut):
		return ast.DirOut, true
	case p.match(token.KwInout):
		return ast.DirInout, true
	default:
		return ast.DirNone, false
	}
}

// parseOptionalName consumes a leading identifier or unrestricted name,
// used everywhere the name/body grammar calls for an optional name.
func (p *Parser) parseOptionalName() (string, bool) {
	if p.at(token.Ident) || p.at(token.UnrestrictedName) {
		name, _ := p.parseIdentText()
		return name, true
	}
	return "", false
}

func (p *Parser) parseNamespace(start source.Span, vis ast.Visibility) (ast.MemberID, bool) {
	p.advance() // 'namespace'
	name, hasName := p.parseOptionalName()
	members, bodySpan, ok := p.parseBraceBody("expected '{' or ';' after the namespace name")
	sp := start.Cover(bodySpan)
	return p.tree.NewNamespace(vis, sp, name, hasName, ast.Namespace{Members: members}), ok
}

func (p *Parser) parsePackage(start source.Span, vis ast.Visibility) (ast.MemberID, bool) {
	isLibrary := p.match(token.KwLibrary)
	if _, ok := p.expect(token.KwPackage, "expected 'package'"); !ok {
		return ast.NoMemberID, false
	}
	name, ok := p.parseIdentText()
	if !ok {
		return ast.NoMemberID, false
	}
	members, bodySpan, ok := p.parseRequiredBraceBody("expected '{' after the package name")
	sp := start.Cover(bodySpan)
	return p.tree.NewPackage(vis, sp, name, ast.Package{IsLibrary: isLibrary, Members: members}), ok
}

func (p *Parser) parseImport(start source.Span, vis ast.Visibility) (ast.MemberID, bool) {
	p.advance() // 'import'
	qn, qnSpan, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoMemberID, false
	}

	wildcard := ast.ImportNone
	if sep, ok := p.matchSpan(token.ColonColon); ok {
		qnSpan = qnSpan.Cover(sep)
		switch {
		case p.match(token.Star):
			wildcard = ast.ImportStar
			qnSpan = qnSpan.Cover(p.lastSpan)
		case p.match(token.StarStar):
			wildcard = ast.ImportRecursive
			qnSpan = qnSpan.Cover(p.lastSpan)
		default:
			p.report(diag.SevError, diag.SynUnexpectedToken, p.errSpan(), "expected '*' or '**' after '::' in an import")
			return ast.NoMemberID, false
		}
	}

	semiTok, ok := p.expect(token.Semicolon, "expected ';' after the import")
	sp := start.Cover(qnSpan)
	if ok {
		sp = sp.Cover(semiTok.Span)
	}
	return p.tree.NewImport(vis, sp, ast.Import{Target: qn, Wildcard: wildcard}), ok
}

func (p *Parser) parseAlias(start source.Span, vis ast.Visibility) (ast.MemberID, bool) {
	p.advance() // 'alias'
	name, ok := p.parseIdentText()
	if !ok {
		return ast.NoMemberID, false
	}
	if _, ok := p.expect(token.KwFor, "expected 'for'"); !ok {
		return ast.NoMemberID, false
	}
	qn, qnSpan, ok := p.parseQualifiedName()
	if !ok {
		return ast.NoMemberID, false
	}
	semiTok, ok := p.expect(token.Semicolon, "expected ';' after the alias")
	sp := start.Cover(qnSpan)
	if ok {
		sp = sp.Cover(semiTok.Span)
	}
	return p.tree.NewAlias(vis, sp, name, ast.Alias{Target: qn}), ok
}

func (p *Parser) parseComment(start source.Span, vis ast.Visibility) (ast.MemberID, bool) {
	isDoc := p.at(token.KwDoc)
	p.advance() // 'comment' or 'doc'

	name, hasName := p.parseOptionalName()

	var about []ast.QualifiedName
	if p.match(token.KwAbout) {
		for {
			qn, _, ok := p.parseQualifiedName()
			if !ok {
				return ast.NoMemberID, false
			}
			about = append(about, qn)
			if !p.match(token.Comma) {
				break
			}
		}
	}

	var locale string
	hasLocale := false
	if p.match(token.KwLocale) {
		tok, ok := p.expect(token.StringLit, "expected a string literal after 'locale'")
		if !ok {
			return ast.NoMemberID, false
		}
		locale = stripQuotes(tok.Text)
		hasLocale = true
	}

	body := p.consumeCommentBody()

	termTok, ok := p.expectTerminator()
	sp := start.Cover(p.lastSpan)
	if ok {
		sp = sp.Cover(termTok.Span)
	}
	return p.tree.NewComment(vis, sp, name, hasName, ast.Comment{
		IsDoc:     isDoc,
		About:     about,
		Locale:    locale,
		HasLocale: hasLocale,
		Body:      body,
	}), ok
}

// consumeCommentBody gathers an optional free-form comment body: every
// token up to (but not including) the terminating ';' or '}', returned as
// the verbatim source text those tokens span.
func (p *Parser) consumeCommentBody() string {
	if p.at(token.Semicolon) || p.at(token.RBrace) || p.at(token.EOF) {
		return ""
	}
	start := p.lx.Peek().Span
	for !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		p.advance()
	}
	end := p.lastSpan
	return p.lx.SourceText(start.Cover(end))
}

// expectTerminator consumes the ';' or '}' ending a comment/doc member;
// '}' is left unconsumed for the enclosing body's own close.
func (p *Parser) expectTerminator() (token.Token, bool) {
	if p.at(token.RBrace) {
		return p.lx.Peek(), true
	}
	return p.expect(token.Semicolon, "expected ';' to terminate the comment")
}

func (p *Parser) parseClassifier(start source.Span, vis ast.Visibility, prefix ast.TypePrefix) (ast.MemberID, bool) {
	keyword := p.advance().Kind
	isDef := p.match(token.KwDef)

	name, hasName := p.parseOptionalName()

	var mult *ast.Multiplicity
	if p.at(token.LBracket) {
		m, ok := p.parseMultiplicity()
		if !ok {
			return ast.NoMemberID, false
		}
		mult = &m
	}

	rels, ok := p.parseRelationshipClauses()
	if !ok {
		return ast.NoMemberID, false
	}

	members, bodySpan, ok := p.parseRequiredBraceBody("expected '{' to open the body")
	sp := start.Cover(bodySpan)
	return p.tree.NewClassifier(vis, sp, name, hasName, ast.Classifier{
		Keyword:       keyword,
		IsDef:         isDef,
		Prefix:        prefix,
		Multiplicity:  mult,
		Relationships: rels,
		Members:       members,
	}), ok
}

// parseFeature parses a feature-kind member. hasKeyword distinguishes an
// explicit feature-starting keyword (Keyword set accordingly) from an
// anonymous feature (Keyword left as token.Invalid).
func (p *Parser) parseFeature(start source.Span, vis ast.Visibility, prefix ast.TypePrefix, dir ast.Direction, hasKeyword bool) (ast.MemberID, bool) {
	keyword := token.Invalid
	isDef := false
	if hasKeyword {
		keyword = p.advance().Kind
		isDef = p.match(token.KwDef)
	}

	name, hasName := p.parseOptionalName()

	var mult *ast.Multiplicity
	if p.at(token.LBracket) {
		m, ok := p.parseMultiplicity()
		if !ok {
			return ast.NoMemberID, false
		}
		mult = &m
	}

	rels, ok := p.parseRelationshipClauses()
	if !ok {
		return ast.NoMemberID, false
	}

	initExpr := ast.NoExprID
	hasInit := false
	isDefaultInit := false
	switch {
	case p.match(token.Assign):
		initExpr, ok = p.parseExpr()
		if !ok {
			return ast.NoMemberID, false
		}
		hasInit = true
	case p.match(token.KwDefault):
		initExpr, ok = p.parseExpr()
		if !ok {
			return ast.NoMemberID, false
		}
		hasInit = true
		isDefaultInit = true
	}

	members, bodySpan, ok := p.parseBraceBody("expected '{' or ';'")
	sp := start.Cover(bodySpan)
	return p.tree.NewFeature(vis, sp, name, hasName, ast.Feature{
		Keyword:       keyword,
		IsDef:         isDef,
		Prefix:        prefix,
		Direction:     dir,
		Multiplicity:  mult,
		Relationships: rels,
		Init:          initExpr,
		HasInit:       hasInit,
		IsDefaultInit: isDefaultInit,
		Members:       members,
	}), ok
}
