package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/token"
)

// relationshipStartTokens are the tokens that can open a relationship
// clause: the symbolic operators and the word forms, per spec §4.5.
var relationshipStartTokens = []token.Kind{
	token.Colon, token.ColonGt, token.ColonColonGt, token.ColonGtGt, token.Tilde,
	token.KwSpecializes, token.KwSubsets, token.KwRedefines, token.KwReferences,
}

func relationshipKind(k token.Kind) ast.RelationshipKind {
	switch k {
	case token.Colon:
		return ast.RelTypedBy
	case token.ColonGt, token.KwSpecializes:
		return ast.RelSpecializes
	case token.ColonColonGt, token.KwSubsets:
		return ast.RelSubsets
	case token.ColonGtGt, token.KwRedefines:
		return ast.RelRedefines
	case token.KwReferences:
		return ast.RelReferences
	case token.Tilde:
		return ast.RelConjugates
	default:
		return ast.RelTypedBy
	}
}

// parseRelationshipClauses parses zero or more relationship clauses, in
// whatever order and quantity they appear, per spec §4.5: a kind token
// followed by a comma-separated list of qualified-name targets. Each
// target in a clause yields its own Relationship record of the clause's
// kind.
func (p *Parser) parseRelationshipClauses() ([]ast.Relationship, bool) {
	var rels []ast.Relationship

	for p.atAny(relationshipStartTokens...) {
		kindTok := p.advance()
		kind := relationshipKind(kindTok.Kind)

		for {
			qn, sp, ok := p.parseQualifiedName()
			if !ok {
				return rels, false
			}
			rels = append(rels, ast.Relationship{
				Kind:   kind,
				Target: qn,
				Span:   kindTok.Span.Cover(sp),
			})
			if !p.match(token.Comma) {
				break
			}
		}
	}

	return rels, true
}
