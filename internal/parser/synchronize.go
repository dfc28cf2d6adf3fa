package parser

import "kermlc/internal/token"

// syncLevel names one of the five panic-mode recovery boundaries spec
// §4.5 defines, ordered tightest to loosest; synchronizing at a looser
// level also honors every tighter boundary along the way.
type syncLevel uint8

const (
	syncBlock syncLevel = iota
	syncStatement
	syncFeature
	syncType
	syncNamespace
)

// featureStartTokens are the tokens that can open a feature-kind member,
// including the direction keywords that may precede one.
var featureStartTokens = []token.Kind{
	token.KwFeature, token.KwConnector, token.KwBinding, token.KwSuccession,
	token.KwPart, token.KwAction, token.KwState, token.KwRequirement,
	token.KwConstraint, token.KwPort, token.KwAttribute, token.KwItem,
	token.KwIn, token.KwOut, token.KwInout,
}

// typeStartTokens are the tokens that can open a classifier-kind member.
var typeStartTokens = []token.Kind{
	token.KwType, token.KwClassifier, token.KwClass, token.KwDatatype,
	token.KwStruct, token.KwAssoc, token.KwBehavior, token.KwFunction,
	token.KwPredicate,
}

// namespaceStartTokens are the tokens that can open a namespace-kind
// member.
var namespaceStartTokens = []token.Kind{
	token.KwNamespace, token.KwPackage, token.KwLibrary,
}

// synchronize fast-forwards the token stream to the nearest boundary at
// level or tighter, per spec §4.5's panic-mode recovery. A '}' boundary
// is consumed at every level, and a ';' boundary is consumed at the
// statement level and looser (at the block level a ';' is skipped over);
// feature, type and namespace keyword boundaries are left unconsumed.
func (p *Parser) synchronize(level syncLevel) {
	for !p.at(token.EOF) {
		if p.at(token.RBrace) {
			p.advance()
			return
		}
		if p.at(token.Semicolon) {
			p.advance()
			if level >= syncStatement {
				return
			}
			continue
		}
		if level >= syncFeature && p.atAny(featureStartTokens...) {
			return
		}
		if level >= syncType && p.atAny(typeStartTokens...) {
			return
		}
		if level >= syncNamespace && p.atAny(namespaceStartTokens...) {
			return
		}
		p.advance()
	}
}
