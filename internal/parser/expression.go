package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/diag"
	"kermlc/internal/token"
)

// parseExpr parses a full expression starting at the lowest precedence
// level (OR), per spec §4.5's climbing algorithm.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(precOr)
}

// parseBinary parses a prefix expression, then repeatedly folds in
// infix operators whose precedence is at least minPrec. The right operand
// of a right-assoc operator (power) is parsed with the operator's own
// precedence as the minimum so a chain binds to the right; every other
// operator's right operand is parsed with its precedence plus one.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		k := p.lx.Peek().Kind
		prec := binaryPrec(k)
		if prec == precNone || prec < minPrec {
			return left, true
		}
		p.advance()
		nextMin := prec + 1
		if rightAssoc(k) {
			nextMin = prec
		}
		right, ok := p.parseBinary(nextMin)
		if !ok {
			return left, false
		}
		sp := p.tree.Expr(left).Span.Cover(p.tree.Expr(right).Span)
		left = p.tree.NewBinary(sp, binaryOp(k), left, right)
	}
}

// parseUnary parses a prefix '-', '+', '!'/'not', or falls through to a
// call/postfix chain.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	if op, ok := unaryOp(p.lx.Peek().Kind); ok {
		opTok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		sp := opTok.Span.Cover(p.tree.Expr(operand).Span)
		return p.tree.NewUnary(sp, op, operand), true
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of
// '.', '(...)' and '[...]' postfix operators, all left-associative and
// at the same (tightest) CALL level.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			name, ok := p.parseIdentText()
			if !ok {
				return expr, false
			}
			sp := p.tree.Expr(expr).Span.Cover(p.lastSpan)
			expr = p.tree.NewChain(sp, expr, name)

		case p.at(token.LParen):
			p.advance()
			var args []ast.ExprID
			if !p.at(token.RParen) {
				for {
					arg, ok := p.parseExpr()
					if !ok {
						return expr, false
					}
					args = append(args, arg)
					if !p.match(token.Comma) {
						break
					}
				}
			}
			closeTok, ok := p.expect(token.RParen, "expected ')' to close the argument list")
			if !ok {
				return expr, false
			}
			sp := p.tree.Expr(expr).Span.Cover(closeTok.Span)
			expr = p.tree.NewInvoke(sp, expr, args)

		case p.at(token.LBracket):
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return expr, false
			}
			closeTok, ok := p.expect(token.RBracket, "expected ']' to close the index expression")
			if !ok {
				return expr, false
			}
			sp := p.tree.Expr(expr).Span.Cover(closeTok.Span)
			expr = p.tree.NewIndex(sp, expr, index)

		default:
			return expr, true
		}
	}
}

// parsePrimary parses a literal, a qualified-name reference, a
// parenthesized subexpression, or an 'if ... then ... [else ...]' form.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.IntLit:
		tok := p.advance()
		return p.tree.NewIntLit(tok.Span, tok.Text), true

	case token.RealLit:
		tok := p.advance()
		return p.tree.NewRealLit(tok.Span, tok.Text), true

	case token.StringLit:
		tok := p.advance()
		return p.tree.NewStringLit(tok.Span, stripQuotes(tok.Text)), true

	case token.KwTrue:
		tok := p.advance()
		return p.tree.NewBoolLit(tok.Span, true), true

	case token.KwFalse:
		tok := p.advance()
		return p.tree.NewBoolLit(tok.Span, false), true

	case token.KwNull:
		tok := p.advance()
		return p.tree.NewNullLit(tok.Span), true

	case token.KwIf:
		return p.parseConditional()

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, "expected ')' to close the parenthesized expression"); !ok {
			return ast.NoExprID, false
		}
		return inner, true

	case token.Ident, token.UnrestrictedName, token.ColonColon:
		qn, sp, ok := p.parseQualifiedName()
		if !ok {
			return ast.NoExprID, false
		}
		return p.tree.NewName(sp, qn), true

	default:
		p.report(diag.SevError, diag.SynExpectExpression, p.errSpan(), "expected an expression")
		return ast.NoExprID, false
	}
}

func (p *Parser) parseConditional() (ast.ExprID, bool) {
	ifTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.KwThen, "expected 'then'"); !ok {
		return ast.NoExprID, false
	}
	then, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	elseExpr := ast.NoExprID
	sp := ifTok.Span.Cover(p.tree.Expr(then).Span)
	if p.match(token.KwElse) {
		elseExpr, ok = p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		sp = sp.Cover(p.tree.Expr(elseExpr).Span)
	}
	return p.tree.NewConditional(sp, cond, then, elseExpr), true
}
