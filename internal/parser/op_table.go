package parser

import (
	"kermlc/internal/ast"
	"kermlc/internal/token"
)

// Precedence levels for binary operators, ascending, per spec §4.5's
// ladder. Power is right-associative; every other level is left.
const (
	precNone = iota
	precOr
	precAnd
	precImplies
	precEquality
	precComparison
	precTerm
	precFactor
	precPower
)

// binaryPrec returns the precedence of k as an infix binary operator, or
// precNone if k is not one.
func binaryPrec(k token.Kind) int {
	switch k {
	case token.KwOr, token.KwXor, token.Pipe:
		return precOr
	case token.KwAnd, token.Amp:
		return precAnd
	case token.KwImplies:
		return precImplies
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality
	case token.Lt, token.Gt, token.LtEq, token.GtEq:
		return precComparison
	case token.Plus, token.Minus:
		return precTerm
	case token.Star, token.Slash, token.Percent:
		return precFactor
	case token.StarStar:
		return precPower
	default:
		return precNone
	}
}

// rightAssoc reports whether k's level associates to the right; only
// '**' does.
func rightAssoc(k token.Kind) bool { return k == token.StarStar }

// binaryOp maps a token kind to its ast.BinaryOp, assuming binaryPrec(k)
// already confirmed k is a binary operator.
func binaryOp(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.StarStar:
		return ast.BinPow
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNe
	case token.Lt:
		return ast.BinLt
	case token.Gt:
		return ast.BinGt
	case token.LtEq:
		return ast.BinLe
	case token.GtEq:
		return ast.BinGe
	case token.KwAnd, token.Amp:
		return ast.BinAnd
	case token.KwOr, token.Pipe:
		return ast.BinOr
	case token.KwXor:
		return ast.BinXor
	case token.KwImplies:
		return ast.BinImplies
	case token.EqEqEq:
		return ast.BinMetaEq
	case token.BangEqEq:
		return ast.BinMetaNe
	default:
		return ast.BinAdd
	}
}

// unaryOp maps a prefix operator token to its ast.UnaryOp.
func unaryOp(k token.Kind) (ast.UnaryOp, bool) {
	switch k {
	case token.Plus:
		return ast.UnaryPlus, true
	case token.Minus:
		return ast.UnaryMinus, true
	case token.Bang, token.KwNot:
		return ast.UnaryNot, true
	default:
		return ast.UnaryPlus, false
	}
}
