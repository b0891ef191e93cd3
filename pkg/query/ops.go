package query

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

func binary(op ast.Operator, l, r ast.Expr) ast.Expr {
	return ast.Binary{Op: op, Left: l, Right: r}
}

func unary(op ast.Operator, e ast.Expr) ast.Expr {
	return ast.Unary{Op: op, Operand: e}
}

// Eq is l = r.
func Eq(l, r ast.Expr) ast.Expr { return binary(ast.OpEq, l, r) }

// Ne is l <> r.
func Ne(l, r ast.Expr) ast.Expr { return binary(ast.OpNotEq, l, r) }

// Lt is l < r.
func Lt(l, r ast.Expr) ast.Expr { return binary(ast.OpLt, l, r) }

// Le is l <= r.
func Le(l, r ast.Expr) ast.Expr { return binary(ast.OpLte, l, r) }

// Gt is l > r.
func Gt(l, r ast.Expr) ast.Expr { return binary(ast.OpGt, l, r) }

// Ge is l >= r.
func Ge(l, r ast.Expr) ast.Expr { return binary(ast.OpGte, l, r) }

// Add is l + r.
func Add(l, r ast.Expr) ast.Expr { return binary(ast.OpAdd, l, r) }

// Sub is l - r.
func Sub(l, r ast.Expr) ast.Expr { return binary(ast.OpSub, l, r) }

// Mul is l * r.
func Mul(l, r ast.Expr) ast.Expr { return binary(ast.OpMul, l, r) }

// Div is l / r.
func Div(l, r ast.Expr) ast.Expr { return binary(ast.OpDiv, l, r) }

// Mod is l % r.
func Mod(l, r ast.Expr) ast.Expr { return binary(ast.OpMod, l, r) }

// Pow is l ^ r.
func Pow(l, r ast.Expr) ast.Expr { return binary(ast.OpPow, l, r) }

// Concat is the string concatenation l || r.
func Concat(l, r ast.Expr) ast.Expr { return binary(ast.OpConcat, l, r) }

// Neg is the arithmetic negation -e.
func Neg(e ast.Expr) ast.Expr { return unary(ast.OpNeg, e) }

// Like is l LIKE r.
func Like(l, r ast.Expr) ast.Expr { return binary(ast.OpLike, l, r) }

// NotLike is l NOT LIKE r.
func NotLike(l, r ast.Expr) ast.Expr { return binary(ast.OpNotLike, l, r) }

// ILike is the case insensitive match l ILIKE r.
func ILike(l, r ast.Expr) ast.Expr { return binary(ast.OpILike, l, r) }

// NotILike is l NOT ILIKE r.
func NotILike(l, r ast.Expr) ast.Expr { return binary(ast.OpNotILike, l, r) }

// In tests membership in a literal list: e IN (items...). Callers must pass
// at least one item; an empty list renders e IN (), which databases reject.
func In(e ast.Expr, items ...ast.Expr) ast.Expr {
	return binary(ast.OpIn, e, ast.Tuple{Items: clone(items)})
}

// NotIn is e NOT IN (items...). Like In, it needs at least one item.
func NotIn(e ast.Expr, items ...ast.Expr) ast.Expr {
	return binary(ast.OpNotIn, e, ast.Tuple{Items: clone(items)})
}

// InQuery tests membership in a subquery result.
func InQuery(e ast.Expr, s ast.Statement) ast.Expr {
	return binary(ast.OpIn, e, ast.Subquery{Stmt: s})
}

// Between is e BETWEEN low AND high.
func Between(e, low, high ast.Expr) ast.Expr {
	return ast.Between{Expr: e, Low: low, High: high}
}

// NotBetween is e NOT BETWEEN low AND high.
func NotBetween(e, low, high ast.Expr) ast.Expr {
	return ast.Between{Expr: e, Low: low, High: high, Not: true}
}

// IsNull is e IS NULL.
func IsNull(e ast.Expr) ast.Expr { return unary(ast.OpIsNull, e) }

// IsNotNull is e IS NOT NULL.
func IsNotNull(e ast.Expr) ast.Expr { return unary(ast.OpIsNotNull, e) }

// IsTrue is e IS TRUE.
func IsTrue(e ast.Expr) ast.Expr { return unary(ast.OpIsTrue, e) }

// IsNotTrue is e IS NOT TRUE.
func IsNotTrue(e ast.Expr) ast.Expr { return unary(ast.OpIsNotTrue, e) }

// IsFalse is e IS FALSE.
func IsFalse(e ast.Expr) ast.Expr { return unary(ast.OpIsFalse, e) }

// IsNotFalse is e IS NOT FALSE.
func IsNotFalse(e ast.Expr) ast.Expr { return unary(ast.OpIsNotFalse, e) }

// IsUnknown is e IS UNKNOWN.
func IsUnknown(e ast.Expr) ast.Expr { return unary(ast.OpIsUnknown, e) }

// IsNotUnknown is e IS NOT UNKNOWN.
func IsNotUnknown(e ast.Expr) ast.Expr { return unary(ast.OpIsNotUnknown, e) }

// IsDistinctFrom is the NULL safe inequality l IS DISTINCT FROM r.
func IsDistinctFrom(l, r ast.Expr) ast.Expr { return binary(ast.OpIsDistinctFrom, l, r) }

// IsNotDistinctFrom is the NULL safe equality l IS NOT DISTINCT FROM r.
func IsNotDistinctFrom(l, r ast.Expr) ast.Expr { return binary(ast.OpIsNotDistinctFrom, l, r) }

// Exists is EXISTS (s).
func Exists(s ast.Statement) ast.Expr { return unary(ast.OpExists, ast.Subquery{Stmt: s}) }

// NotExists is NOT EXISTS (s).
func NotExists(s ast.Statement) ast.Expr { return Not(Exists(s)) }

// Not negates a condition.
func Not(e ast.Expr) ast.Expr { return unary(ast.OpNot, e) }

// And joins conditions left to right: And(a, b, c) is (a AND b) AND c, which
// renders as a AND b AND c. A single condition is returned as is and no
// conditions yield nil, which Filter and Having ignore.
func And(exprs ...ast.Expr) ast.Expr { return fold(ast.OpAnd, exprs) }

// Or joins conditions left to right like And.
func Or(exprs ...ast.Expr) ast.Expr { return fold(ast.OpOr, exprs) }

func fold(op ast.Operator, exprs []ast.Expr) ast.Expr {
	var out ast.Expr
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if out == nil {
			out = e
			continue
		}
		out = binary(op, out, e)
	}
	return out
}
