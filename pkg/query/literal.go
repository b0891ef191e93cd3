package query

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

// Int is a signed integer literal.
func Int(v int64) ast.Expr { return ast.Literal{Value: ast.Int(v)} }

// Uint is an unsigned integer literal.
func Uint(v uint64) ast.Expr { return ast.Literal{Value: ast.Uint(v)} }

// Float is a floating point literal in its shortest decimal form.
func Float(v float64) ast.Expr { return ast.Literal{Value: ast.Float(v)} }

// Text is a quoted string literal with embedded quotes doubled.
func Text(v string) ast.Expr { return ast.Literal{Value: ast.Text(v)} }

// Bool is true or false.
func Bool(v bool) ast.Expr { return ast.Literal{Value: ast.Bool(v)} }

// Null is the NULL literal.
func Null() ast.Expr { return ast.Literal{Value: ast.Null()} }

// Row is one VALUES tuple.
func Row(items ...ast.Expr) ast.Row {
	row := make(ast.Row, len(items))
	copy(row, items)
	return row
}

// Tuple is a parenthesized expression list, e.g. for row comparisons.
func Tuple(items ...ast.Expr) ast.Expr {
	return ast.Tuple{Items: clone(items)}
}

// Scalar embeds a statement as a scalar subquery.
func Scalar(s ast.Statement) ast.Expr { return ast.Subquery{Stmt: s} }

func clone(exprs []ast.Expr) []ast.Expr {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	copy(out, exprs)
	return out
}
