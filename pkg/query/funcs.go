package query

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

// Func calls a function by name. The name is emitted verbatim.
//
// Example:
//
//	query.Func("coalesce", query.Col("nickname"), query.Col("name"))
//	// coalesce(nickname, name)
func Func(name string, args ...ast.Expr) ast.Expr { return call(name, args) }

// Count is COUNT(e).
func Count(e ast.Expr) ast.Expr { return call("COUNT", []ast.Expr{e}) }

// CountAll is COUNT(*).
func CountAll() ast.Expr { return call("COUNT", []ast.Expr{ast.Star{}}) }

// Max is MAX(e).
func Max(e ast.Expr) ast.Expr { return call("MAX", []ast.Expr{e}) }

// Min is MIN(e).
func Min(e ast.Expr) ast.Expr { return call("MIN", []ast.Expr{e}) }

// Avg is AVG(e).
func Avg(e ast.Expr) ast.Expr { return call("AVG", []ast.Expr{e}) }

// Sum is SUM(e).
func Sum(e ast.Expr) ast.Expr { return call("SUM", []ast.Expr{e}) }

// Unnest expands an array, usually as a table function in FROM.
func Unnest(e ast.Expr) ast.Expr { return call("unnest", []ast.Expr{e}) }

func call(name string, args []ast.Expr) ast.Call {
	return ast.Call{Name: name, Args: clone(args)}
}
