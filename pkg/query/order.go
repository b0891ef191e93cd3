package query

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

// By sorts by e in the database's default direction.
func By(e ast.Expr) ast.Order { return ast.Order{Expr: e} }

// Asc sorts by e ascending.
func Asc(e ast.Expr) ast.Order { return ast.Order{Expr: e, Sort: ast.SortAsc} }

// Desc sorts by e descending.
func Desc(e ast.Expr) ast.Order { return ast.Order{Expr: e, Sort: ast.SortDesc} }

// NullsFirst places NULLs before other values.
func NullsFirst(o ast.Order) ast.Order {
	o.Nulls = ast.NullsFirst
	return o
}

// NullsLast places NULLs after other values.
func NullsLast(o ast.Order) ast.Order {
	o.Nulls = ast.NullsLast
	return o
}
