package query

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/stmt"
)

// Select starts a SELECT of bare columns.
func Select(columns ...string) stmt.SelectStmt { return stmt.Select(Fields(columns...)...) }

// Insert starts an INSERT INTO table with an optional column list.
func Insert(table string, columns ...string) stmt.InsertStmt {
	return stmt.Insert(TableRef(table), Idents(columns...)...)
}

// Update starts an UPDATE of table.
func Update(table string) stmt.UpdateStmt { return stmt.Update(Target(table)) }

// Delete starts a DELETE FROM table.
func Delete(table string) stmt.DeleteStmt { return stmt.Delete(Target(table)) }

// Assign is a SET column = value assignment.
func Assign(column string, value ast.Expr) clause.Assignment {
	return clause.Assignment{Column: ast.Ident(column), Value: value}
}
