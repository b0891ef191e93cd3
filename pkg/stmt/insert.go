package stmt

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/utils"
)

// InsertStmt is an INSERT statement builder.
type InsertStmt struct {
	withPart
	returningPart

	target clause.Insert
	values *clause.Values
}

// Insert starts an INSERT INTO table statement. columns may be empty, in which
// case the column list is omitted.
//
// Example:
//
//	stmt.Insert(query.TableRef("user"), "id", "name").
//		Values(query.Row(query.Int(1), query.Text("alice")))
//	// INSERT INTO user(id, name) VALUES (1, 'alice')
func Insert(table ast.TableRef, columns ...ast.Ident) InsertStmt {
	return InsertStmt{}.Into(table, columns...)
}

// Kind returns ast.InsertKind.
func (InsertStmt) Kind() ast.StatementKind { return ast.InsertKind }

// Into replaces the target table and column list.
func (s InsertStmt) Into(table ast.TableRef, columns ...ast.Ident) InsertStmt {
	cols := make([]ast.Ident, len(columns))
	copy(cols, columns)

	s.target = clause.Insert{Table: table, Columns: cols}
	return s
}

// Values appends rows.
func (s InsertStmt) Values(rows ...ast.Row) InsertStmt {
	s.values = s.values.Append(rows...)
	return s
}

// Returning appends fields to the RETURNING clause.
func (s InsertStmt) Returning(fields ...ast.Field) InsertStmt {
	s.returningPart = s.addReturning(fields)
	return s
}

// With appends common table expressions.
func (s InsertStmt) With(ctes ...ast.Cte) InsertStmt {
	s.withPart = s.addWith(false, ctes)
	return s
}

// WithRecursive appends common table expressions and marks the whole WITH
// list as RECURSIVE.
func (s InsertStmt) WithRecursive(ctes ...ast.Cte) InsertStmt {
	s.withPart = s.addWith(true, ctes)
	return s
}

// Clauses returns the rendered clauses in emission order. Without any rows the
// statement inserts a single row of defaults.
func (s InsertStmt) Clauses() []string { return s.build().Parts() }

func (s InsertStmt) String() string { return s.build().String() }

func (s InsertStmt) build() *utils.SQLBuilder {
	b := utils.NewSQLBuilder().
		Optional(s.hasWith(), s.with).
		Clause(s.target)

	if s.values == nil {
		b.Raw("DEFAULT VALUES")
	} else {
		b.Clause(s.values)
	}

	return b.Optional(s.hasReturning(), s.returning)
}
