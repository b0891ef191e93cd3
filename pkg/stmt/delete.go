package stmt

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/utils"
)

// DeleteStmt is a DELETE statement builder.
type DeleteStmt struct {
	withPart
	filterPart
	returningPart

	target clause.Delete
}

// Delete starts a DELETE FROM target statement.
func Delete(target ast.Target) DeleteStmt {
	return DeleteStmt{target: clause.Delete{Table: target}}
}

// Kind returns ast.DeleteKind.
func (DeleteStmt) Kind() ast.StatementKind { return ast.DeleteKind }

// Table replaces the target.
func (s DeleteStmt) Table(target ast.Target) DeleteStmt {
	s.target = clause.Delete{Table: target}
	return s
}

// Filter sets the WHERE condition, AND-merging later calls.
func (s DeleteStmt) Filter(cond ast.Expr) DeleteStmt {
	s.filterPart = s.addFilter(cond)
	return s
}

// Returning appends fields to the RETURNING clause.
func (s DeleteStmt) Returning(fields ...ast.Field) DeleteStmt {
	s.returningPart = s.addReturning(fields)
	return s
}

// With appends common table expressions.
func (s DeleteStmt) With(ctes ...ast.Cte) DeleteStmt {
	s.withPart = s.addWith(false, ctes)
	return s
}

// WithRecursive appends common table expressions and marks the whole WITH
// list as RECURSIVE.
func (s DeleteStmt) WithRecursive(ctes ...ast.Cte) DeleteStmt {
	s.withPart = s.addWith(true, ctes)
	return s
}

// Clauses returns the rendered clauses in emission order.
func (s DeleteStmt) Clauses() []string { return s.build().Parts() }

func (s DeleteStmt) String() string { return s.build().String() }

func (s DeleteStmt) build() *utils.SQLBuilder {
	return utils.NewSQLBuilder().
		Optional(s.hasWith(), s.with).
		Clause(s.target).
		Optional(s.hasFilter(), s.where).
		Optional(s.hasReturning(), s.returning)
}
