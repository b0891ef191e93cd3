package stmt

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/utils"
)

// UpdateStmt is an UPDATE statement builder.
type UpdateStmt struct {
	withPart
	filterPart
	returningPart

	target clause.Update
	set    *clause.Set
	from   *clause.From
}

// Update starts an UPDATE statement on target.
//
// Example:
//
//	stmt.Update(query.Target("user")).
//		SetValues(query.Assign("id", query.Int(1)), query.Assign("age", query.Int(30))).
//		Returning(query.Field("id"))
//	// UPDATE user SET id = 1, age = 30 RETURNING id
func Update(target ast.Target) UpdateStmt {
	return UpdateStmt{target: clause.Update{Table: target}}
}

// Kind returns ast.UpdateKind.
func (UpdateStmt) Kind() ast.StatementKind { return ast.UpdateKind }

// Table replaces the target.
func (s UpdateStmt) Table(target ast.Target) UpdateStmt {
	s.target = clause.Update{Table: target}
	return s
}

// Set appends a single column = value assignment.
func (s UpdateStmt) Set(column ast.Ident, value ast.Expr) UpdateStmt {
	return s.SetValues(clause.Assignment{Column: column, Value: value})
}

// SetValues appends assignments.
func (s UpdateStmt) SetValues(assignments ...clause.Assignment) UpdateStmt {
	s.set = s.set.Append(assignments...)
	return s
}

// From appends tables joined into the update (UPDATE ... FROM).
func (s UpdateStmt) From(tables ...ast.Table) UpdateStmt {
	s.from = s.from.Append(tables...)
	return s
}

// Filter sets the WHERE condition, AND-merging later calls.
func (s UpdateStmt) Filter(cond ast.Expr) UpdateStmt {
	s.filterPart = s.addFilter(cond)
	return s
}

// Returning appends fields to the RETURNING clause.
func (s UpdateStmt) Returning(fields ...ast.Field) UpdateStmt {
	s.returningPart = s.addReturning(fields)
	return s
}

// With appends common table expressions.
func (s UpdateStmt) With(ctes ...ast.Cte) UpdateStmt {
	s.withPart = s.addWith(false, ctes)
	return s
}

// WithRecursive appends common table expressions and marks the whole WITH
// list as RECURSIVE.
func (s UpdateStmt) WithRecursive(ctes ...ast.Cte) UpdateStmt {
	s.withPart = s.addWith(true, ctes)
	return s
}

// Clauses returns the rendered clauses in emission order.
func (s UpdateStmt) Clauses() []string { return s.build().Parts() }

func (s UpdateStmt) String() string { return s.build().String() }

func (s UpdateStmt) build() *utils.SQLBuilder {
	return utils.NewSQLBuilder().
		Optional(s.hasWith(), s.with).
		Clause(s.target).
		Optional(s.set != nil, s.set).
		Optional(s.from != nil, s.from).
		Optional(s.hasFilter(), s.where).
		Optional(s.hasReturning(), s.returning)
}
