package stmt

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/utils"
)

// SelectStmt is a SELECT statement builder.
type SelectStmt struct {
	withPart
	filterPart

	fields  *clause.Select
	from    *clause.From
	groupBy *clause.GroupBy
	having  *clause.Having
	orderBy *clause.OrderBy
}

// Select starts a SELECT statement projecting fields.
//
// Example:
//
//	stmt.Select(query.Fields("id", "name")...).From(query.Table("book"))
//	// SELECT id, name FROM book
func Select(fields ...ast.Field) SelectStmt {
	var s *clause.Select
	return SelectStmt{fields: s.Append(fields...)}
}

// Kind returns ast.SelectKind.
func (SelectStmt) Kind() ast.StatementKind { return ast.SelectKind }

// Select appends fields to the projection list.
//
// Example:
//
//	stmt.Select(query.Field("id")).Select(query.Field("name"))
//	// SELECT id, name
func (s SelectStmt) Select(fields ...ast.Field) SelectStmt {
	s.fields = s.fields.Append(fields...)
	return s
}

// From appends tables to the FROM clause.
//
// Example:
//
//	stmt.Select(...).From(query.Table("book")).From(query.Table("author"))
//	// ... FROM book, author
func (s SelectStmt) From(tables ...ast.Table) SelectStmt {
	s.from = s.from.Append(tables...)
	return s
}

// Filter sets the WHERE condition. Later calls are combined with the existing
// condition using AND, in call order.
//
// Example:
//
//	s.Filter(query.Ge(query.Col("id"), query.Int(1))).
//		Filter(query.Ge(query.Col("year"), query.Int(1970)))
//	// ... WHERE id >= 1 AND year >= 1970
func (s SelectStmt) Filter(cond ast.Expr) SelectStmt {
	s.filterPart = s.addFilter(cond)
	return s
}

// GroupBy appends grouping expressions.
func (s SelectStmt) GroupBy(exprs ...ast.Expr) SelectStmt {
	s.groupBy = s.groupBy.Append(exprs...)
	return s
}

// Having sets the HAVING condition, AND-merging later calls like Filter.
func (s SelectStmt) Having(cond ast.Expr) SelectStmt {
	s.having = s.having.And(cond)
	return s
}

// OrderBy appends sort entries.
func (s SelectStmt) OrderBy(orders ...ast.Order) SelectStmt {
	s.orderBy = s.orderBy.Append(orders...)
	return s
}

// With appends common table expressions.
func (s SelectStmt) With(ctes ...ast.Cte) SelectStmt {
	s.withPart = s.addWith(false, ctes)
	return s
}

// WithRecursive appends common table expressions and marks the whole WITH
// list as RECURSIVE.
func (s SelectStmt) WithRecursive(ctes ...ast.Cte) SelectStmt {
	s.withPart = s.addWith(true, ctes)
	return s
}

// Limit wraps the statement in a Result with a row limit.
func (s SelectStmt) Limit(n uint64) Result {
	return Result{stmt: s}.Limit(n)
}

// Offset wraps the statement in a Result skipping n rows.
func (s SelectStmt) Offset(n uint64) Result {
	return Result{stmt: s}.Offset(n)
}

// Pagination wraps the statement in a Result with both LIMIT and OFFSET.
func (s SelectStmt) Pagination(limit, offset uint64) Result {
	return Result{stmt: s}.Pagination(limit, offset)
}

// Clauses returns the rendered clauses in emission order.
func (s SelectStmt) Clauses() []string { return s.build().Parts() }

func (s SelectStmt) String() string { return s.build().String() }

func (s SelectStmt) build() *utils.SQLBuilder {
	fields := s.fields
	if fields == nil {
		fields = &clause.Select{}
	}

	return utils.NewSQLBuilder().
		Optional(s.hasWith(), s.with).
		Clause(fields).
		Optional(s.from != nil, s.from).
		Optional(s.hasFilter(), s.where).
		Optional(s.groupBy != nil, s.groupBy).
		Optional(s.having != nil, s.having).
		Optional(s.orderBy != nil, s.orderBy)
}
