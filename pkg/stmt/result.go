package stmt

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/utils"
)

// Result is a finished SELECT with an optional LIMIT and OFFSET.
//
// A Result is entered from SelectStmt.Limit, Offset or Pagination and only
// lets the two pagination clauses change. Each of them is replaced by later
// calls, and they always render LIMIT first regardless of call order:
//
//	stmt.Select(query.Field("id")).From(query.Table("book")).Offset(20).Limit(5).Limit(10)
//	// SELECT id FROM book LIMIT 10 OFFSET 20
type Result struct {
	stmt   SelectStmt
	limit  *clause.Limit
	offset *clause.Offset
}

// Kind returns ast.SelectKind.
func (Result) Kind() ast.StatementKind { return ast.SelectKind }

// Statement returns the wrapped SELECT.
func (r Result) Statement() SelectStmt { return r.stmt }

// Limit replaces the row limit.
func (r Result) Limit(n uint64) Result {
	limit := clause.Limit(n)
	r.limit = &limit
	return r
}

// Offset replaces the number of skipped rows.
func (r Result) Offset(n uint64) Result {
	offset := clause.Offset(n)
	r.offset = &offset
	return r
}

// Pagination replaces both LIMIT and OFFSET.
func (r Result) Pagination(limit, offset uint64) Result {
	return r.Limit(limit).Offset(offset)
}

// Clauses returns the wrapped statement's clauses followed by LIMIT and OFFSET.
func (r Result) Clauses() []string { return r.build().Parts() }

func (r Result) String() string { return r.build().String() }

func (r Result) build() *utils.SQLBuilder {
	return utils.NewSQLBuilder().
		Extend(r.stmt.Clauses()).
		Optional(r.limit != nil, r.limit).
		Optional(r.offset != nil, r.offset)
}
