package clause

import (
	"strconv"

	"github.com/pseudomuto/sqlkit/pkg/ast"
)

type (
	// With is the common table expression prefix. Recursive applies to the
	// whole list.
	With struct {
		Recursive bool
		CTEs      []ast.Cte
	}

	// Select is the projection list.
	Select []ast.Field

	// From is the list of table expressions after FROM.
	From []ast.Table

	// Where holds the row filter of SELECT, UPDATE and DELETE.
	Where struct {
		Cond ast.Expr
	}

	// GroupBy is the list of grouping expressions.
	GroupBy []ast.Expr

	// Having holds the group filter of SELECT.
	Having struct {
		Cond ast.Expr
	}

	// OrderBy is the list of sort entries.
	OrderBy []ast.Order

	// Insert is the INSERT INTO target with its optional column list.
	Insert struct {
		Table   ast.TableRef
		Columns []ast.Ident
	}

	// Values is the list of rows of an INSERT.
	Values []ast.Row

	// Returning is the list of fields returned by a data modifying statement.
	Returning []ast.Field

	// Assignment is a single column = value pair of a SET clause.
	Assignment struct {
		Column ast.Ident
		Value  ast.Expr
	}

	// Set is the list of assignments of an UPDATE.
	Set []Assignment

	// Update is the UPDATE target.
	Update struct {
		Table ast.Target
	}

	// Delete is the DELETE FROM target.
	Delete struct {
		Table ast.Target
	}

	// Limit caps the number of returned rows.
	Limit uint64

	// Offset skips leading rows.
	Offset uint64
)

func (w With) String() string {
	if w.Recursive {
		return "WITH RECURSIVE " + ast.JoinItems(w.CTEs)
	}
	return "WITH " + ast.JoinItems(w.CTEs)
}

func (s Select) String() string {
	if len(s) == 0 {
		return "SELECT"
	}
	return "SELECT " + ast.JoinItems(s)
}

func (f From) String() string      { return "FROM " + ast.JoinItems(f) }
func (w Where) String() string     { return "WHERE " + ast.Render(w.Cond) }
func (g GroupBy) String() string   { return "GROUP BY " + ast.JoinItems(g) }
func (h Having) String() string    { return "HAVING " + ast.Render(h.Cond) }
func (o OrderBy) String() string   { return "ORDER BY " + ast.JoinItems(o) }
func (v Values) String() string    { return "VALUES " + ast.JoinItems(v) }
func (r Returning) String() string { return "RETURNING " + ast.JoinItems(r) }
func (s Set) String() string       { return "SET " + ast.JoinItems(s) }
func (u Update) String() string    { return keyword("UPDATE", u.Table.String()) }
func (d Delete) String() string    { return keyword("DELETE FROM", d.Table.String()) }

func (i Insert) String() string {
	if len(i.Columns) == 0 {
		return "INSERT INTO " + i.Table.String()
	}
	return "INSERT INTO " + i.Table.String() + "(" + ast.JoinIdents(i.Columns) + ")"
}

func (a Assignment) String() string {
	return string(a.Column) + " = " + ast.Render(a.Value)
}

func (l Limit) String() string  { return "LIMIT " + strconv.FormatUint(uint64(l), 10) }
func (o Offset) String() string { return "OFFSET " + strconv.FormatUint(uint64(o), 10) }

// keyword prefixes body with kw, leaving kw alone for an empty body.
func keyword(kw, body string) string {
	if body == "" {
		return kw
	}
	return kw + " " + body
}
