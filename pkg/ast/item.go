package ast

import (
	"strings"
)

// StatementKind identifies the top-level verb of a statement.
type StatementKind int

const (
	SelectKind StatementKind = iota
	InsertKind
	UpdateKind
	DeleteKind
)

func (k StatementKind) String() string {
	switch k {
	case SelectKind:
		return "SELECT"
	case InsertKind:
		return "INSERT"
	case UpdateKind:
		return "UPDATE"
	case DeleteKind:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

type (
	// Statement is a complete, renderable SQL statement. It is implemented by
	// the statement builders so statements can nest as subqueries and CTE
	// bodies.
	Statement interface {
		String() string
		Kind() StatementKind
	}

	// Sort is the direction of an ORDER BY entry.
	Sort int

	// Nulls places NULLs first or last in an ORDER BY entry.
	Nulls int

	// Table is a FROM item: a table expression with an optional alias.
	Table struct {
		Expr  TableExpr
		Alias Ident
	}

	// Target is the table an UPDATE or DELETE modifies: a plain table
	// reference with an optional alias.
	Target struct {
		Ref   TableRef
		Alias Ident
	}

	// Field is a projection: an expression with an optional alias.
	Field struct {
		Expr  Expr
		Alias Ident
	}

	// Order is an ORDER BY entry.
	Order struct {
		Expr  Expr
		Sort  Sort
		Nulls Nulls
	}

	// Row is one tuple of a VALUES clause.
	Row []Expr

	// Cte is a common table expression: name[(columns)] AS (query).
	Cte struct {
		Name    Ident
		Columns []Ident
		Query   Statement
	}
)

const (
	SortDefault Sort = iota
	SortAsc
	SortDesc
)

const (
	NullsDefault Nulls = iota
	NullsFirst
	NullsLast
)

func (t Table) String() string {
	if t.Expr == nil {
		return alias("", t.Alias)
	}
	return alias(t.Expr.String(), t.Alias)
}

func (t Target) String() string { return alias(t.Ref.String(), t.Alias) }

func (f Field) String() string { return alias(Render(f.Expr), f.Alias) }

func (o Order) String() string {
	var sb strings.Builder
	sb.WriteString(Render(o.Expr))

	switch o.Sort {
	case SortAsc:
		sb.WriteString(" ASC")
	case SortDesc:
		sb.WriteString(" DESC")
	}

	switch o.Nulls {
	case NullsFirst:
		sb.WriteString(" NULLS FIRST")
	case NullsLast:
		sb.WriteString(" NULLS LAST")
	}

	return sb.String()
}

func (r Row) String() string { return "(" + join(r) + ")" }

func (c Cte) String() string {
	var sb strings.Builder
	sb.WriteString(string(c.Name))
	if len(c.Columns) > 0 {
		sb.WriteString("(" + JoinIdents(c.Columns) + ")")
	}

	sb.WriteString(" AS (")
	sb.WriteString(c.Query.String())
	sb.WriteString(")")
	return sb.String()
}

// JoinIdents renders a comma separated identifier list.
func JoinIdents(ids []Ident) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

// JoinItems renders a comma separated list of any clause items.
func JoinItems[T interface{ String() string }](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}

func alias(text string, name Ident) string {
	if name == "" || text == "" {
		return text
	}
	return text + " AS " + string(name)
}
