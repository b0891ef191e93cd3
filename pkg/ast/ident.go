package ast

// Ident is a bare SQL name. It is rendered verbatim: no quoting, escaping, or
// reserved-word checks are applied, which leaves choosing safe names to the
// caller.
type Ident string

// String returns the identifier text.
func (i Ident) String() string { return string(i) }

type (
	// ColumnRef references a column, optionally qualified by its table.
	//
	// An empty Table renders the bare form (col); otherwise the qualified form
	// (table.col) is used.
	ColumnRef struct {
		Table Ident
		Name  Ident
	}

	// TableRef references a table, optionally qualified by its schema.
	//
	// An empty Schema renders the bare form (table); otherwise the qualified
	// form (schema.table) is used.
	TableRef struct {
		Schema Ident
		Name   Ident
	}
)

// String returns col or table.col.
func (c ColumnRef) String() string {
	return qualify(c.Table, c.Name)
}

// Qualified reports whether the reference carries a table name.
func (c ColumnRef) Qualified() bool { return c.Table != "" }

// String returns table or schema.table.
func (t TableRef) String() string {
	return qualify(t.Schema, t.Name)
}

// Qualified reports whether the reference carries a schema name.
func (t TableRef) Qualified() bool { return t.Schema != "" }

func (TableRef) isTableExpr() {}

func qualify(prefix, name Ident) string {
	if prefix == "" {
		return string(name)
	}
	return string(prefix) + "." + string(name)
}
