package query

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

// Col references a column by bare name.
func Col(name string) ast.Expr {
	return ast.Column{Ref: ast.ColumnRef{Name: ast.Ident(name)}}
}

// TCol references a table qualified column (table.name).
func TCol(table, name string) ast.Expr {
	return ast.Column{Ref: ast.ColumnRef{Table: ast.Ident(table), Name: ast.Ident(name)}}
}

// Star is the unqualified * projection.
func Star() ast.Expr { return ast.Star{} }

// TStar is table.*.
func TStar(table string) ast.Expr { return ast.Star{Table: ast.Ident(table)} }

// Field projects a column by bare name.
func Field(name string) ast.Field { return ast.Field{Expr: Col(name)} }

// TField projects a table qualified column.
func TField(table, name string) ast.Field { return ast.Field{Expr: TCol(table, name)} }

// Fields projects each name as a bare column.
func Fields(names ...string) []ast.Field {
	fields := make([]ast.Field, len(names))
	for i, name := range names {
		fields[i] = Field(name)
	}
	return fields
}

// Expr projects an arbitrary expression.
func Expr(e ast.Expr) ast.Field { return ast.Field{Expr: e} }

// As projects an expression under an alias.
func As(e ast.Expr, alias string) ast.Field {
	return ast.Field{Expr: e, Alias: ast.Ident(alias)}
}

// TableRef references a table by bare name.
func TableRef(name string) ast.TableRef { return ast.TableRef{Name: ast.Ident(name)} }

// SchemaTableRef references a schema qualified table.
func SchemaTableRef(schema, name string) ast.TableRef {
	return ast.TableRef{Schema: ast.Ident(schema), Name: ast.Ident(name)}
}

// Table is a FROM item naming a table.
func Table(name string) ast.Table { return ast.Table{Expr: TableRef(name)} }

// Tables is a FROM item per name.
func Tables(names ...string) []ast.Table {
	tables := make([]ast.Table, len(names))
	for i, name := range names {
		tables[i] = Table(name)
	}
	return tables
}

// SchemaTable is a FROM item naming a schema qualified table.
func SchemaTable(schema, name string) ast.Table {
	return ast.Table{Expr: SchemaTableRef(schema, name)}
}

// TableAs is a FROM item naming a table under an alias.
func TableAs(name, alias string) ast.Table {
	return ast.Table{Expr: TableRef(name), Alias: ast.Ident(alias)}
}

// Target names the table an UPDATE or DELETE modifies.
func Target(name string) ast.Target { return ast.Target{Ref: TableRef(name)} }

// SchemaTarget names a schema qualified UPDATE or DELETE target.
func SchemaTarget(schema, name string) ast.Target {
	return ast.Target{Ref: SchemaTableRef(schema, name)}
}

// TargetAs names an UPDATE or DELETE target under an alias.
func TargetAs(name, alias string) ast.Target {
	return ast.Target{Ref: TableRef(name), Alias: ast.Ident(alias)}
}

// TableFunc is a FROM item calling a set returning function.
//
// Example:
//
//	query.TableFunc("unnest", query.TCol("data", "value"))
//	// unnest(data.value)
func TableFunc(name string, args ...ast.Expr) ast.Table {
	return ast.Table{Expr: call(name, args)}
}

// Derived is a FROM item selecting from a subquery.
func Derived(s ast.Statement, alias string) ast.Table {
	return ast.Table{Expr: ast.Subquery{Stmt: s}, Alias: ast.Ident(alias)}
}

// Cte names a statement for use in a WITH clause.
func Cte(name string, s ast.Statement, columns ...string) ast.Cte {
	var cols []ast.Ident
	for _, c := range columns {
		cols = append(cols, ast.Ident(c))
	}
	return ast.Cte{Name: ast.Ident(name), Columns: cols, Query: s}
}

// Idents converts names to identifiers.
func Idents(names ...string) []ast.Ident {
	ids := make([]ast.Ident, len(names))
	for i, name := range names {
		ids[i] = ast.Ident(name)
	}
	return ids
}
