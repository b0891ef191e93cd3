package stmt

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
)

type (
	// HasWith is implemented by statements that accept a WITH prefix.
	HasWith[S any] interface {
		ast.Statement
		With(ctes ...ast.Cte) S
		WithRecursive(ctes ...ast.Cte) S
	}

	// HasReturning is implemented by data modifying statements.
	HasReturning[S any] interface {
		ast.Statement
		Returning(fields ...ast.Field) S
	}

	// HasFilter is implemented by statements with a WHERE clause.
	HasFilter[S any] interface {
		ast.Statement
		Filter(cond ast.Expr) S
	}

	withPart struct {
		with *clause.With
	}

	returningPart struct {
		returning *clause.Returning
	}

	filterPart struct {
		where *clause.Where
	}
)

var (
	_ HasWith[SelectStmt] = SelectStmt{}
	_ HasWith[InsertStmt] = InsertStmt{}
	_ HasWith[UpdateStmt] = UpdateStmt{}
	_ HasWith[DeleteStmt] = DeleteStmt{}

	_ HasReturning[InsertStmt] = InsertStmt{}
	_ HasReturning[UpdateStmt] = UpdateStmt{}
	_ HasReturning[DeleteStmt] = DeleteStmt{}

	_ HasFilter[SelectStmt] = SelectStmt{}
	_ HasFilter[UpdateStmt] = UpdateStmt{}
	_ HasFilter[DeleteStmt] = DeleteStmt{}

	_ ast.Statement = Result{}
)

func (p withPart) addWith(recursive bool, ctes []ast.Cte) withPart {
	return withPart{with: p.with.Append(recursive, ctes...)}
}

func (p withPart) hasWith() bool { return p.with != nil && len(p.with.CTEs) > 0 }

func (p returningPart) addReturning(fields []ast.Field) returningPart {
	return returningPart{returning: p.returning.Append(fields...)}
}

func (p returningPart) hasReturning() bool { return p.returning != nil }

func (p filterPart) addFilter(cond ast.Expr) filterPart {
	return filterPart{where: p.where.And(cond)}
}

func (p filterPart) hasFilter() bool { return p.where != nil }
