package clause

import (
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

// Append returns a With holding the existing CTEs followed by ctes. The
// recursive flag is sticky: once any call sets it, the whole list renders as
// WITH RECURSIVE, even when that call added no CTEs. A With without CTEs is
// not rendered by the statements.
func (w *With) Append(recursive bool, ctes ...ast.Cte) *With {
	if w == nil {
		if len(ctes) == 0 && !recursive {
			return nil
		}
		return &With{Recursive: recursive, CTEs: concat[ast.Cte](nil, ctes)}
	}
	return &With{Recursive: w.Recursive || recursive, CTEs: concat(w.CTEs, ctes)}
}

// Append returns a Select list extended with fields.
func (s *Select) Append(fields ...ast.Field) *Select { return appendTo(s, fields) }

// Append returns a From list extended with tables.
func (f *From) Append(tables ...ast.Table) *From { return appendTo(f, tables) }

// Append returns a GroupBy list extended with exprs.
func (g *GroupBy) Append(exprs ...ast.Expr) *GroupBy { return appendTo(g, exprs) }

// Append returns an OrderBy list extended with orders.
func (o *OrderBy) Append(orders ...ast.Order) *OrderBy { return appendTo(o, orders) }

// Append returns a Values list extended with rows.
func (v *Values) Append(rows ...ast.Row) *Values { return appendTo(v, rows) }

// Append returns a Returning list extended with fields.
func (r *Returning) Append(fields ...ast.Field) *Returning { return appendTo(r, fields) }

// Append returns a Set list extended with assignments.
func (s *Set) Append(assignments ...Assignment) *Set { return appendTo(s, assignments) }

// And folds cond into the filter. A nil receiver yields cond alone and a nil
// cond leaves the filter as it is.
func (w *Where) And(cond ast.Expr) *Where {
	if cond == nil {
		return w
	}
	if w == nil {
		return &Where{Cond: cond}
	}
	return &Where{Cond: and(w.Cond, cond)}
}

// And folds cond into the filter. A nil receiver yields cond alone.
func (h *Having) And(cond ast.Expr) *Having {
	if cond == nil {
		return h
	}
	if h == nil {
		return &Having{Cond: cond}
	}
	return &Having{Cond: and(h.Cond, cond)}
}

func and(left, right ast.Expr) ast.Expr {
	return ast.Binary{Op: ast.OpAnd, Left: left, Right: right}
}

// appendTo leaves an absent clause absent when there is nothing to add.
func appendTo[C ~[]T, T any](c *C, items []T) *C {
	if c == nil && len(items) == 0 {
		return nil
	}

	var cur C
	if c != nil {
		cur = *c
	}

	next := C(concat[T](cur, items))
	return &next
}

// concat copies both inputs into a new backing array so the result never
// aliases either argument.
func concat[T any](head, tail []T) []T {
	out := make([]T, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}
