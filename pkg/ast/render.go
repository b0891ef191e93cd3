package ast

import (
	"strings"
)

// Render returns the SQL text of an expression.
//
// Children are parenthesized only when the precedence table requires it, with
// one exception: an AND directly under an OR is always wrapped.
//
//	a = 1 AND b = 2             // AND of two comparisons
//	(a = 1 AND b = 2) OR c = 3  // OR over that AND and a third comparison
//	(a + b) * c                 // product of a sum and a column
func Render(e Expr) string {
	if e == nil {
		return ""
	}
	return e.String()
}

// Grouped returns the canonical fully parenthesized form of an expression.
//
// Every operator application is wrapped in its own pair of parentheses,
// keywords are upper case and single item tuples are transparent:
//
//	a = 1 AND NOT b IS NULL  ->  ((a = 1) AND (NOT (b IS NULL)))
//
// The form carries the tree shape alone, independent of how Render decided to
// parenthesize, which makes it the comparison key for round-trip checks.
func Grouped(e Expr) string {
	var sb strings.Builder
	grouped(&sb, e)
	return sb.String()
}

func grouped(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case nil:
	case Literal:
		switch n.Value.Kind() {
		case KindBool:
			sb.WriteString(strings.ToUpper(n.Value.String()))
		default:
			sb.WriteString(n.Value.String())
		}
	case Column, Star:
		sb.WriteString(n.String())
	case Unary:
		groupedUnary(sb, n)
	case Binary:
		sb.WriteString("(")
		grouped(sb, n.Left)
		sb.WriteString(" " + n.Op.String() + " ")
		if n.Op == OpIn || n.Op == OpNotIn {
			groupedList(sb, n.Right)
		} else {
			grouped(sb, n.Right)
		}
		sb.WriteString(")")
	case Between:
		sb.WriteString("(")
		grouped(sb, n.Expr)
		if n.Not {
			sb.WriteString(" NOT")
		}
		sb.WriteString(" BETWEEN ")
		grouped(sb, n.Low)
		sb.WriteString(" AND ")
		grouped(sb, n.High)
		sb.WriteString(")")
	case Call:
		sb.WriteString(n.Name)
		groupedItems(sb, n.Args)
	case Tuple:
		if len(n.Items) == 1 {
			grouped(sb, n.Items[0])
			return
		}
		groupedItems(sb, n.Items)
	case Subquery:
		sb.WriteString(n.String())
	default:
		panic("ast: unknown expression node")
	}
}

func groupedUnary(sb *strings.Builder, u Unary) {
	if u.Op == OpNeg {
		if l, ok := u.Operand.(Literal); ok && l.Value.numeric() && !l.Value.negative() {
			sb.WriteString("-" + l.Value.String())
			return
		}
	}

	sb.WriteString("(")
	if u.Op.Fixity() == Postfix {
		grouped(sb, u.Operand)
		sb.WriteString(" " + u.Op.String())
	} else {
		sb.WriteString(u.Op.String() + " ")
		grouped(sb, u.Operand)
	}
	sb.WriteString(")")
}

// groupedList writes the right hand side of IN. A lone expression is read back
// as a one item list, so both forms share the (a, b) shape.
func groupedList(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Tuple:
		groupedItems(sb, n.Items)
	case Subquery:
		sb.WriteString(n.String())
	default:
		groupedItems(sb, []Expr{e})
	}
}

func groupedItems(sb *strings.Builder, items []Expr) {
	sb.WriteString("(")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		grouped(sb, item)
	}
	sb.WriteString(")")
}
