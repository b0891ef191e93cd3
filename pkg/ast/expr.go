package ast

import (
	"fmt"
	"strings"
)

type (
	// Expr is a node of a scalar or boolean SQL expression tree.
	//
	// The set of implementations is closed: Literal, Column, Unary, Binary,
	// Between, Call, Tuple, Star and Subquery. String renders the node with the
	// minimum parentheses needed to keep its shape under standard SQL
	// precedence.
	Expr interface {
		fmt.Stringer

		// Precedence returns the binding power of the node's top-level operator.
		Precedence() Precedence

		isExpr()
	}

	// TableExpr is anything that can follow FROM: a TableRef, a table
	// function Call or a Subquery.
	TableExpr interface {
		fmt.Stringer

		isTableExpr()
	}

	// Literal is a constant value.
	Literal struct {
		Value Value
	}

	// Column is a (possibly qualified) column reference.
	Column struct {
		Ref ColumnRef
	}

	// Unary applies a prefix or postfix operator to a single operand.
	Unary struct {
		Op      Operator
		Operand Expr
	}

	// Binary applies an infix operator to two operands.
	Binary struct {
		Op    Operator
		Left  Expr
		Right Expr
	}

	// Between is the ternary range predicate: Expr [NOT] BETWEEN Low AND High.
	Between struct {
		Expr Expr
		Low  Expr
		High Expr
		Not  bool
	}

	// Call is a function application, NAME(arg1, arg2). The name is rendered
	// verbatim. Calls are also table expressions (e.g. unnest(xs) in FROM).
	Call struct {
		Name string
		Args []Expr
	}

	// Tuple is a parenthesized, comma separated list: (a, b, c). It is used
	// for IN lists and row comparisons.
	Tuple struct {
		Items []Expr
	}

	// Star is the * projection, optionally qualified (t.*).
	Star struct {
		Table Ident
	}

	// Subquery embeds a statement in expression or table position. It always
	// renders wrapped in parentheses.
	Subquery struct {
		Stmt Statement
	}
)

func (Literal) isExpr()  {}
func (Column) isExpr()   {}
func (Unary) isExpr()    {}
func (Binary) isExpr()   {}
func (Between) isExpr()  {}
func (Call) isExpr()     {}
func (Tuple) isExpr()    {}
func (Star) isExpr()     {}
func (Subquery) isExpr() {}

func (Call) isTableExpr()     {}
func (Subquery) isTableExpr() {}

// Precedence of a literal is primary, except for negative numbers which bind
// like a prefix sign.
func (l Literal) Precedence() Precedence {
	if l.Value.negative() {
		return PrecedenceSign
	}
	return PrecedencePrimary
}

func (l Literal) String() string { return l.Value.String() }

func (Column) Precedence() Precedence { return PrecedencePrimary }
func (c Column) String() string       { return c.Ref.String() }

func (u Unary) Precedence() Precedence { return u.Op.Precedence() }

func (u Unary) String() string {
	text := operand(u.Operand, u.Op.operandPrecedence(false))
	if u.Op.Fixity() == Postfix {
		return text + " " + u.Op.String()
	}

	if u.Op.symbolic() {
		// -(-x) must not collapse into the comment marker --x.
		if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
			text = "(" + text + ")"
		}
		return u.Op.String() + text
	}

	return u.Op.String() + " " + text
}

func (b Binary) Precedence() Precedence { return b.Op.Precedence() }

func (b Binary) String() string {
	left := b.side(b.Left, false)
	if b.Op == OpIn || b.Op == OpNotIn {
		return left + " " + b.Op.String() + " " + list(b.Right)
	}

	return left + " " + b.Op.String() + " " + b.side(b.Right, true)
}

func (b Binary) side(e Expr, right bool) string {
	if b.Op == OpOr && isAnd(e) {
		return "(" + e.String() + ")"
	}
	return operand(e, b.Op.operandPrecedence(right))
}

func (Between) Precedence() Precedence { return PrecedencePattern }

func (b Between) String() string {
	op := "BETWEEN"
	if b.Not {
		op = "NOT BETWEEN"
	}

	return fmt.Sprintf(
		"%s %s %s AND %s",
		operand(b.Expr, PrecedencePattern+1),
		op,
		operand(b.Low, PrecedenceOther),
		operand(b.High, PrecedenceOther),
	)
}

func (Call) Precedence() Precedence { return PrecedencePrimary }

func (c Call) String() string {
	return c.Name + "(" + join(c.Args) + ")"
}

func (Tuple) Precedence() Precedence { return PrecedencePrimary }
func (t Tuple) String() string       { return "(" + join(t.Items) + ")" }

func (Star) Precedence() Precedence { return PrecedencePrimary }

func (s Star) String() string {
	if s.Table == "" {
		return "*"
	}
	return string(s.Table) + ".*"
}

func (Subquery) Precedence() Precedence { return PrecedencePrimary }
func (s Subquery) String() string       { return "(" + s.Stmt.String() + ")" }

// operand renders e, wrapping it in parentheses when it binds looser than want.
func operand(e Expr, want Precedence) string {
	if e.Precedence() < want {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// list renders the right hand side of IN, which must be parenthesized.
func list(e Expr) string {
	switch e.(type) {
	case Tuple, Subquery:
		return e.String()
	default:
		return "(" + e.String() + ")"
	}
}

func join(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func isAnd(e Expr) bool {
	b, ok := e.(Binary)
	return ok && b.Op == OpAnd
}
