package ast_test

import (
	"testing"

	. "github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/stretchr/testify/require"
)

type rawStmt string

func (s rawStmt) String() string    { return string(s) }
func (rawStmt) Kind() StatementKind { return SelectKind }

func col(name string) Expr { return Column{Ref: ColumnRef{Name: Ident(name)}} }
func num(v int64) Expr     { return Literal{Value: Int(v)} }

func bin(op Operator, l, r Expr) Expr { return Binary{Op: op, Left: l, Right: r} }
func un(op Operator, e Expr) Expr     { return Unary{Op: op, Operand: e} }

func eq(name string, v int64) Expr { return bin(OpEq, col(name), num(v)) }

func TestRender_Precedence(t *testing.T) {
	a, b, c, d := col("a"), col("b"), col("c"), col("d")

	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		// boolean connectives
		{"and of comparisons", bin(OpAnd, eq("a", 1), eq("b", 2)), "a = 1 AND b = 2"},
		{"and under or on the left", bin(OpOr, bin(OpAnd, eq("a", 1), eq("b", 2)), eq("c", 3)), "(a = 1 AND b = 2) OR c = 3"},
		{"and under or on the right", bin(OpOr, eq("c", 3), bin(OpAnd, eq("a", 1), eq("b", 2))), "c = 3 OR (a = 1 AND b = 2)"},
		{"or under and", bin(OpAnd, bin(OpOr, eq("a", 1), eq("b", 2)), eq("c", 3)), "(a = 1 OR b = 2) AND c = 3"},
		{"and chain left", bin(OpAnd, bin(OpAnd, a, b), c), "a AND b AND c"},
		{"and chain right", bin(OpAnd, a, bin(OpAnd, b, c)), "a AND (b AND c)"},
		{"or chain left", bin(OpOr, bin(OpOr, a, b), c), "a OR b OR c"},
		{"or chain right", bin(OpOr, a, bin(OpOr, b, c)), "a OR (b OR c)"},

		// NOT
		{"not not", un(OpNot, un(OpNot, a)), "NOT NOT a"},
		{"not over and", un(OpNot, bin(OpAnd, a, b)), "NOT (a AND b)"},
		{"not over or", un(OpNot, bin(OpOr, a, b)), "NOT (a OR b)"},
		{"not under and", bin(OpAnd, un(OpNot, a), b), "NOT a AND b"},
		{"not over comparison", un(OpNot, eq("a", 1)), "NOT a = 1"},
		{"not under comparison", bin(OpEq, un(OpNot, a), b), "(NOT a) = b"},

		// IS
		{"is null", un(OpIsNull, a), "a IS NULL"},
		{"is not null", un(OpIsNotNull, a), "a IS NOT NULL"},
		{"is true over comparison", un(OpIsTrue, eq("a", 1)), "a = 1 IS TRUE"},
		{"is null over and", un(OpIsNull, bin(OpAnd, a, b)), "(a AND b) IS NULL"},
		{"is null over not", un(OpIsNull, un(OpNot, a)), "(NOT a) IS NULL"},
		{"is null twice", un(OpIsNull, un(OpIsNull, a)), "(a IS NULL) IS NULL"},
		{"not over is null", un(OpNot, un(OpIsNull, a)), "NOT a IS NULL"},
		{"is distinct from", bin(OpIsDistinctFrom, a, b), "a IS DISTINCT FROM b"},
		{"is not distinct from sums", bin(OpIsNotDistinctFrom, bin(OpAdd, a, b), c), "a + b IS NOT DISTINCT FROM c"},
		{"comparison under is distinct", bin(OpIsDistinctFrom, eq("a", 1), b), "a = 1 IS DISTINCT FROM b"},
		{"is under comparison", bin(OpEq, un(OpIsNull, a), b), "(a IS NULL) = b"},

		// comparisons
		{"chained comparison left", bin(OpEq, bin(OpEq, a, b), c), "(a = b) = c"},
		{"chained comparison right", bin(OpEq, a, bin(OpLt, b, c)), "a = (b < c)"},
		{"not equal", bin(OpNotEq, a, b), "a <> b"},
		{"comparison of sums", bin(OpLt, bin(OpAdd, a, num(1)), bin(OpMul, b, num(2))), "a + 1 < b * 2"},
		{"comparison over like", bin(OpEq, bin(OpLike, a, b), c), "a LIKE b = c"},
		{"like over comparison", bin(OpLike, bin(OpEq, a, b), c), "(a = b) LIKE c"},

		// pattern operators
		{"like", bin(OpLike, a, Literal{Value: Text("x%")}), "a LIKE 'x%'"},
		{"not ilike", bin(OpNotILike, a, Literal{Value: Text("x%")}), "a NOT ILIKE 'x%'"},
		{"like chain", bin(OpLike, bin(OpLike, a, b), c), "(a LIKE b) LIKE c"},
		{"in tuple", bin(OpIn, a, Tuple{Items: []Expr{num(1), num(2)}}), "a IN (1, 2)"},
		{"not in tuple", bin(OpNotIn, a, Tuple{Items: []Expr{num(1)}}), "a NOT IN (1)"},
		{"in bare expression", bin(OpIn, a, b), "a IN (b)"},
		{"in subquery", bin(OpIn, a, Subquery{Stmt: rawStmt("SELECT id FROM t")}), "a IN (SELECT id FROM t)"},
		{"in with sum", bin(OpIn, bin(OpAdd, a, num(1)), Tuple{Items: []Expr{b, c}}), "a + 1 IN (b, c)"},
		{"in with comparison", bin(OpIn, eq("a", 1), Tuple{Items: []Expr{b}}), "(a = 1) IN (b)"},

		// BETWEEN
		{"between", Between{Expr: a, Low: num(1), High: num(10)}, "a BETWEEN 1 AND 10"},
		{"not between", Between{Expr: a, Low: num(1), High: num(10), Not: true}, "a NOT BETWEEN 1 AND 10"},
		{"between arithmetic bounds", Between{Expr: a, Low: bin(OpAdd, b, num(1)), High: bin(OpMul, c, num(2))}, "a BETWEEN b + 1 AND c * 2"},
		{"between concat bound", Between{Expr: a, Low: bin(OpConcat, b, c), High: d}, "a BETWEEN b || c AND d"},
		{"between boolean bound", Between{Expr: a, Low: bin(OpAnd, b, c), High: d}, "a BETWEEN (b AND c) AND d"},
		{"between comparison bound", Between{Expr: a, Low: b, High: bin(OpLt, c, d)}, "a BETWEEN b AND (c < d)"},
		{"between over comparison", Between{Expr: eq("a", 1), Low: b, High: c}, "(a = 1) BETWEEN b AND c"},
		{"between over between", Between{Expr: Between{Expr: a, Low: b, High: c}, Low: num(1), High: num(2)}, "(a BETWEEN b AND c) BETWEEN 1 AND 2"},
		{"between under and", bin(OpAnd, Between{Expr: a, Low: num(1), High: num(10)}, b), "a BETWEEN 1 AND 10 AND b"},
		{"between under comparison", bin(OpEq, Between{Expr: a, Low: b, High: c}, d), "a BETWEEN b AND c = d"},

		// arithmetic
		{"sub chain left", bin(OpSub, bin(OpSub, a, b), c), "a - b - c"},
		{"sub chain right", bin(OpSub, a, bin(OpSub, b, c)), "a - (b - c)"},
		{"add under mul", bin(OpMul, bin(OpAdd, a, b), c), "(a + b) * c"},
		{"mul under add", bin(OpAdd, a, bin(OpMul, b, c)), "a + b * c"},
		{"div right", bin(OpDiv, a, bin(OpMul, b, c)), "a / (b * c)"},
		{"mod left", bin(OpMod, bin(OpDiv, a, b), c), "a / b % c"},
		{"pow chain left", bin(OpPow, bin(OpPow, a, b), c), "a ^ b ^ c"},
		{"pow chain right", bin(OpPow, a, bin(OpPow, b, c)), "a ^ (b ^ c)"},
		{"mul under pow", bin(OpPow, bin(OpMul, a, b), c), "(a * b) ^ c"},
		{"concat over sum", bin(OpConcat, a, bin(OpAdd, b, c)), "a || b + c"},
		{"sum over concat", bin(OpAdd, bin(OpConcat, a, b), c), "(a || b) + c"},

		// signs
		{"negate column", un(OpNeg, a), "-a"},
		{"negate literal", un(OpNeg, num(2)), "-2"},
		{"negate negative literal", un(OpNeg, num(-1)), "-(-1)"},
		{"negate negation", un(OpNeg, un(OpNeg, a)), "-(-a)"},
		{"plus over negation", un(OpPos, un(OpNeg, a)), "+(-a)"},
		{"negate sum", un(OpNeg, bin(OpAdd, a, b)), "-(a + b)"},
		{"negated base", bin(OpPow, un(OpNeg, a), num(2)), "-a ^ 2"},
		{"subtract negative literal", bin(OpSub, a, num(-1)), "a - -1"},
		{"negative literal factor", bin(OpMul, num(-1), a), "-1 * a"},

		// primaries
		{"call arguments", Call{Name: "count", Args: []Expr{bin(OpAdd, a, b)}}, "count(a + b)"},
		{"call without arguments", Call{Name: "now"}, "now()"},
		{"call in comparison", bin(OpGt, Call{Name: "COUNT", Args: []Expr{Star{}}}, num(1)), "COUNT(*) > 1"},
		{"qualified star", Star{Table: "t"}, "t.*"},
		{"tuple comparison", bin(OpEq, Tuple{Items: []Expr{a, b}}, Tuple{Items: []Expr{num(1), num(2)}}), "(a, b) = (1, 2)"},
		{"scalar subquery", bin(OpEq, a, Subquery{Stmt: rawStmt("SELECT 1")}), "a = (SELECT 1)"},
		{"exists", un(OpExists, Subquery{Stmt: rawStmt("SELECT 1")}), "EXISTS (SELECT 1)"},
		{"not exists", un(OpNot, un(OpExists, Subquery{Stmt: rawStmt("SELECT 1")})), "NOT EXISTS (SELECT 1)"},
		{"qualified columns", bin(OpEq, Column{Ref: ColumnRef{Table: "book", Name: "id"}}, Column{Ref: ColumnRef{Table: "author", Name: "id"}}), "book.id = author.id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Render(tt.expr))
		})
	}
}

func TestRender_Nil(t *testing.T) {
	require.Empty(t, Render(nil))
}

func TestRender_MissingOperatorPanics(t *testing.T) {
	require.PanicsWithValue(t, "ast: operator 999 has no precedence table entry", func() {
		_ = Render(bin(Operator(999), col("a"), col("b")))
	})
}

func TestGrouped(t *testing.T) {
	a, b := col("a"), col("b")

	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{"column", a, "a"},
		{"boolean", Literal{Value: Bool(true)}, "TRUE"},
		{"null", Literal{Value: Null()}, "NULL"},
		{"text", Literal{Value: Text("it's")}, "'it''s'"},
		{"and of is", bin(OpAnd, eq("a", 1), un(OpNot, un(OpIsNull, b))), "((a = 1) AND (NOT (b IS NULL)))"},
		{"negated literal folds", un(OpNeg, num(1)), "-1"},
		{"negative literal", num(-1), "-1"},
		{"double negation", un(OpNeg, num(-1)), "(- -1)"},
		{"negated column", un(OpNeg, a), "(- a)"},
		{"in single item", bin(OpIn, a, Tuple{Items: []Expr{num(1)}}), "(a IN (1))"},
		{"in bare", bin(OpIn, a, b), "(a IN (b))"},
		{"not in", bin(OpNotIn, a, Tuple{Items: []Expr{num(1), num(2)}}), "(a NOT IN (1, 2))"},
		{"between", Between{Expr: a, Low: num(1), High: bin(OpAdd, b, num(1)), Not: true}, "(a NOT BETWEEN 1 AND (b + 1))"},
		{"call", Call{Name: "max", Args: []Expr{bin(OpMul, a, b)}}, "max((a * b))"},
		{"single tuple is transparent", Tuple{Items: []Expr{a}}, "a"},
		{"tuple", Tuple{Items: []Expr{a, b}}, "(a, b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Grouped(tt.expr))
		})
	}
}

func TestOperator_Table(t *testing.T) {
	require.Equal(t, "-", OpSub.String())
	require.Equal(t, "-", OpNeg.String())
	require.Equal(t, Infix, OpSub.Fixity())
	require.Equal(t, Prefix, OpNeg.Fixity())
	require.Equal(t, Postfix, OpIsNull.Fixity())
	require.Equal(t, AssocLeft, OpAnd.Assoc())
	require.Equal(t, AssocNone, OpEq.Assoc())

	require.Less(t, OpOr.Precedence(), OpAnd.Precedence())
	require.Less(t, OpAnd.Precedence(), OpNot.Precedence())
	require.Less(t, OpNot.Precedence(), OpIsNull.Precedence())
	require.Less(t, OpIsNull.Precedence(), OpEq.Precedence())
	require.Less(t, OpEq.Precedence(), OpLike.Precedence())
	require.Less(t, OpLike.Precedence(), OpConcat.Precedence())
	require.Less(t, OpConcat.Precedence(), OpAdd.Precedence())
	require.Less(t, OpAdd.Precedence(), OpMul.Precedence())
	require.Less(t, OpMul.Precedence(), OpPow.Precedence())
	require.Less(t, OpPow.Precedence(), OpNeg.Precedence())
}

func TestWalk(t *testing.T) {
	e := bin(OpAnd,
		un(OpNot, eq("a", 1)),
		Between{Expr: col("b"), Low: Call{Name: "f", Args: []Expr{col("c")}}, High: Tuple{Items: []Expr{num(2)}}},
	)

	var seen []string
	Walk(e, func(n Expr) bool {
		if c, ok := n.(Column); ok {
			seen = append(seen, c.String())
		}
		return true
	})
	require.Equal(t, []string{"a", "b", "c"}, seen)

	count := 0
	Walk(e, func(n Expr) bool {
		count++
		_, isCall := n.(Call)
		return !isCall
	})
	require.Equal(t, 10, count)

	Walk(nil, func(Expr) bool {
		t.Fatal("nil expression must not be visited")
		return false
	})
}
