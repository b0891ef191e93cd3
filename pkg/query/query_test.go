package query_test

import (
	"testing"

	"github.com/pseudomuto/sqlkit/pkg/ast"
	. "github.com/pseudomuto/sqlkit/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestExpressions(t *testing.T) {
	id, name := Col("id"), Col("name")

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"eq", Eq(id, Int(1)), "id = 1"},
		{"ne", Ne(id, Int(1)), "id <> 1"},
		{"lt", Lt(id, Uint(10)), "id < 10"},
		{"le", Le(id, Float(2.5)), "id <= 2.5"},
		{"gt", Gt(id, Int(-3)), "id > -3"},
		{"ge", Ge(TCol("book", "year"), Int(1970)), "book.year >= 1970"},
		{"text", Eq(name, Text("O'Brien")), "name = 'O''Brien'"},
		{"bool and null", Or(Eq(Col("active"), Bool(true)), IsNull(Null())), "active = true OR NULL IS NULL"},
		{"arithmetic", Mul(Add(id, Int(1)), Sub(Col("n"), Div(id, Mod(id, Int(2))))), "(id + 1) * (n - id / (id % 2))"},
		{"pow", Pow(Neg(id), Int(2)), "-id ^ 2"},
		{"concat", Concat(name, Text("!")), "name || '!'"},
		{"like", Like(name, Text("a%")), "name LIKE 'a%'"},
		{"not like", NotLike(name, Text("a%")), "name NOT LIKE 'a%'"},
		{"ilike", ILike(name, Text("a%")), "name ILIKE 'a%'"},
		{"not ilike", NotILike(name, Text("a%")), "name NOT ILIKE 'a%'"},
		{"in", In(id, Int(1), Int(2), Int(3)), "id IN (1, 2, 3)"},
		{"not in", NotIn(id, Int(1)), "id NOT IN (1)"},
		{"in query", InQuery(id, Select("book_id").From(Table("sale"))), "id IN (SELECT book_id FROM sale)"},
		{"between", Between(id, Int(1), Int(10)), "id BETWEEN 1 AND 10"},
		{"not between", NotBetween(id, Int(1), Int(10)), "id NOT BETWEEN 1 AND 10"},
		{"is not null", IsNotNull(name), "name IS NOT NULL"},
		{"is true", IsTrue(Col("active")), "active IS TRUE"},
		{"is not true", IsNotTrue(Col("active")), "active IS NOT TRUE"},
		{"is false", IsFalse(Col("active")), "active IS FALSE"},
		{"is not false", IsNotFalse(Col("active")), "active IS NOT FALSE"},
		{"is unknown", IsUnknown(Col("active")), "active IS UNKNOWN"},
		{"is distinct from", IsDistinctFrom(id, Null()), "id IS DISTINCT FROM NULL"},
		{"is not distinct from", IsNotDistinctFrom(id, Col("other")), "id IS NOT DISTINCT FROM other"},
		{"exists", Exists(Select("id").From(Table("sale"))), "EXISTS (SELECT id FROM sale)"},
		{"not exists", NotExists(Select("id").From(Table("sale"))), "NOT EXISTS (SELECT id FROM sale)"},
		{"not", Not(And(id, name)), "NOT (id AND name)"},
		{"scalar", Gt(id, Scalar(Select().Select(Expr(Max(id))).From(Table("book")))), "id > (SELECT MAX(id) FROM book)"},
		{"tuple", Eq(Tuple(id, name), Tuple(Int(1), Text("a"))), "(id, name) = (1, 'a')"},
		{"func", Func("coalesce", Col("nickname"), name), "coalesce(nickname, name)"},
		{"aggregates", Add(Add(Count(id), Sum(id)), Add(Avg(id), Min(id))), "COUNT(id) + SUM(id) + (AVG(id) + MIN(id))"},
		{"count all", CountAll(), "COUNT(*)"},
		{"unnest", Unnest(TCol("data", "value")), "unnest(data.value)"},
		{"stars", Func("f", Star(), TStar("t")), "f(*, t.*)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ast.Render(tt.expr))
		})
	}
}

func TestAndOr(t *testing.T) {
	a, b, c := Col("a"), Col("b"), Col("c")

	require.Nil(t, And())
	require.Nil(t, Or(nil, nil))
	require.Equal(t, a, And(a))
	require.Equal(t, a, Or(nil, a, nil))
	require.Equal(t, "a AND b AND c", ast.Render(And(a, b, c)))
	require.Equal(t, "a OR b OR c", ast.Render(Or(a, nil, b, c)))
	require.Equal(t, "(a AND b) OR c", ast.Render(Or(And(a, b), c)))
	require.Equal(t, "((a AND b) AND c)", ast.Grouped(And(a, b, c)))
}

func TestVariadicCopies(t *testing.T) {
	items := []ast.Expr{Int(1), Int(2)}
	in := In(Col("id"), items...)
	fn := Func("f", items...)
	tuple := Tuple(items...)
	row := Row(items...)

	items[0] = Int(99)

	require.Equal(t, "id IN (1, 2)", ast.Render(in))
	require.Equal(t, "f(1, 2)", ast.Render(fn))
	require.Equal(t, "(1, 2)", ast.Render(tuple))
	require.Equal(t, "(1, 2)", row.String())
}

func TestRefs(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		fields := append(Fields("id", "name"), TField("book", "year"), As(CountAll(), "total"), Expr(Int(1)))
		require.Equal(t, "id, name, book.year, COUNT(*) AS total, 1", ast.JoinItems(fields))
	})

	t.Run("tables", func(t *testing.T) {
		tables := append(
			Tables("book", "author"),
			SchemaTable("public", "data"),
			TableAs("sale", "s"),
			TableFunc("unnest", TCol("data", "value")),
			Derived(Select("id").From(Table("book")), "b"),
		)
		require.Equal(
			t,
			"book, author, public.data, sale AS s, unnest(data.value), (SELECT id FROM book) AS b",
			ast.JoinItems(tables),
		)
	})

	t.Run("targets", func(t *testing.T) {
		require.Equal(t, "book", Target("book").String())
		require.Equal(t, "archive.book", SchemaTarget("archive", "book").String())
		require.Equal(t, "book AS b", TargetAs("book", "b").String())
	})

	t.Run("table refs", func(t *testing.T) {
		require.Equal(t, ast.TableRef{Name: "book"}, TableRef("book"))
		require.Equal(t, ast.TableRef{Schema: "public", Name: "book"}, SchemaTableRef("public", "book"))
	})

	t.Run("cte", func(t *testing.T) {
		cte := Cte("recent", Select("id").From(Table("book")), "book_id")
		require.Equal(t, "recent(book_id) AS (SELECT id FROM book)", cte.String())
		require.Empty(t, Cte("all_books", Select("id")).Columns)
	})

	t.Run("idents", func(t *testing.T) {
		require.Equal(t, []ast.Ident{"a", "b"}, Idents("a", "b"))
		require.Empty(t, Idents())
	})
}

func TestOrder(t *testing.T) {
	id := Col("id")

	require.Equal(t, "id", By(id).String())
	require.Equal(t, "id ASC", Asc(id).String())
	require.Equal(t, "id DESC", Desc(id).String())
	require.Equal(t, "id DESC NULLS LAST", NullsLast(Desc(id)).String())
	require.Equal(t, "id NULLS FIRST", NullsFirst(By(id)).String())
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name string
		stmt ast.Statement
		want string
	}{
		{
			"select",
			Select("id", "name").From(Table("book")).Filter(Gt(Col("id"), Int(1))),
			"SELECT id, name FROM book WHERE id > 1",
		},
		{
			"insert",
			Insert("book", "title", "author").Values(Row(Text("Dune"), Text("Herbert"))),
			"INSERT INTO book(title, author) VALUES ('Dune', 'Herbert')",
		},
		{
			"update",
			Update("book").SetValues(Assign("title", Text("Dune")), Assign("year", Int(1965))).Filter(Eq(Col("id"), Int(1))),
			"UPDATE book SET title = 'Dune', year = 1965 WHERE id = 1",
		},
		{
			"delete",
			Delete("book").Filter(Lt(Col("year"), Int(1900))),
			"DELETE FROM book WHERE year < 1900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.stmt.String())
		})
	}
}
