// Package clause models the individual clauses of a SQL statement.
//
// Every clause is its own type with a String method producing "KEYWORD body".
// Clauses are combined across repeated builder calls by one of three policies:
//
//   - Append: list clauses (Select, From, GroupBy, OrderBy, Values, Returning,
//     Set and the CTE list of With) keep every item in call order, duplicates
//     included.
//   - AND-merge: predicate clauses (Where, Having) start with the first
//     condition and fold each later one in as AND(previous, next).
//   - Replace-once: singleton clauses (Insert, Update, Delete, Limit, Offset)
//     are simply overwritten by the latest call.
//
// The composition methods are defined on pointer receivers and accept nil, so
// an absent clause is just a nil field on the owning statement. They never
// modify the receiver: each call returns a fresh clause whose slices share no
// backing array with the input.
//
// Example:
//
//	var where *clause.Where
//	where = where.And(query.Ge(query.Col("id"), query.Int(1)))
//	where = where.And(query.Ge(query.Col("year"), query.Int(1970)))
//	where.String() // WHERE id >= 1 AND year >= 1970
package clause
