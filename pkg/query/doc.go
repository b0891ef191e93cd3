// Package query provides short constructors for building statements without
// spelling out AST nodes.
//
// Each function accepts exactly one shape of input. Names become columns or
// tables, native Go values become literals through the typed helpers (Int,
// Text, Bool, ...), and operator helpers combine expressions:
//
//	query.Select("id", "name").
//		From(query.Table("book")).
//		Filter(query.Ge(query.Col("year"), query.Int(1970))).
//		OrderBy(query.Desc(query.Col("id"))).
//		Limit(10)
//	// SELECT id, name FROM book WHERE year >= 1970 ORDER BY id DESC LIMIT 10
//
// Identifiers are used verbatim. Literal text is quote escaped but otherwise
// embedded directly in the SQL, so untrusted input must still be handled by
// the caller.
package query
