// Package utils provides small helpers shared by the statement builders and the
// document loader.
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder collects rendered clauses in emission order and joins them with
// single spaces. Statements use it to produce both their clause list and their
// final text:
//
//	sql := utils.NewSQLBuilder().
//		Clause(clause.Select{...}).
//		Optional(from != nil, from).
//		String()
//	// Output: SELECT id, name FROM book
//
// # Identifier Utilities (identifier.go)
//
// Identifiers are rendered verbatim by the core packages. Input that arrives as
// text, such as query documents, goes through these helpers first:
//
//	// Split a dotted name
//	schema, table := utils.SplitQualified("public.data")
//	// Result: "public", "data"
//
//	// Check that a name needs no quoting
//	if !utils.IsIdentifier("first name") {
//		// reject it
//	}
//
// # Pointers (ptr.go)
//
//	verify := utils.Ptr(true)
package utils
