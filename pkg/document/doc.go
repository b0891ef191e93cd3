// Package document describes SQL statements declaratively in YAML.
//
// A query document names a statement kind and its parts. Documents are decoded
// with gopkg.in/yaml.v3 and built into statements through package query, so a
// document and the equivalent Go builder calls render identical SQL.
//
// Example document:
//
//	name: recent_books
//	kind: select
//	table: book
//	fields: [id, title, COUNT(*) AS total]
//	where:
//	  - {col: year, op: ">=", value: 1970}
//	  - any:
//	      - {col: title, op: like, value: "The %"}
//	      - {col: title, op: is null}
//	group_by: [id, title]
//	order_by: [title desc]
//	limit: 10
//
// Values keep their YAML type: 1970 becomes an integer literal, "1970" a
// string literal and null the SQL NULL. A ref names a column instead of a
// value, which is how join conditions are written:
//
//	where:
//	  - {col: book.author_id, op: "=", ref: author.id}
//
// Names are validated as plain, optionally dotted, identifiers before they
// reach the builders. Values never need escaping in the document; quoting is
// applied when the statement is rendered.
//
// Several documents may share one file, separated by "---".
package document
