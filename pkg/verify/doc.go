// Package verify reads rendered SQL expressions back and checks their
// structure.
//
// The package carries a small participle grammar covering the expression
// forms package ast can produce: boolean connectives, IS predicates,
// comparisons, LIKE, IN, BETWEEN, arithmetic, concatenation, calls, tuples
// and literals. Parsing a rendered expression yields the same fully grouped
// string that ast.Grouped builds from the tree, so a renderer that drops a
// required pair of parentheses shows up as a mismatch.
//
// Basic usage:
//
//	cond := query.Or(query.And(query.Eq(query.Col("a"), query.Int(1)), query.Col("b")), query.Col("c"))
//	if err := verify.Roundtrip(cond); err != nil {
//		var mismatch *verify.MismatchError
//		if errors.As(err, &mismatch) {
//			log.Fatalf("%s reads back as %s", mismatch.Rendered, mismatch.Got)
//		}
//	}
//
// Subqueries are outside the grammar. Roundtrip reports them with
// ErrUnsupported rather than guessing.
package verify
