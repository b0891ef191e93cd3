// Package ast defines the value model behind every statement built with sqlkit.
//
// The package covers three layers:
//   - Literal values (Value) with a deterministic, quote-escaped SQL encoding
//   - Identifiers and references (Ident, ColumnRef, TableRef) rendered verbatim
//   - Expressions (Expr) and the items that clauses are made of (Field, Table, Order, Row, Cte)
//
// Expressions are immutable trees. Rendering walks the tree once and consults a
// static precedence table to decide where parentheses are required, so a tree
// built as
//
//	Binary{Op: OpOr, Left: Binary{Op: OpAnd, ...}, Right: ...}
//
// renders as
//
//	(a = 1 AND b = 2) OR c = 3
//
// Precedence levels (lowest to highest):
//  1. OR
//  2. AND
//  3. NOT
//  4. IS (IS NULL, IS TRUE, IS DISTINCT FROM, ...)
//  5. Comparison (=, <>, <, >, <=, >=)
//  6. Pattern (LIKE, ILIKE, IN, BETWEEN)
//  7. Other (||)
//  8. Addition/Subtraction (+, -)
//  9. Multiplication/Division/Modulo (*, /, %)
//  10. Exponent (^)
//  11. Sign (unary +, -)
//  12. Primary (literals, columns, function calls, tuples, subqueries)
//
// Literal text is embedded directly in the output. Quote doubling keeps the
// literal syntactically closed, but it is not an injection defense: values are
// never sent as bound parameters.
package ast
