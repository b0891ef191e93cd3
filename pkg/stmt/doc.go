// Package stmt provides the SELECT, INSERT, UPDATE and DELETE statement
// builders.
//
// Builders are plain values. Every method takes its receiver by value and
// returns a new statement, so a partially built query can be stored and
// extended along several paths without the branches observing each other:
//
//	base := stmt.Select(query.Fields("id", "name")...).From(query.Table("book"))
//	recent := base.Filter(query.Ge(query.Col("year"), query.Int(1970)))
//	all := base.OrderBy(query.Desc(query.Col("id")))
//
// Repeated calls combine according to the clause they target (see package
// clause): list clauses append, WHERE and HAVING are AND-merged and target
// clauses are replaced.
//
// Each statement kind renders its clauses in a fixed order:
//
//	SELECT  WITH, SELECT, FROM, WHERE, GROUP BY, HAVING, ORDER BY
//	INSERT  WITH, INSERT INTO, VALUES, RETURNING
//	UPDATE  WITH, UPDATE, SET, FROM, WHERE, RETURNING
//	DELETE  WITH, DELETE FROM, WHERE, RETURNING
//
// LIMIT and OFFSET are not part of SelectStmt. Calling Limit, Offset or
// Pagination wraps the statement in a Result, which renders the statement
// followed by LIMIT and then OFFSET and allows nothing else to change.
//
// Completed statements share no mutable state and may be rendered from any
// number of goroutines.
package stmt
