// Package format writes rendered SQL statements to an io.Writer.
//
// Statements are emitted clause by clause, either joined by single spaces on
// one line or with every clause on its own line. Each statement may be
// terminated with a semicolon and consecutive statements are separated by a
// blank line.
//
// Key features:
//   - Single line or one clause per line output
//   - Optional statement terminators
//   - Works with any statement exposing its clauses, including stmt.Result
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		Multiline: true,
//		Terminate: true,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, statements...)
package format
