package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

type (
	// Statement is a statement that can report its rendered clauses in
	// emission order. Every builder in package stmt satisfies it.
	Statement interface {
		ast.Statement
		Clauses() []string
	}

	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// Multiline places every clause on its own line
		Multiline bool
		// IndentSize indents continuation clauses in multiline output
		IndentSize int
		// Terminate appends a semicolon to every statement
		Terminate bool
	}

	// Formatter handles SQL statement formatting with configurable options
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults renders each statement on a single line with a trailing semicolon.
var Defaults = FormatterOptions{
	Multiline:  false,
	IndentSize: 0,
	Terminate:  true,
}

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	if options.IndentSize < 0 {
		options.IndentSize = 0
	}
	return &Formatter{options: options}
}

// Format writes stmts to w using the given options. Nil statements are
// skipped.
func Format(w io.Writer, options FormatterOptions, stmts ...Statement) error {
	return New(options).Format(w, stmts...)
}

// Format writes stmts to w separated by blank lines.
func (f *Formatter) Format(w io.Writer, stmts ...Statement) error {
	first := true
	for _, s := range stmts {
		if s == nil {
			continue
		}

		if !first {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return errors.Wrap(err, "failed to write statement separator")
			}
		}
		first = false

		if _, err := io.WriteString(w, f.Statement(s)); err != nil {
			return errors.Wrapf(err, "failed to write %s statement", s.Kind())
		}
	}

	return nil
}

// Statement formats a single statement.
func (f *Formatter) Statement(s Statement) string {
	if s == nil {
		return ""
	}

	sep := " "
	if f.options.Multiline {
		sep = "\n" + strings.Repeat(" ", f.options.IndentSize)
	}

	sql := strings.Join(s.Clauses(), sep)
	if f.options.Terminate {
		sql += ";"
	}
	return sql
}

// String formats a single statement with the given options (convenience
// function)
func String(options FormatterOptions, s Statement) string {
	return New(options).Statement(s)
}
