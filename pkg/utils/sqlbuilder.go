package utils

import (
	"fmt"
	"strings"
)

// SQLBuilder collects the rendered clauses of a statement in emission order.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Raw("DELETE FROM book").
//		Optional(where != nil, where).
//		String()
//	// Output: DELETE FROM book WHERE id = 1
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 8),
	}
}

// Clause appends the rendered form of c.
func (b *SQLBuilder) Clause(c fmt.Stringer) *SQLBuilder {
	b.parts = append(b.parts, c.String())
	return b
}

// Optional appends the rendered form of c when present is true. c is not
// touched otherwise, so a typed nil pointer is safe to pass.
//
// Example:
//
//	builder.Optional(s.from != nil, s.from)
func (b *SQLBuilder) Optional(present bool, c fmt.Stringer) *SQLBuilder {
	if present {
		b.parts = append(b.parts, c.String())
	}
	return b
}

// Raw appends already rendered SQL.
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// Extend appends every part of another clause list.
func (b *SQLBuilder) Extend(parts []string) *SQLBuilder {
	for _, p := range parts {
		b.Raw(p)
	}
	return b
}

// Parts returns a copy of the collected clauses.
func (b *SQLBuilder) Parts() []string {
	out := make([]string, len(b.parts))
	copy(out, b.parts)
	return out
}

// String joins the collected clauses with single spaces.
func (b *SQLBuilder) String() string {
	return strings.Join(b.parts, " ")
}
