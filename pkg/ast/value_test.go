package ast_test

import (
	"math"
	"testing"

	. "github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"zero value", Value{}, "NULL"},
		{"null", Null(), "NULL"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-3), "-3"},
		{"min int", Int(math.MinInt64), "-9223372036854775808"},
		{"uint", Uint(math.MaxUint64), "18446744073709551615"},
		{"float", Float(1.5), "1.5"},
		{"float shortest form", Float(0.1), "0.1"},
		{"large float has no exponent", Float(1e21), "1000000000000000000000"},
		{"negative zero", Float(math.Copysign(0, -1)), "-0"},
		{"nan", Float(math.NaN()), "'NaN'"},
		{"positive infinity", Float(math.Inf(1)), "'Infinity'"},
		{"negative infinity", Float(math.Inf(-1)), "'-Infinity'"},
		{"text", Text("hello"), "'hello'"},
		{"empty text", Text(""), "''"},
		{"embedded quote", Text("O'Brien"), "'O''Brien'"},
		{"only quotes", Text("''"), "''''''"},
		{"backslash kept verbatim", Text(`a\b`), `'a\b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValue_Kind(t *testing.T) {
	require.Equal(t, KindNull, Null().Kind())
	require.True(t, Null().IsNull())
	require.False(t, Int(0).IsNull())
	require.Equal(t, KindText, Text("x").Kind())
	require.Equal(t, KindUint, Uint(1).Kind())

	require.Equal(t, Int(7), Int(7))
	require.NotEqual(t, Int(7), Uint(7))
}

func TestIdent_References(t *testing.T) {
	require.Equal(t, "id", ColumnRef{Name: "id"}.String())
	require.Equal(t, "book.id", ColumnRef{Table: "book", Name: "id"}.String())
	require.False(t, ColumnRef{Name: "id"}.Qualified())
	require.True(t, ColumnRef{Table: "book", Name: "id"}.Qualified())

	require.Equal(t, "data", TableRef{Name: "data"}.String())
	require.Equal(t, "public.data", TableRef{Schema: "public", Name: "data"}.String())
	require.True(t, TableRef{Schema: "public", Name: "data"}.Qualified())
}
