package ast

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind int

const (
	// KindNull is the SQL NULL constant
	KindNull ValueKind = iota
	// KindBool is a boolean constant
	KindBool
	// KindInt is a signed integer constant
	KindInt
	// KindUint is an unsigned integer constant
	KindUint
	// KindFloat is a floating point constant
	KindFloat
	// KindText is a string constant
	KindText
)

// Value is a scalar SQL constant. The zero Value is NULL.
//
// Values are comparable, so two values holding the same constant are equal
// with ==.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
}

// Null returns the NULL constant.
func Null() Value { return Value{} }

// Bool returns a boolean constant.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int returns a signed integer constant.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Uint returns an unsigned integer constant.
func Uint(v uint64) Value { return Value{kind: KindUint, u: v} }

// Float returns a floating point constant.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Text returns a string constant.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is the NULL constant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the SQL encoding of the value.
//
// Examples:
//   - Bool(true)      -> true
//   - Null()          -> NULL
//   - Int(-3)         -> -3
//   - Float(1.5)      -> 1.5
//   - Text("O'Brien") -> 'O''Brien'
//
// Non-finite floats have no numeric literal form and are emitted as the quoted
// text PostgreSQL accepts for them ('NaN', 'Infinity', '-Infinity').
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			return quote("NaN")
		case math.IsInf(v.f, 1):
			return quote("Infinity")
		case math.IsInf(v.f, -1):
			return quote("-Infinity")
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return quote(v.s)
	default:
		panic("ast: unknown value kind " + strconv.Itoa(int(v.kind)))
	}
}

// negative reports whether the rendered value starts with a minus sign.
func (v Value) negative() bool {
	switch v.kind {
	case KindInt:
		return v.i < 0
	case KindFloat:
		return v.f < 0 || math.Signbit(v.f) && v.f == 0
	default:
		return false
	}
}

// numeric reports whether the value renders as a bare number.
func (v Value) numeric() bool {
	switch v.kind {
	case KindInt, KindUint:
		return true
	case KindFloat:
		return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
	default:
		return false
	}
}

// quote wraps s in single quotes, doubling any embedded single quote.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
