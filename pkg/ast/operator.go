package ast

import "fmt"

// Precedence is the binding power of an expression's top-level operator.
// Higher values bind tighter.
type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceOr
	PrecedenceAnd
	PrecedenceNot
	PrecedenceIs
	PrecedenceComparison
	PrecedencePattern
	PrecedenceOther
	PrecedenceAdditive
	PrecedenceMultiplicative
	PrecedenceExponent
	PrecedenceSign
	PrecedencePrimary
)

type (
	// Assoc is the associativity of an operator.
	Assoc int

	// Fixity describes where an operator sits relative to its operands.
	Fixity int

	// Operator identifies a unary or binary SQL operator.
	//
	// Operators are keys into a static table holding their text, precedence,
	// associativity and fixity. The table is the single source of truth for
	// parenthesization; an operator missing from it is a programming error and
	// makes rendering panic.
	Operator int

	operatorInfo struct {
		text   string
		prec   Precedence
		assoc  Assoc
		fixity Fixity
	}
)

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

const (
	Infix Fixity = iota
	Prefix
	Postfix
)

const (
	OpOr Operator = iota + 1
	OpAnd
	OpNot

	OpIsNull
	OpIsNotNull
	OpIsTrue
	OpIsNotTrue
	OpIsFalse
	OpIsNotFalse
	OpIsUnknown
	OpIsNotUnknown
	OpIsDistinctFrom
	OpIsNotDistinctFrom

	OpEq
	OpNotEq
	OpLt
	OpLte
	OpGt
	OpGte

	OpLike
	OpNotLike
	OpILike
	OpNotILike
	OpIn
	OpNotIn

	OpConcat

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow

	OpNeg
	OpPos

	OpExists
)

var operators = map[Operator]operatorInfo{
	OpOr:  {"OR", PrecedenceOr, AssocLeft, Infix},
	OpAnd: {"AND", PrecedenceAnd, AssocLeft, Infix},
	OpNot: {"NOT", PrecedenceNot, AssocRight, Prefix},

	OpIsNull:            {"IS NULL", PrecedenceIs, AssocNone, Postfix},
	OpIsNotNull:         {"IS NOT NULL", PrecedenceIs, AssocNone, Postfix},
	OpIsTrue:            {"IS TRUE", PrecedenceIs, AssocNone, Postfix},
	OpIsNotTrue:         {"IS NOT TRUE", PrecedenceIs, AssocNone, Postfix},
	OpIsFalse:           {"IS FALSE", PrecedenceIs, AssocNone, Postfix},
	OpIsNotFalse:        {"IS NOT FALSE", PrecedenceIs, AssocNone, Postfix},
	OpIsUnknown:         {"IS UNKNOWN", PrecedenceIs, AssocNone, Postfix},
	OpIsNotUnknown:      {"IS NOT UNKNOWN", PrecedenceIs, AssocNone, Postfix},
	OpIsDistinctFrom:    {"IS DISTINCT FROM", PrecedenceIs, AssocNone, Infix},
	OpIsNotDistinctFrom: {"IS NOT DISTINCT FROM", PrecedenceIs, AssocNone, Infix},

	OpEq:    {"=", PrecedenceComparison, AssocNone, Infix},
	OpNotEq: {"<>", PrecedenceComparison, AssocNone, Infix},
	OpLt:    {"<", PrecedenceComparison, AssocNone, Infix},
	OpLte:   {"<=", PrecedenceComparison, AssocNone, Infix},
	OpGt:    {">", PrecedenceComparison, AssocNone, Infix},
	OpGte:   {">=", PrecedenceComparison, AssocNone, Infix},

	OpLike:     {"LIKE", PrecedencePattern, AssocNone, Infix},
	OpNotLike:  {"NOT LIKE", PrecedencePattern, AssocNone, Infix},
	OpILike:    {"ILIKE", PrecedencePattern, AssocNone, Infix},
	OpNotILike: {"NOT ILIKE", PrecedencePattern, AssocNone, Infix},
	OpIn:       {"IN", PrecedencePattern, AssocNone, Infix},
	OpNotIn:    {"NOT IN", PrecedencePattern, AssocNone, Infix},

	OpConcat: {"||", PrecedenceOther, AssocLeft, Infix},

	OpAdd: {"+", PrecedenceAdditive, AssocLeft, Infix},
	OpSub: {"-", PrecedenceAdditive, AssocLeft, Infix},
	OpMul: {"*", PrecedenceMultiplicative, AssocLeft, Infix},
	OpDiv: {"/", PrecedenceMultiplicative, AssocLeft, Infix},
	OpMod: {"%", PrecedenceMultiplicative, AssocLeft, Infix},
	OpPow: {"^", PrecedenceExponent, AssocLeft, Infix},

	OpNeg: {"-", PrecedenceSign, AssocRight, Prefix},
	OpPos: {"+", PrecedenceSign, AssocRight, Prefix},

	// EXISTS only ever applies to a parenthesized subquery, so it binds like a
	// primary expression.
	OpExists: {"EXISTS", PrecedencePrimary, AssocRight, Prefix},
}

func (op Operator) info() operatorInfo {
	info, ok := operators[op]
	if !ok {
		panic(fmt.Sprintf("ast: operator %d has no precedence table entry", int(op)))
	}
	return info
}

// String returns the operator's SQL text.
func (op Operator) String() string { return op.info().text }

// Precedence returns the operator's binding power.
func (op Operator) Precedence() Precedence { return op.info().prec }

// Assoc returns the operator's associativity.
func (op Operator) Assoc() Assoc { return op.info().assoc }

// Fixity reports whether the operator is infix, prefix or postfix.
func (op Operator) Fixity() Fixity { return op.info().fixity }

// operandPrecedence returns the minimum precedence an operand in the given
// position must have to be rendered without parentheses.
//
// For an operator of precedence p:
//   - left-assoc infix: left >= p, right >= p+1
//   - right-assoc infix: left >= p+1, right >= p
//   - non-assoc infix: both >= p+1
//   - prefix: operand >= p
//   - postfix: operand >= p+1
func (op Operator) operandPrecedence(right bool) Precedence {
	info := op.info()
	switch info.fixity {
	case Prefix:
		return info.prec
	case Postfix:
		return info.prec + 1
	}

	switch info.assoc {
	case AssocLeft:
		if right {
			return info.prec + 1
		}
		return info.prec
	case AssocRight:
		if right {
			return info.prec
		}
		return info.prec + 1
	default:
		return info.prec + 1
	}
}

// symbolic reports whether the operator text is punctuation rather than a
// keyword, i.e. whether it is written without a trailing space.
func (op Operator) symbolic() bool {
	switch op {
	case OpNeg, OpPos:
		return true
	default:
		return false
	}
}
