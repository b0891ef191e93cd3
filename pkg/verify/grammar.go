package verify

import (
	"strings"
)

// The grammar mirrors the precedence table of package ast, one level per
// struct, lowest first. Every node knows how to print itself in the fully
// grouped form produced by ast.Grouped.
type (
	orExpr struct {
		Left *andExpr   `parser:"@@"`
		Rest []*andExpr `parser:"( 'OR' @@ )*"`
	}

	andExpr struct {
		Left *notExpr   `parser:"@@"`
		Rest []*notExpr `parser:"( 'AND' @@ )*"`
	}

	notExpr struct {
		Not *notExpr `parser:"  'NOT' @@"`
		Is  *isExpr  `parser:"| @@"`
	}

	isExpr struct {
		Left *cmpExpr `parser:"@@"`
		Tail *isTail  `parser:"@@?"`
	}

	isTail struct {
		Not  bool    `parser:"'IS' @'NOT'?"`
		Kind *isKind `parser:"@@"`
	}

	isKind struct {
		Null     bool     `parser:"  @'NULL'"`
		True     bool     `parser:"| @'TRUE'"`
		False    bool     `parser:"| @'FALSE'"`
		Unknown  bool     `parser:"| @'UNKNOWN'"`
		Distinct *cmpExpr `parser:"| 'DISTINCT' 'FROM' @@"`
	}

	cmpExpr struct {
		Left *patExpr `parser:"@@"`
		Tail *cmpTail `parser:"@@?"`
	}

	cmpTail struct {
		Op    string   `parser:"@( '=' | '<>' | '!=' | '<=' | '>=' | '<' | '>' )"`
		Right *patExpr `parser:"@@"`
	}

	patExpr struct {
		Left *otherExpr `parser:"@@"`
		Tail *patTail   `parser:"@@?"`
	}

	patTail struct {
		Not bool   `parser:"@'NOT'?"`
		Op  *patOp `parser:"@@"`
	}

	patOp struct {
		Like    *otherExpr   `parser:"  'LIKE' @@"`
		ILike   *otherExpr   `parser:"| 'ILIKE' @@"`
		In      []*orExpr    `parser:"| 'IN' '(' @@ ( ',' @@ )* ')'"`
		Between *betweenTail `parser:"| 'BETWEEN' @@"`
	}

	betweenTail struct {
		Low  *otherExpr `parser:"@@"`
		High *otherExpr `parser:"'AND' @@"`
	}

	otherExpr struct {
		Left *addExpr   `parser:"@@"`
		Rest []*addExpr `parser:"( '||' @@ )*"`
	}

	addExpr struct {
		Left *mulExpr   `parser:"@@"`
		Rest []*addRest `parser:"@@*"`
	}

	addRest struct {
		Op    string   `parser:"@( '+' | '-' )"`
		Right *mulExpr `parser:"@@"`
	}

	mulExpr struct {
		Left *expExpr   `parser:"@@"`
		Rest []*mulRest `parser:"@@*"`
	}

	mulRest struct {
		Op    string   `parser:"@( '*' | '/' | '%' )"`
		Right *expExpr `parser:"@@"`
	}

	expExpr struct {
		Left *unaryExpr   `parser:"@@"`
		Rest []*unaryExpr `parser:"( '^' @@ )*"`
	}

	unaryExpr struct {
		Signed  *signedExpr `parser:"  @@"`
		Primary *primary    `parser:"| @@"`
	}

	signedExpr struct {
		Op      string     `parser:"@( '-' | '+' )"`
		Operand *unaryExpr `parser:"@@"`
	}

	primary struct {
		Call   *call     `parser:"  @@"`
		Column *column   `parser:"| @@"`
		Number *string   `parser:"| @Number"`
		String *string   `parser:"| @String"`
		Bool   *string   `parser:"| @( 'TRUE' | 'FALSE' )"`
		Null   bool      `parser:"| @'NULL'"`
		Star   bool      `parser:"| @'*'"`
		Group  []*orExpr `parser:"| '(' @@ ( ',' @@ )* ')'"`
	}

	call struct {
		Name string    `parser:"@Ident"`
		Args []*orExpr `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	}

	column struct {
		Parts []string `parser:"@Ident ( '.' @( Ident | '*' ) )*"`
	}
)

func (e *orExpr) grouped() string {
	out := e.Left.grouped()
	for _, r := range e.Rest {
		out = "(" + out + " OR " + r.grouped() + ")"
	}
	return out
}

func (e *andExpr) grouped() string {
	out := e.Left.grouped()
	for _, r := range e.Rest {
		out = "(" + out + " AND " + r.grouped() + ")"
	}
	return out
}

func (e *notExpr) grouped() string {
	if e.Not != nil {
		return "(NOT " + e.Not.grouped() + ")"
	}
	return e.Is.grouped()
}

func (e *isExpr) grouped() string {
	left := e.Left.grouped()
	if e.Tail == nil {
		return left
	}

	op := "IS "
	if e.Tail.Not {
		op += "NOT "
	}

	k := e.Tail.Kind
	switch {
	case k.Distinct != nil:
		return "(" + left + " " + op + "DISTINCT FROM " + k.Distinct.grouped() + ")"
	case k.True:
		op += "TRUE"
	case k.False:
		op += "FALSE"
	case k.Unknown:
		op += "UNKNOWN"
	default:
		op += "NULL"
	}
	return "(" + left + " " + op + ")"
}

func (e *cmpExpr) grouped() string {
	left := e.Left.grouped()
	if e.Tail == nil {
		return left
	}

	op := e.Tail.Op
	if op == "!=" {
		op = "<>"
	}
	return "(" + left + " " + op + " " + e.Tail.Right.grouped() + ")"
}

func (e *patExpr) grouped() string {
	left := e.Left.grouped()
	if e.Tail == nil {
		return left
	}

	not := ""
	if e.Tail.Not {
		not = "NOT "
	}

	op := e.Tail.Op
	switch {
	case op.Like != nil:
		return "(" + left + " " + not + "LIKE " + op.Like.grouped() + ")"
	case op.ILike != nil:
		return "(" + left + " " + not + "ILIKE " + op.ILike.grouped() + ")"
	case op.Between != nil:
		return "(" + left + " " + not + "BETWEEN " + op.Between.Low.grouped() + " AND " + op.Between.High.grouped() + ")"
	default:
		return "(" + left + " " + not + "IN (" + joinGrouped(op.In) + "))"
	}
}

func (e *otherExpr) grouped() string {
	out := e.Left.grouped()
	for _, r := range e.Rest {
		out = "(" + out + " || " + r.grouped() + ")"
	}
	return out
}

func (e *addExpr) grouped() string {
	out := e.Left.grouped()
	for _, r := range e.Rest {
		out = "(" + out + " " + r.Op + " " + r.Right.grouped() + ")"
	}
	return out
}

func (e *mulExpr) grouped() string {
	out := e.Left.grouped()
	for _, r := range e.Rest {
		out = "(" + out + " " + r.Op + " " + r.Right.grouped() + ")"
	}
	return out
}

func (e *expExpr) grouped() string {
	out := e.Left.grouped()
	for _, r := range e.Rest {
		out = "(" + out + " ^ " + r.grouped() + ")"
	}
	return out
}

func (e *unaryExpr) grouped() string {
	if e.Primary != nil {
		return e.Primary.grouped()
	}

	s := e.Signed
	// A minus directly on a number is read as a negative literal.
	if s.Op == "-" && s.Operand.Primary != nil && s.Operand.Primary.Number != nil {
		return "-" + *s.Operand.Primary.Number
	}
	return "(" + s.Op + " " + s.Operand.grouped() + ")"
}

func (p *primary) grouped() string {
	switch {
	case p.Call != nil:
		return p.Call.Name + "(" + joinGrouped(p.Call.Args) + ")"
	case p.Column != nil:
		return strings.Join(p.Column.Parts, ".")
	case p.Number != nil:
		return *p.Number
	case p.String != nil:
		return *p.String
	case p.Bool != nil:
		return strings.ToUpper(*p.Bool)
	case p.Null:
		return "NULL"
	case p.Star:
		return "*"
	case len(p.Group) == 1:
		return p.Group[0].grouped()
	default:
		return "(" + joinGrouped(p.Group) + ")"
	}
}

func joinGrouped(exprs []*orExpr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.grouped()
	}
	return strings.Join(parts, ", ")
}
