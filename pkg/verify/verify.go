package verify

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/ast"
)

var (
	// ErrUnsupported is returned by Roundtrip for expressions the grammar
	// cannot read back, such as those containing subqueries or names that
	// collide with its keywords.
	ErrUnsupported = errors.New("expression cannot be verified")

	keywords = []string{
		"AND", "OR", "NOT", "IS", "NULL", "TRUE", "FALSE", "UNKNOWN",
		"DISTINCT", "FROM", "LIKE", "ILIKE", "IN", "BETWEEN", "EXISTS",
	}

	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Keyword", Pattern: `(?i)\b(?:` + strings.Join(keywords, "|") + `)\b`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Number", Pattern: `\d+(\.\d+)?`},
		{Name: "String", Pattern: `'(?:[^']|'')*'`},
		{Name: "Operator", Pattern: `<>|!=|<=|>=|\|\||[-+*/%^<>=(),.]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	exprParser = participle.MustBuild[orExpr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
		participle.CaseInsensitive("Keyword"),
		participle.UseLookahead(4),
	)
)

// MismatchError reports a rendered expression that reads back with a
// different structure than the tree it was rendered from.
type MismatchError struct {
	Rendered string
	Want     string
	Got      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("rendered %q parses as %s, want %s", e.Rendered, e.Got, e.Want)
}

// Expr parses a rendered SQL expression and returns its fully parenthesized
// form, in the same shape ast.Grouped produces.
//
// Example:
//
//	verify.Expr("a = 1 AND b = 2 OR c = 3")
//	// (((a = 1) AND (b = 2)) OR (c = 3))
func Expr(text string) (string, error) {
	tree, err := exprParser.ParseString("", text)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse expression %q", text)
	}

	return tree.grouped(), nil
}

// Roundtrip renders e, parses the result, and checks that the parse has the
// same grouping as e itself. Expressions containing subqueries, or column,
// table or function names spelled like a keyword, are reported as
// ErrUnsupported.
func Roundtrip(e ast.Expr) error {
	if e == nil {
		return nil
	}

	var reason string
	ast.Walk(e, func(n ast.Expr) bool {
		switch n := n.(type) {
		case ast.Subquery:
			reason = "contains a subquery"
		case ast.Column:
			reason = reservedName(string(n.Ref.Table), string(n.Ref.Name))
		case ast.Star:
			reason = reservedName(string(n.Table))
		case ast.Call:
			reason = reservedName(n.Name)
		}
		return reason == ""
	})

	if reason != "" {
		return errors.Wrapf(ErrUnsupported, "%s %s", ast.Render(e), reason)
	}

	rendered := ast.Render(e)
	got, err := Expr(rendered)
	if err != nil {
		return err
	}

	if want := ast.Grouped(e); got != want {
		return &MismatchError{Rendered: rendered, Want: want, Got: got}
	}

	return nil
}

func reservedName(names ...string) string {
	for _, name := range names {
		for _, kw := range keywords {
			if strings.EqualFold(name, kw) {
				return fmt.Sprintf("uses keyword %s as a name", kw)
			}
		}
	}
	return ""
}
