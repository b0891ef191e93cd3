package document

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/query"
	"github.com/pseudomuto/sqlkit/pkg/utils"
	"gopkg.in/yaml.v3"
)

var aggregates = map[string]func(ast.Expr) ast.Expr{
	"count": query.Count,
	"max":   query.Max,
	"min":   query.Min,
	"avg":   query.Avg,
	"sum":   query.Sum,
}

// value converts a YAML scalar to a literal, keeping its resolved type.
func value(n *yaml.Node) (ast.Expr, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return value(n.Alias)
	case yaml.ScalarNode:
	case 0:
		return nil, errors.New("missing value")
	default:
		return nil, errors.Errorf("line %d: expected a scalar value", n.Line)
	}

	switch n.ShortTag() {
	case "!!null":
		return query.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "line %d: failed to decode bool", n.Line)
		}
		return query.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return query.Int(i), nil
		}

		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, errors.Wrapf(err, "line %d: failed to decode integer", n.Line)
		}
		return query.Uint(u), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "line %d: failed to decode float", n.Line)
		}
		return query.Float(f), nil
	default:
		return query.Text(n.Value), nil
	}
}

// values converts a sequence, or a lone scalar, to a list of literals.
func values(n *yaml.Node) ([]ast.Expr, error) {
	if n.Kind == yaml.AliasNode {
		return values(n.Alias)
	}

	if n.Kind != yaml.SequenceNode {
		v, err := value(n)
		if err != nil {
			return nil, err
		}
		return []ast.Expr{v}, nil
	}

	out := make([]ast.Expr, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := value(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func column(name string) (ast.Expr, error) {
	if !utils.IsQualifiedIdentifier(name) {
		return nil, errors.Errorf("invalid column name %q", name)
	}

	table, col := utils.SplitQualified(name)
	if table == "" {
		return query.Col(col), nil
	}
	return query.TCol(table, col), nil
}

func table(name, alias string) (ast.Table, error) {
	t, err := target(name, alias)
	if err != nil {
		return ast.Table{}, err
	}
	return ast.Table{Expr: t.Ref, Alias: t.Alias}, nil
}

func target(name, alias string) (ast.Target, error) {
	ref, err := tableRef(name)
	if err != nil {
		return ast.Target{}, err
	}

	if alias != "" && !utils.IsIdentifier(alias) {
		return ast.Target{}, errors.Errorf("invalid table alias %q", alias)
	}

	return ast.Target{Ref: ref, Alias: ast.Ident(alias)}, nil
}

func tableRef(name string) (ast.TableRef, error) {
	if !utils.IsQualifiedIdentifier(name) {
		return ast.TableRef{}, errors.Errorf("invalid table name %q", name)
	}

	schema, tbl := utils.SplitQualified(name)
	if schema == "" {
		return query.TableRef(tbl), nil
	}
	return query.SchemaTableRef(schema, tbl), nil
}

func idents(names []string) ([]ast.Ident, error) {
	out := make([]ast.Ident, len(names))
	for i, name := range names {
		if !utils.IsIdentifier(name) {
			return nil, errors.Errorf("invalid column name %q", name)
		}
		out[i] = ast.Ident(name)
	}
	return out, nil
}

// field parses one projection entry:
//
//	id | book.title | * | book.* | COUNT(*) | max(age) AS oldest
func field(text string) (ast.Field, error) {
	parts := strings.Fields(text)
	var alias string
	switch {
	case len(parts) == 3 && strings.EqualFold(parts[1], "as"):
		alias = parts[2]
		if !utils.IsIdentifier(alias) {
			return ast.Field{}, errors.Errorf("invalid field alias %q", alias)
		}
	case len(parts) != 1:
		return ast.Field{}, errors.Errorf("invalid field %q", text)
	}

	e, err := projection(parts[0])
	if err != nil {
		return ast.Field{}, err
	}
	return query.As(e, alias), nil
}

func projection(text string) (ast.Expr, error) {
	if text == "*" {
		return query.Star(), nil
	}

	if tbl, ok := strings.CutSuffix(text, ".*"); ok {
		if !utils.IsQualifiedIdentifier(tbl) {
			return nil, errors.Errorf("invalid table name %q", tbl)
		}
		return query.TStar(tbl), nil
	}

	name, rest, ok := strings.Cut(text, "(")
	if !ok {
		return column(text)
	}

	arg, ok := strings.CutSuffix(rest, ")")
	if !ok || !utils.IsIdentifier(name) {
		return nil, errors.Errorf("invalid field %q", text)
	}

	var e ast.Expr
	if arg == "*" {
		e = query.Star()
	} else {
		var err error
		if e, err = column(arg); err != nil {
			return nil, err
		}
	}

	if agg, ok := aggregates[strings.ToLower(name)]; ok {
		return agg(e), nil
	}
	return query.Func(name, e), nil
}
