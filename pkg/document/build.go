package document

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/clause"
	"github.com/pseudomuto/sqlkit/pkg/format"
	"github.com/pseudomuto/sqlkit/pkg/query"
	"github.com/pseudomuto/sqlkit/pkg/stmt"
	"gopkg.in/yaml.v3"
)

// Statement builds the statement the document describes.
func (d *Document) Statement() (format.Statement, error) {
	var (
		s   format.Statement
		err error
	)

	switch strings.ToLower(d.Kind) {
	case "", "select":
		s, err = d.selectStmt()
	case "insert":
		s, err = d.insertStmt()
	case "update":
		s, err = d.updateStmt()
	case "delete":
		s, err = d.deleteStmt()
	default:
		err = errors.Errorf("unknown statement kind %q", d.Kind)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to build query document %q", d.Name)
	}
	return s, nil
}

// Predicates returns the WHERE and HAVING conditions of the document, in
// order.
func (d *Document) Predicates() ([]ast.Expr, error) {
	var out []ast.Expr
	for _, c := range append(append([]Condition{}, d.Where...), d.Having...) {
		e, err := c.Expr()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build query document %q", d.Name)
		}
		out = append(out, e)
	}
	return out, nil
}

// Expr builds the condition. An Any group becomes the OR of its members.
func (c Condition) Expr() (ast.Expr, error) {
	if len(c.Any) > 0 {
		exprs := make([]ast.Expr, len(c.Any))
		for i, sub := range c.Any {
			e, err := sub.Expr()
			if err != nil {
				return nil, err
			}
			exprs[i] = e
		}
		return query.Or(exprs...), nil
	}

	col, err := column(c.Col)
	if err != nil {
		return nil, err
	}

	op := strings.Join(strings.Fields(strings.ToLower(c.Op)), " ")
	if pred, ok := predicates[op]; ok {
		return pred(col), nil
	}

	switch op {
	case "in", "not in":
		items, err := values(&c.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "condition on %s", c.Col)
		}
		if len(items) == 0 {
			return nil, errors.Errorf("condition on %s: %s takes at least one value", c.Col, op)
		}
		if op == "in" {
			return query.In(col, items...), nil
		}
		return query.NotIn(col, items...), nil
	case "between", "not between":
		bounds, err := values(&c.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "condition on %s", c.Col)
		}
		if len(bounds) != 2 {
			return nil, errors.Errorf("condition on %s: %s takes exactly two values", c.Col, op)
		}
		if op == "between" {
			return query.Between(col, bounds[0], bounds[1]), nil
		}
		return query.NotBetween(col, bounds[0], bounds[1]), nil
	}

	cmp, ok := comparisons[op]
	if !ok {
		return nil, errors.Errorf("condition on %s: unsupported operator %q", c.Col, c.Op)
	}

	rhs, err := operand(c.Value, c.Ref)
	if err != nil {
		return nil, errors.Wrapf(err, "condition on %s", c.Col)
	}

	return cmp(col, rhs), nil
}

var (
	predicates = map[string]func(ast.Expr) ast.Expr{
		"is null":        query.IsNull,
		"is not null":    query.IsNotNull,
		"is true":        query.IsTrue,
		"is not true":    query.IsNotTrue,
		"is false":       query.IsFalse,
		"is not false":   query.IsNotFalse,
		"is unknown":     query.IsUnknown,
		"is not unknown": query.IsNotUnknown,
	}

	comparisons = map[string]func(ast.Expr, ast.Expr) ast.Expr{
		"=":                    query.Eq,
		"<>":                   query.Ne,
		"!=":                   query.Ne,
		"<":                    query.Lt,
		"<=":                   query.Le,
		">":                    query.Gt,
		">=":                   query.Ge,
		"like":                 query.Like,
		"not like":             query.NotLike,
		"ilike":                query.ILike,
		"not ilike":            query.NotILike,
		"is distinct from":     query.IsDistinctFrom,
		"is not distinct from": query.IsNotDistinctFrom,
	}
)

// operand resolves the right hand side of a comparison or assignment.
func operand(v yaml.Node, ref string) (ast.Expr, error) {
	switch {
	case ref != "" && v.Kind != 0:
		return nil, errors.New("value and ref are mutually exclusive")
	case ref != "":
		return column(ref)
	default:
		return value(&v)
	}
}

func (d *Document) selectStmt() (format.Statement, error) {
	if len(d.Columns) > 0 || len(d.Values) > 0 || len(d.Set) > 0 || len(d.Returning) > 0 {
		return nil, errors.New("select documents only support fields, from, where, group_by, having, order_by, limit and offset")
	}

	fields := make([]ast.Field, len(d.Fields))
	for i, f := range d.Fields {
		var err error
		if fields[i], err = field(f); err != nil {
			return nil, err
		}
	}

	s := stmt.Select(fields...)

	tables, err := d.tables()
	if err != nil {
		return nil, err
	}
	s = s.From(tables...)

	if s, err = filter(s, d.Where); err != nil {
		return nil, err
	}

	for _, name := range d.GroupBy {
		e, err := column(name)
		if err != nil {
			return nil, err
		}
		s = s.GroupBy(e)
	}

	for _, c := range d.Having {
		e, err := c.Expr()
		if err != nil {
			return nil, err
		}
		s = s.Having(e)
	}

	for _, o := range d.OrderBy {
		order, err := o.order()
		if err != nil {
			return nil, err
		}
		s = s.OrderBy(order)
	}

	switch {
	case d.Limit != nil && d.Offset != nil:
		return s.Pagination(*d.Limit, *d.Offset), nil
	case d.Limit != nil:
		return s.Limit(*d.Limit), nil
	case d.Offset != nil:
		return s.Offset(*d.Offset), nil
	default:
		return s, nil
	}
}

func (d *Document) insertStmt() (format.Statement, error) {
	if err := d.mutation(); err != nil {
		return nil, err
	}
	if d.Alias != "" || len(d.From) > 0 || len(d.Where) > 0 || len(d.Set) > 0 {
		return nil, errors.New("insert documents only support table, columns, values and returning")
	}

	ref, err := tableRef(d.Table)
	if err != nil {
		return nil, err
	}

	cols, err := idents(d.Columns)
	if err != nil {
		return nil, err
	}

	s := stmt.Insert(ref, cols...)
	for i, row := range d.Values {
		if len(cols) > 0 && len(row) != len(cols) {
			return nil, errors.Errorf("row %d has %d values for %d columns", i+1, len(row), len(cols))
		}

		items := make([]ast.Expr, len(row))
		for j := range row {
			if items[j], err = value(&row[j]); err != nil {
				return nil, errors.Wrapf(err, "row %d", i+1)
			}
		}
		s = s.Values(query.Row(items...))
	}

	return returning(s, d.Returning)
}

func (d *Document) updateStmt() (format.Statement, error) {
	if err := d.mutation(); err != nil {
		return nil, err
	}
	if len(d.Set) == 0 {
		return nil, errors.New("update documents require at least one set entry")
	}
	if len(d.Columns) > 0 || len(d.Values) > 0 {
		return nil, errors.New("update documents do not support columns or values")
	}

	tgt, err := target(d.Table, d.Alias)
	if err != nil {
		return nil, err
	}

	assignments := make([]clause.Assignment, len(d.Set))
	for i, a := range d.Set {
		cols, err := idents([]string{a.Col})
		if err != nil {
			return nil, err
		}

		v, err := operand(a.Value, a.Ref)
		if err != nil {
			return nil, errors.Wrapf(err, "set %s", a.Col)
		}
		assignments[i] = clause.Assignment{Column: cols[0], Value: v}
	}

	s := stmt.Update(tgt).SetValues(assignments...)
	for _, name := range d.From {
		t, err := table(name, "")
		if err != nil {
			return nil, err
		}
		s = s.From(t)
	}

	if s, err = filter(s, d.Where); err != nil {
		return nil, err
	}

	return returning(s, d.Returning)
}

func (d *Document) deleteStmt() (format.Statement, error) {
	if err := d.mutation(); err != nil {
		return nil, err
	}
	if len(d.From) > 0 || len(d.Columns) > 0 || len(d.Values) > 0 || len(d.Set) > 0 {
		return nil, errors.New("delete documents only support table, alias, where and returning")
	}

	tgt, err := target(d.Table, d.Alias)
	if err != nil {
		return nil, err
	}

	s, err := filter(stmt.Delete(tgt), d.Where)
	if err != nil {
		return nil, err
	}

	return returning(s, d.Returning)
}

// mutation rejects the select-only parts on insert, update and delete.
func (d *Document) mutation() error {
	if d.Table == "" {
		return errors.Errorf("%s documents require a table", strings.ToLower(d.Kind))
	}
	if len(d.Fields) > 0 || len(d.GroupBy) > 0 || len(d.Having) > 0 || len(d.OrderBy) > 0 || d.Limit != nil || d.Offset != nil {
		return errors.Errorf("%s documents do not support fields, group_by, having, order_by, limit or offset", strings.ToLower(d.Kind))
	}
	return nil
}

func (d *Document) tables() ([]ast.Table, error) {
	var out []ast.Table
	if d.Table != "" {
		t, err := table(d.Table, d.Alias)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	for _, name := range d.From {
		t, err := table(name, "")
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

func (o Order) order() (ast.Order, error) {
	e, err := column(o.Col)
	if err != nil {
		return ast.Order{}, err
	}

	var out ast.Order
	switch strings.ToLower(o.Dir) {
	case "":
		out = query.By(e)
	case "asc":
		out = query.Asc(e)
	case "desc":
		out = query.Desc(e)
	default:
		return ast.Order{}, errors.Errorf("invalid sort direction %q for %s", o.Dir, o.Col)
	}

	switch strings.ToLower(o.Nulls) {
	case "":
		return out, nil
	case "first":
		return query.NullsFirst(out), nil
	case "last":
		return query.NullsLast(out), nil
	default:
		return ast.Order{}, errors.Errorf("invalid nulls placement %q for %s", o.Nulls, o.Col)
	}
}

func filter[S stmt.HasFilter[S]](s S, conds []Condition) (S, error) {
	for _, c := range conds {
		e, err := c.Expr()
		if err != nil {
			return s, err
		}
		s = s.Filter(e)
	}
	return s, nil
}

func returning[S interface {
	stmt.HasReturning[S]
	Clauses() []string
}](s S, names []string) (format.Statement, error) {
	if len(names) == 0 {
		return s, nil
	}

	fields := make([]ast.Field, len(names))
	for i, name := range names {
		var err error
		if fields[i], err = field(name); err != nil {
			return nil, err
		}
	}
	return s.Returning(fields...), nil
}
