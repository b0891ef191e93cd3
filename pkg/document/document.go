package document

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// Document is a declarative description of one statement.
	Document struct {
		// Name identifies the document in logs and errors. Documents loaded from
		// a file default to the file's base name.
		Name string `yaml:"name,omitempty"`

		// Kind is one of select, insert, update or delete. Empty means select.
		Kind string `yaml:"kind,omitempty"`

		// Table is the first FROM item of a select, or the target of insert,
		// update and delete.
		Table string `yaml:"table,omitempty"`

		// Alias optionally renames Table. Not allowed for insert.
		Alias string `yaml:"alias,omitempty"`

		// From lists additional FROM items for select and update.
		From []string `yaml:"from,omitempty"`

		// Fields is the select projection: columns, table.*, * or aggregate
		// calls such as COUNT(id), each optionally followed by AS alias.
		Fields []string `yaml:"fields,omitempty"`

		Where   []Condition `yaml:"where,omitempty"`
		GroupBy []string    `yaml:"group_by,omitempty"`
		Having  []Condition `yaml:"having,omitempty"`
		OrderBy []Order     `yaml:"order_by,omitempty"`
		Limit   *uint64     `yaml:"limit,omitempty"`
		Offset  *uint64     `yaml:"offset,omitempty"`

		// Columns and Values describe the rows of an insert.
		Columns []string      `yaml:"columns,omitempty"`
		Values  [][]yaml.Node `yaml:"values,omitempty"`

		// Set lists the assignments of an update, in order.
		Set []Assignment `yaml:"set,omitempty"`

		Returning []string `yaml:"returning,omitempty"`
	}

	// Condition is a single predicate, or an OR group when Any is set.
	Condition struct {
		Col   string      `yaml:"col,omitempty"`
		Op    string      `yaml:"op,omitempty"`
		Value yaml.Node   `yaml:"value,omitempty"`
		Ref   string      `yaml:"ref,omitempty"`
		Any   []Condition `yaml:"any,omitempty"`
	}

	// Order is one ORDER BY entry. It decodes from either a mapping or a
	// "column [asc|desc]" string.
	Order struct {
		Col   string `yaml:"col"`
		Dir   string `yaml:"dir,omitempty"`
		Nulls string `yaml:"nulls,omitempty"`
	}

	// Assignment is one SET entry. Exactly one of Value and Ref is used.
	Assignment struct {
		Col   string    `yaml:"col"`
		Value yaml.Node `yaml:"value,omitempty"`
		Ref   string    `yaml:"ref,omitempty"`
	}
)

// UnmarshalYAML accepts the short "column [asc|desc]" form next to the full
// mapping.
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		type plain Order
		return node.Decode((*plain)(o))
	}

	parts := strings.Fields(node.Value)
	switch len(parts) {
	case 1:
		*o = Order{Col: parts[0]}
	case 2:
		*o = Order{Col: parts[0], Dir: parts[1]}
	default:
		return errors.Errorf("line %d: invalid order entry %q", node.Line, node.Value)
	}

	return nil
}

// Load decodes every YAML document in r.
//
// Example:
//
//	docs, err := document.Load(strings.NewReader(`
//	kind: delete
//	table: book
//	where:
//	  - {col: year, op: "<", value: 1900}
//	`))
//	if err != nil {
//		return err
//	}
//
//	s, _ := docs[0].Statement()
//	fmt.Println(s) // DELETE FROM book WHERE year < 1900
func Load(r io.Reader) ([]*Document, error) {
	var docs []*Document

	dec := yaml.NewDecoder(r)
	for {
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "failed to unmarshal query document")
		}

		docs = append(docs, &doc)
	}

	return docs, nil
}

// LoadFile loads the documents in path. Unnamed documents are named after the
// file.
func LoadFile(path string) ([]*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	docs, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, doc := range docs {
		if doc.Name == "" {
			doc.Name = base
		}
	}

	return docs, nil
}

// LoadDir loads every document file in dir, in lexical file order.
func LoadDir(dir string) ([]*Document, error) {
	matches, err := filepath.Glob(filepath.Join(dir, consts.DocumentPattern))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list documents in %s", dir)
	}

	var docs []*Document
	for _, path := range matches {
		found, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, found...)
	}

	return docs, nil
}
