package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlkit/pkg/config"
	"github.com/pseudomuto/sqlkit/pkg/document"
		"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, filepath.Join(dir, "titles.yaml"), titlesDoc)
	writeDocument(t, filepath.Join(dir, "authors.yaml"), authorsDoc)

	t.Run("paths", func(t *testing.T) {
		out, err := runCommand(t, verifyCmd(nil), filepath.Join(dir, "titles.yaml"), dir)
		require.NoError(t, err)
		require.Equal(t, "verified 4 predicates in 3 documents\n", out)
	})

	t.Run("configured directory", func(t *testing.T) {
		out, err := runCommand(t, verifyCmd(&config.Config{Documents: dir}))
		require.NoError(t, err)
		require.Equal(t, "verified 3 predicates in 2 documents\n", out)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := runCommand(t, verifyCmd(nil), filepath.Join(dir, "missing"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to access path")
	})
}

func TestVerifyDocuments(t *testing.T) {
	t.Run("no predicates", func(t *testing.T) {
		checked, err := verifyDocuments([]*document.Document{{Name: "all", Table: "book"}})
		require.NoError(t, err)
		require.Zero(t, checked)
	})

	t.Run("invalid condition", func(t *testing.T) {
		docs := []*document.Document{{
			Name:  "bad",
			Table: "book",
			Where: []document.Condition{{Col: "id", Op: "~"}},
		}}

		_, err := verifyDocuments(docs)
		require.Error(t, err)
		require.Contains(t, err.Error(), `unsupported operator "~"`)
	})

	t.Run("keyword column is skipped", func(t *testing.T) {
		docs := []*document.Document{{
			Name:  "flags",
			Table: "flag",
			Where: []document.Condition{
				{Col: "unknown", Op: "is true"},
				{Col: "state", Op: "is not null"},
			},
		}}

		checked, err := verifyDocuments(docs)
		require.NoError(t, err)
		require.Equal(t, 1, checked)
	})

	t.Run("where and having", func(t *testing.T) {
		docs := []*document.Document{{
			Name:    "totals",
			Table:   "sale",
			Fields:  []string{"book_id", "SUM(amount)"},
			Where:   []document.Condition{{Col: "book_id", Op: "is not null"}},
			GroupBy: []string{"book_id"},
			Having:  []document.Condition{{Col: "book_id", Op: "between", Value: yamlNode(t, "[1, 10]")}},
		}}

		checked, err := verifyDocuments(docs)
		require.NoError(t, err)
		require.Equal(t, 2, checked)
	})
}

func TestGroupCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		err  string
	}{
		{name: "grouped", args: []string{"a = 1 AND b = 2 OR c"}, want: "(((a = 1) AND (b = 2)) OR c)\n"},
		{name: "not", args: []string{"NOT a IS NULL"}, want: "(NOT (a IS NULL))\n"},
		{name: "no argument", err: "exactly one expression argument is required"},
		{name: "too many arguments", args: []string{"a", "b"}, err: "exactly one expression argument is required"},
		{name: "invalid", args: []string{"a ="}, err: "failed to parse expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, groupCmd(), tt.args...)
			if tt.err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func yamlNode(t *testing.T, text string) yaml.Node {
	t.Helper()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(text), &doc))
	return *doc.Content[0]
}
