package document_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlkit/pkg/document"
	"github.com/pseudomuto/sqlkit/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.yaml files found in testdata directory")

	for _, inputFile := range matches {
		outputName := strings.TrimSuffix(filepath.Base(inputFile), ".yaml") + ".sql"

		t.Run(outputName, func(t *testing.T) {
			docs, err := LoadFile(inputFile)
			require.NoError(t, err)

			stmts := make([]format.Statement, len(docs))
			for i, doc := range docs {
				stmts[i], err = doc.Statement()
				require.NoError(t, err)
			}

			var buf bytes.Buffer
			require.NoError(t, format.Format(&buf, format.Defaults, stmts...))

			golden.Assert(t, buf.String()+"\n", outputName)
		})
	}
}
