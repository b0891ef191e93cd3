package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/config"
	"github.com/pseudomuto/sqlkit/pkg/consts"
	"github.com/pseudomuto/sqlkit/pkg/document"
	"github.com/pseudomuto/sqlkit/pkg/format"
	"github.com/urfave/cli/v3"
)

type renderer struct {
	formatter *format.Formatter
	verify    bool
	writeBack bool
	writer    io.Writer
}

// renderCmd creates a CLI command that renders query documents to SQL.
//
// The command supports two output modes:
//   - Stdout mode (default): Rendered SQL is written to standard output
//   - Write mode (-w flag): Each document file gets a sibling .sql file
//
// Path handling:
//   - File paths: Render the documents in the file
//   - Directory paths: Recursively find and render all .yaml files
//   - No paths: Render the configured documents directory
//
// Examples:
//
//	# Render a single file to stdout
//	sqlkit render queries/books.yaml
//
//	# Render every document, one clause per line, into .sql files
//	sqlkit render -w --multiline queries/
//
//	# Check every predicate before rendering
//	sqlkit render --verify queries/
func renderCmd(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render query documents to SQL",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write a .sql file next to each document file instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "multiline",
				Aliases: []string{"m"},
				Usage:   "Place every clause on its own line",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "Round-trip check every predicate before rendering",
				Value: cfg != nil && cfg.Verify,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			r := renderer{
				formatter: formatter,
				verify:    cmd.Bool("verify"),
				writeBack: cmd.Bool("write"),
				writer:    cmd.Writer,
			}

			if r.formatter == nil || cmd.IsSet("multiline") {
				opts := cfg.FormatterOptions()
				opts.Multiline = cmd.Bool("multiline")
				r.formatter = format.New(opts)
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{documentsDir(cfg)}
			}

			for _, path := range paths {
				if err := r.renderPath(path); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// renderPath dispatches to renderDirectory or renderFile.
func (r renderer) renderPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return r.renderDirectory(path)
	}

	return r.renderFile(path)
}

// renderDirectory walks dir and renders every document file in lexical order.
func (r renderer) renderDirectory(dir string) error {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && isDocument(d.Name()) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return errors.Errorf("no query documents found in directory: %s", dir)
	}

	for _, file := range files {
		if err := r.renderFile(file); err != nil {
			return errors.Wrapf(err, "failed to render file: %s", file)
		}
	}

	return nil
}

func (r renderer) renderFile(path string) error {
	docs, err := document.LoadFile(path)
	if err != nil {
		return err
	}

	if r.verify {
		if _, err := verifyDocuments(docs); err != nil {
			return errors.Wrapf(err, "failed to verify %s", path)
		}
	}

	stmts := make([]format.Statement, len(docs))
	for i, doc := range docs {
		if stmts[i], err = doc.Statement(); err != nil {
			return err
		}
	}

	var buf strings.Builder
	if err := r.formatter.Format(&buf, stmts...); err != nil {
		return errors.Wrapf(err, "failed to format SQL for file: %s", path)
	}
	buf.WriteString("\n")

	if !r.writeBack {
		if _, err := fmt.Fprint(r.writer, buf.String()); err != nil {
			return errors.Wrap(err, "failed to write rendered SQL to output")
		}
		return nil
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".sql"
	if err := os.WriteFile(out, []byte(buf.String()), consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write rendered SQL to file: %s", out)
	}

	slog.Info("Rendered query documents", "source", path, "output", out, "statements", len(stmts))
	return nil
}

func isDocument(name string) bool {
	ok, _ := filepath.Match(consts.DocumentPattern, strings.ToLower(name))
	return ok
}
