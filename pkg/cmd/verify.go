package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/ast"
	"github.com/pseudomuto/sqlkit/pkg/config"
	"github.com/pseudomuto/sqlkit/pkg/document"
	"github.com/pseudomuto/sqlkit/pkg/verify"
	"github.com/urfave/cli/v3"
)

// verifyCmd creates a CLI command that round-trip checks the predicates of
// query documents: each WHERE and HAVING condition is rendered, parsed back
// and compared with the grouping it was built with.
//
// Examples:
//
//	# Check the configured documents directory
//	sqlkit verify
//
//	# Check specific files or directories (not recursive)
//	sqlkit verify queries/books.yaml reports/
func verifyCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check that rendered predicates parse back unchanged",
		ArgsUsage: "[path...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{documentsDir(cfg)}
			}

			var docs []*document.Document
			for _, path := range paths {
				found, err := loadDocuments(path)
				if err != nil {
					return err
				}
				docs = append(docs, found...)
			}

			checked, err := verifyDocuments(docs)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "verified %d predicates in %d documents\n", checked, len(docs))
			return nil
		},
	}
}

// groupCmd creates a CLI command printing the fully parenthesized form of a
// SQL expression, which shows how it will be read.
//
// Example:
//
//	sqlkit group "a = 1 AND b = 2 OR c = 3"
//	# (((a = 1) AND (b = 2)) OR (c = 3))
func groupCmd() *cli.Command {
	return &cli.Command{
		Name:      "group",
		Usage:     "Print the fully parenthesized form of an expression",
		ArgsUsage: "<expression>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one expression argument is required")
			}

			grouped, err := verify.Expr(cmd.Args().First())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, grouped)
			return nil
		},
	}
}

func loadDocuments(path string) ([]*document.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return document.LoadDir(path)
	}
	return document.LoadFile(path)
}

// verifyDocuments round-trips every predicate and logs each mismatch. It
// returns the number of predicates checked.
func verifyDocuments(docs []*document.Document) (int, error) {
	var checked, failed int

	for _, doc := range docs {
		preds, err := doc.Predicates()
		if err != nil {
			return checked, err
		}

		for _, pred := range preds {
			err := verify.Roundtrip(pred)

			var mismatch *verify.MismatchError
			switch {
			case err == nil:
				checked++
				slog.Debug("Predicate verified", "document", doc.Name, "predicate", ast.Render(pred))
			case errors.Is(err, verify.ErrUnsupported):
				slog.Debug("Skipping predicate", "document", doc.Name, "reason", err)
			case errors.As(err, &mismatch):
				checked++
				failed++
				slog.Error(
					"Predicate does not round-trip",
					"document", doc.Name,
					"rendered", mismatch.Rendered,
					"want", mismatch.Want,
					"got", mismatch.Got,
				)
			default:
				return checked, errors.Wrapf(err, "failed to verify document %q", doc.Name)
			}
		}
	}

	if failed > 0 {
		return checked, errors.Errorf("%d of %d predicates failed verification", failed, checked)
	}

	return checked, nil
}
