package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pseudomuto/sqlkit/pkg/config"
	"github.com/pseudomuto/sqlkit/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the sqlkit CLI application with the registered
// commands and command-line arguments.
//
// Global Flags:
//   - --verbose: Log debug messages to stderr
//
// Example usage:
//
//	sqlkit render queries/
//	sqlkit render -w --multiline queries/books.yaml
//	sqlkit verify queries/
//	sqlkit group "a = 1 AND b = 2 OR c"
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqlkit",
		Usage: "Render and check SQL built from query documents",
		Description: `sqlkit turns declarative YAML query documents into SQL statements and
checks that every rendered predicate parses back with the grouping it was
built with.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug messages",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// documentsDir is the configured documents directory, or the default one
// when no sqlkit.yaml was found.
func documentsDir(cfg *config.Config) string {
	if cfg == nil {
		return consts.DefaultDocumentsDir
	}
	return cfg.Documents
}
