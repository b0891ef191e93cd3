package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlkit/pkg/config"
	"github.com/pseudomuto/sqlkit/pkg/format"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestRun_ExitCode(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "titles.yaml")
	writeDocument(t, valid, titlesDoc)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"success", []string{"sqlkit", "verify", valid}, 0},
		{"missing document", []string{"sqlkit", "render", filepath.Join(dir, "missing.yaml")}, 1},
		{"invalid expression", []string{"sqlkit", "group", "a ="}, 1},
		{"unknown flag", []string{"sqlkit", "render", "--nope"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fxtest.New(
				t,
				fx.NopLogger,
				fx.Supply(tt.args),
				fx.Supply(&Version{Version: "test"}),
				fx.Provide(
					context.Background,
					func() *config.Config { return nil },
					func() *format.Formatter { return format.New(format.Defaults) },
				),
				Module,
			)

			app.RequireStart()
			sig := <-app.Wait()
			app.RequireStop()

			require.Equal(t, tt.code, sig.ExitCode)
		})
	}
}
