package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlkit/pkg/consts"
	"github.com/pseudomuto/sqlkit/pkg/format"
	"github.com/pseudomuto/sqlkit/pkg/utils"
	"gopkg.in/yaml.v3"
)

type (
	// Format controls how rendered statements are laid out.
	Format struct {
		// Multiline places every clause of a statement on its own line
		Multiline bool `yaml:"multiline,omitempty"`

		// Indent is the number of spaces before continuation clauses in
		// multiline output
		Indent int `yaml:"indent,omitempty"`

		// Terminate appends a semicolon to every statement. Defaults to true.
		Terminate *bool `yaml:"terminate,omitempty"`
	}

	// Config represents the project configuration.
	Config struct {
		// Format contains the output layout settings
		Format Format `yaml:"format"`

		// Verify runs the round-trip checker over every predicate before a
		// document is rendered
		Verify bool `yaml:"verify"`

		// Documents is the directory holding the *.yaml query documents
		Documents string `yaml:"documents"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Unset values fall back to their defaults: statements are terminated and
// documents are read from consts.DefaultDocumentsDir.
//
// Example:
//
//	yamlData := `
//	format:
//	  multiline: true
//	verify: true
//	documents: db/queries
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Documents: %s\n", cfg.Documents)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.Format.Terminate == nil {
		cfg.Format.Terminate = utils.Ptr(true)
	}
	if cfg.Format.Indent < 0 {
		return nil, errors.Errorf("format.indent must not be negative, got %d", cfg.Format.Indent)
	}
	if cfg.Documents == "" {
		cfg.Documents = consts.DefaultDocumentsDir
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatterOptions converts the format section to formatter options. A nil
// config yields format.Defaults.
func (c *Config) FormatterOptions() format.FormatterOptions {
	if c == nil {
		return format.Defaults
	}

	return format.FormatterOptions{
		Multiline:  c.Format.Multiline,
		IndentSize: c.Format.Indent,
		Terminate:  utils.Deref(c.Format.Terminate, format.Defaults.Terminate),
	}
}

// GetFormatter returns a formatter configured from the format section.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.FormatterOptions())
}
