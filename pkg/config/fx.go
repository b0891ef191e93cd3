package config

import (
	"os"

	"github.com/pseudomuto/sqlkit/pkg/consts"
	"github.com/pseudomuto/sqlkit/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads sqlkit.yaml when present. A nil config is provided otherwise so
	// commands fall back to their defaults.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
