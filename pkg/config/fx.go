package config

import (
	"os"

	"github.com/pseudomuto/hqlfmt/pkg/batch"
	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the configuration from .hqlfmt.yaml when it exists. Without a file
	// every command runs with the defaults.
	func() (*Config, error) {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return Default(), nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
	func(c *Config) (format.Style, error) {
		return c.FormatStyle()
	},
	func(c *Config) *batch.Runner {
		return batch.NewRunner(c.Workers)
	},
))
