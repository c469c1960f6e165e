package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/hqlfmt/pkg/consts"
	"github.com/pseudomuto/hqlfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config represents the formatter configuration.
type Config struct {
	// Style names the layout preset: "pretty" (default) or "minify"
	Style string `yaml:"style,omitempty"`

	// Indent overrides the indentation unit of the pretty preset
	Indent string `yaml:"indent,omitempty"`

	// DropComments removes comments from the output when set. Leaving it out
	// keeps the preset's behaviour.
	DropComments *bool `yaml:"drop_comments,omitempty"`

	// Workers bounds the number of files formatted concurrently. Zero uses
	// GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`

	// Extensions lists the file extensions picked up when walking directories
	Extensions []string `yaml:"extensions,omitempty"`
}

// Default returns the configuration used when no configuration file exists.
func Default() *Config {
	return &Config{
		Style:      "pretty",
		Extensions: slices.Clone(consts.DefaultExtensions),
	}
}

// LoadConfig parses a formatter configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing keys (or an
// empty document) keep their defaults and the style name is validated.
//
// Example:
//
//	yamlData := `
//	style: pretty
//	indent: "  "
//	extensions: [.sql]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	style, _ := cfg.FormatStyle()
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Default()
	// An empty document keeps every default.
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal formatter config")
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = slices.Clone(consts.DefaultExtensions)
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			cfg.Extensions[i] = "." + ext
		}
	}

	if cfg.Workers < 0 {
		return nil, errors.Errorf("invalid workers: %d", cfg.Workers)
	}

	if _, err := cfg.FormatStyle(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatStyle derives the layout style from the configured preset and
// overrides. The indent override only applies to presets that indent.
func (c *Config) FormatStyle() (format.Style, error) {
	style, err := format.StyleByName(c.Style)
	if err != nil {
		return format.Style{}, errors.Wrap(err, "invalid config")
	}

	if c.Indent != "" && style.Indent != "" {
		style.Indent = c.Indent
	}

	if c.DropComments != nil {
		style.DropComments = *c.DropComments
	}

	return style, nil
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	for _, ext := range c.Extensions {
		if strings.EqualFold(ext, filepath.Ext(path)) {
			return true
		}
	}

	return false
}

