// Package config loads the ecgen command-line configuration.
//
// Values are layered, later sources winning:
//
//  1. Default()
//  2. an optional YAML file
//  3. ECGEN_* environment variables (ECGEN_LOG_LEVEL -> log.level)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ECGEN_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log encodings.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

var (
	// ErrInvalidFormat indicates an unknown output or log format.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrInvalidLimit indicates a negative output limit.
	ErrInvalidLimit = errors.New("config: negative limit")
)

// Config is the full CLI configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

// LogConfig controls diagnostics written to stderr.
type LogConfig struct {
	Level  string `koanf:"level"`  // zap level name: debug, info, warn, error
	Format string `koanf:"format"` // console or json
}

// OutputConfig controls how sequences are printed.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json or yaml
	Limit  int    `koanf:"limit"`  // 0 prints everything
	States bool   `koanf:"states"` // print objects instead of edits
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: LogConsole,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case LogConsole, LogJSON:
	default:
		return errors.Wrapf(ErrInvalidFormat, "log.format %q", c.Log.Format)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidFormat, "output.format %q", c.Output.Format)
	}
	if c.Output.Limit < 0 {
		return errors.Wrapf(ErrInvalidLimit, "output.limit %d", c.Output.Limit)
	}
	return nil
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps ECGEN_SECTION_FIELD to section.field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + field
}
