// Package config loads loxc settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "LOXC_CONFIG"

// Config holds the complete loxc configuration.
type Config struct {
	Output      OutputConfig      `toml:"output" yaml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Log         LogConfig         `toml:"log" yaml:"log"`
}

// OutputConfig controls how tokens and trees are printed.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json or yaml
	Indent int    `toml:"indent" yaml:"indent"` // text tree indent width
}

// DiagnosticsConfig controls parse error rendering.
type DiagnosticsConfig struct {
	Color   string `toml:"color" yaml:"color"`     // auto, always or never
	Verbose bool   `toml:"verbose" yaml:"verbose"` // append what the parser expected
}

// LogConfig controls progress logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from path. The format is chosen by extension:
// .yaml and .yml are YAML, anything else is TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover loads the file named by LOXC_CONFIG, or the first of the default
// locations that exists. If none is found, the defaults are returned with
// an empty path.
func Discover() (*Config, string, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

func defaultPaths() []string {
	paths := []string{
		"./loxc.toml",
		"./loxc.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "loxc", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Indent <= 0 {
		c.Output.Indent = 2
	}
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = "auto"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format %q: want text, json or yaml", c.Output.Format)
	}
	switch c.Diagnostics.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("diagnostics.color %q: want auto, always or never", c.Diagnostics.Color)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: want debug, info, warn or error", c.Log.Level)
	}
	return nil
}
