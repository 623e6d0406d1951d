// Package config loads the settings of the mpc command from TOML or YAML
// files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Config holds the settings shared by the mpc subcommands.
type Config struct {
	// Grammar is the path of the EBNF grammar file.
	Grammar string `toml:"grammar" yaml:"grammar"`
	// Start is the start production of the grammar.
	Start string `toml:"start" yaml:"start"`
	// Output is "tree" or "json".
	Output string `toml:"output" yaml:"output"`
	// SkipSpace skips whitespace between the tokens of non-lexical
	// productions.
	SkipSpace bool      `toml:"skip_space" yaml:"skip_space"`
	Log       LogConfig `toml:"log" yaml:"log"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: "tree",
	}
}

// Load reads the configuration file at path on top of the defaults. The
// format is chosen by file extension.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFromString(string(content), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// Relative grammar paths are resolved against the config file.
	if cfg.Grammar != "" && !filepath.IsAbs(cfg.Grammar) {
		cfg.Grammar = filepath.Join(filepath.Dir(path), cfg.Grammar)
	}
	if cfg.Log.File != "" && !filepath.IsAbs(cfg.Log.File) {
		cfg.Log.File = filepath.Join(filepath.Dir(path), cfg.Log.File)
	}
	return cfg, nil
}

// LoadFromString parses content in the given format on top of the defaults.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %v", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported config file extension: %s", path)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Output {
	case "tree", "json":
	default:
		return fmt.Errorf("invalid output %q: must be tree or json", c.Output)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("invalid log verbosity %d", c.Log.Verbosity)
	}
	if c.Start != "" && c.Grammar == "" {
		return fmt.Errorf("start production %q given without a grammar", c.Start)
	}
	return nil
}
