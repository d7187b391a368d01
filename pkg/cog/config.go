package cog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no
// config path is given explicitly.
const DefaultConfigFile = ".cog.yml"

// Config holds the settings a cog.yml file may carry. Command-line flags
// take precedence over anything loaded here.
type Config struct {
	Path  string      `yaml:"-"`
	Debug DebugConfig `yaml:"debug"`
	Color ColorMode   `yaml:"color"`
	Repl  ReplConfig  `yaml:"repl"`
}

// ReplConfig configures the interactive session.
type ReplConfig struct {
	History string `yaml:"history"`
	Prompt  string `yaml:"prompt"`
}

// ConfigError aggregates config validation failures.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig is the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Color: ColorAuto,
		Repl: ReplConfig{
			History: "~/.cog_history",
			Prompt:  "> ",
		},
	}
}

// LoadConfig reads and validates the YAML config at path.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := ParseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", absPath, err)
	}
	cfg.Path = absPath
	return cfg, nil
}

// ParseConfig decodes a YAML document over the defaults. Unknown keys
// are rejected; an empty document yields the defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	var errs ConfigError
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Issues = append(errs.Issues,
			fmt.Sprintf("color must be one of auto, always, never; got %q", cfg.Color))
	}
	if strings.TrimSpace(cfg.Repl.Prompt) == "" && cfg.Repl.Prompt != "" {
		errs.Issues = append(errs.Issues, "repl.prompt must not be only whitespace")
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// HistoryPath expands a leading ~ in the configured history file.
// An empty result disables history persistence.
func (cfg *Config) HistoryPath() string {
	hist := cfg.Repl.History
	if strings.HasPrefix(hist, "~"+string(os.PathSeparator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, hist[2:])
	}
	return hist
}
