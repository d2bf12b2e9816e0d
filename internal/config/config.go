// Package config provides environment-variable-first configuration loading
// with optional YAML file fallback for the extraction pipeline.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/threadmill/replyminer/internal/thread"
)

// defaultWorkers bounds the per-file fan-out when several messages are
// processed in one run.
const defaultWorkers = 4

// Config holds the complete application configuration.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ExtractConfig holds the tuning knobs of the extraction pipeline.
type ExtractConfig struct {
	// TitlesPath points at the honorific/suffix word list. The list is
	// required: without it names cannot be sanitized.
	TitlesPath string `yaml:"titles_path"`
	// Charset names the input encoding (IANA name). Empty means sniff.
	Charset string `yaml:"charset"`
	// LengthDivisor bounds the signature search depth; must be positive.
	LengthDivisor int `yaml:"length_divisor"`
	// HTML treats input files as HTML-saved mail and converts them to text
	// before splitting.
	HTML bool `yaml:"html"`
	// Workers is the number of message files processed concurrently.
	Workers int `yaml:"workers"`
}

// OutputConfig holds record emission configuration.
type OutputConfig struct {
	// Format selects the emitter: "stdout" or "json".
	Format string `yaml:"format"`
	// Path redirects json output to a file instead of standard output.
	Path string `yaml:"path"`
	// Filter is an optional record selection expression.
	Filter string `yaml:"filter"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from environment variables with sensible defaults.
// Environment variables always take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer, then
// overrides with environment variables. Returns an error if the specified
// file path does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables always override YAML values
	cfg.applyEnvVars()

	return cfg, nil
}

// Validate checks tuning parameters that must not be silently corrected.
func (c *Config) Validate() error {
	if c.Extract.LengthDivisor < 1 {
		return fmt.Errorf("%w, got %d", thread.ErrInvalidLengthDivisor, c.Extract.LengthDivisor)
	}
	if c.Extract.Workers < 1 {
		return fmt.Errorf("workers must be a positive integer, got %d", c.Extract.Workers)
	}
	switch c.Output.Format {
	case "stdout", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	return nil
}

// applyDefaults sets sensible default values for all configuration fields.
func (c *Config) applyDefaults() {
	c.Extract.TitlesPath = "titles.txt"
	c.Extract.LengthDivisor = thread.DefaultLengthDivisor
	c.Extract.Workers = defaultWorkers
	c.Output.Format = "stdout"
	c.Logging.Level = "info"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("TITLES_FILE"); v != "" {
		c.Extract.TitlesPath = v
	}
	if v := os.Getenv("MESSAGE_CHARSET"); v != "" {
		c.Extract.Charset = v
	}
	if v := os.Getenv("LENGTH_DIVISOR"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			c.Extract.LengthDivisor = d
		}
	}
	if v := os.Getenv("HTML_INPUT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Extract.HTML = b
		}
	}
	if v := os.Getenv("WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Extract.Workers = n
		}
	}

	if v := os.Getenv("OUTPUT_FORMAT"); v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv("OUTPUT_FILTER"); v != "" {
		c.Output.Filter = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}
