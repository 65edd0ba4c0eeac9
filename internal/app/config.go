package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// SpecPaths are dependency specification files or directories. When
	// empty, the specifications bundled with the registered modules are used.
	SpecPaths []string `yaml:"spec"`

	LogFormat   string `yaml:"log_format"`
	LogLevel    string `yaml:"log_level"`
	Workers     int    `yaml:"workers"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		LogFormat: "text",
		LogLevel:  "info",
		Workers:   4,
	}
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Workers < 1 {
		return nil, errors.New("workers must be at least 1")
	}

	cfg.SpecPaths = append([]string(nil), cfg.SpecPaths...)
	return &cfg, nil
}

// LoadConfigFile reads a YAML configuration file on top of base. Keys
// missing from the file keep their value from base; unknown keys are an
// error.
func LoadConfigFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	cfg := base
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	return cfg, nil
}
