package app

import (
	"fmt"

	"github.com/vk/schoolregistry/internal/config"
	"github.com/vk/schoolregistry/internal/export"
)

const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty fields are filled from the settings files, then from defaults.
type Config struct {
	SettingsPaths []string // hcl files or directories

	ExportPath string
	LogFormat  string
	LogLevel   string
}

// NewConfig validates the explicitly provided values.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// withSettings returns a copy of c where every unset field is taken from the
// settings model, or from the defaults when the model does not set it either.
func (c Config) withSettings(m *config.Model) (*Config, error) {
	if m != nil {
		if c.ExportPath == "" {
			c.ExportPath = m.ExportPath
		}
		if c.LogLevel == "" {
			c.LogLevel = m.LogLevel
		}
		if c.LogFormat == "" {
			c.LogFormat = m.LogFormat
		}
	}
	if c.ExportPath == "" {
		c.ExportPath = export.DefaultPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &c, nil
}

func (c Config) validate() error {
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	return nil
}
