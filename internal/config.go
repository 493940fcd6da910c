package internal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServer   = "http://127.0.0.1:5000"
	DefaultStyle    = "auto"
	DefaultWordWrap = 80
)

// Config holds client settings. Sources are applied in order: defaults,
// YAML file, environment, command-line flags.
type Config struct {
	Server   string        `yaml:"server"`
	Timeout  time.Duration `yaml:"timeout"`
	Storage  string        `yaml:"storage,omitempty"`
	Style    string        `yaml:"style"`
	WordWrap int           `yaml:"word_wrap"`
	LogLevel string        `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Server:   DefaultServer,
		Style:    DefaultStyle,
		WordWrap: DefaultWordWrap,
	}
}

// LoadConfig reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
			LogDebug("Loaded config from %s", path)
		case os.IsNotExist(err):
			LogDebug("No config file at %s, using defaults", path)
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LABCHAT_SERVER"); v != "" {
		c.Server = v
	}
	if v := os.Getenv("LABCHAT_STORAGE"); v != "" {
		c.Storage = v
	}
	if v := os.Getenv("LABCHAT_STYLE"); v != "" {
		c.Style = v
	}
	if v := os.Getenv("LABCHAT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks settings that would otherwise fail later and confusingly
func (c *Config) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("invalid config: server must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid config: timeout must not be negative")
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("invalid config: word_wrap must not be negative")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level returns the configured log level; Validate has already checked it
func (c *Config) Level() LogLevel {
	level, _ := ParseLogLevel(c.LogLevel)
	return level
}

// NewClient builds the transport client the settings describe
func (c *Config) NewClient() *Client {
	if c.Timeout > 0 {
		return NewClient(c.Server, WithTimeout(c.Timeout))
	}
	return NewClient(c.Server)
}
