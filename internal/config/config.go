package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prospectly/prospectctl/internal/errors"
)

// Config represents the client configuration loaded from
// ~/.prospectctl/config.yaml with environment overrides.
type Config struct {
	// APIURL is the base URL of the prospect backend.
	APIURL string `yaml:"api_url"`

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// CredentialsFile is the path of the stored credential bundle.
	CredentialsFile string `yaml:"credentials_file,omitempty"`

	// Provider is the default research provider for soft-data generation
	// (OpenAI, Claude, or Hybrid).
	Provider string `yaml:"provider,omitempty"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		APIURL:   "http://localhost:5000",
		Timeout:  30 * time.Second,
		Provider: "Claude",
		LogLevel: "warn",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".prospectctl", "config.yaml"), nil
}

// Load reads configuration from the given path, falling back to defaults
// when the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileReadFailed,
				fmt.Sprintf("failed to read config file: %s", path), err)
		}
	} else {
		// Expand environment variables in the config
		configStr := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(configStr), cfg); err != nil {
			return nil, errors.NewConfigUnmarshalError(path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides lets PROSPECTCTL_* variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PROSPECTCTL_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("PROSPECTCTL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("PROSPECTCTL_CREDENTIALS_FILE"); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv("PROSPECTCTL_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("PROSPECTCTL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must not be empty").
			WithSuggestion("Set api_url in ~/.prospectctl/config.yaml").
			WithSuggestion("Or export PROSPECTCTL_API_URL")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("api_url must be an http(s) URL, got: %s", c.APIURL))
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "timeout must not be negative")
	}

	switch c.Provider {
	case "", "OpenAI", "Claude", "Hybrid":
	default:
		return errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("unknown provider: %s", c.Provider)).
			WithSuggestion("Use one of: OpenAI, Claude, Hybrid")
	}

	return nil
}

// Save writes the configuration back to the given path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("failed to write config file: %s", path), err)
	}

	return nil
}
