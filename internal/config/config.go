package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/girste/quickcheck/internal/errors"
	"github.com/girste/quickcheck/internal/log"
)

// Config tunes the report. Every field is optional; the defaults reproduce
// the stock report exactly.
type Config struct {
	SSHDConfigPath        string `yaml:"sshdConfigPath"`
	PortLines             int    `yaml:"portLines"`
	CommandTimeoutSeconds int    `yaml:"commandTimeoutSeconds"` // 0 = no deadline
}

func Default() *Config {
	return &Config{
		SSHDConfigPath:        "/etc/ssh/sshd_config",
		PortLines:             20,
		CommandTimeoutSeconds: 0,
	}
}

// CommandTimeout is the per-command deadline, zero when disabled.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// SearchPaths lists candidate config files in priority order.
func SearchPaths() []string {
	paths := []string{}

	// 1. Environment variable (highest priority)
	if configDir := os.Getenv("QUICKCHECK_CONFIG_DIR"); configDir != "" {
		paths = append(paths,
			filepath.Join(configDir, ".quickcheck.yaml"),
			filepath.Join(configDir, ".quickcheck.yml"),
		)
	}

	// 2. Current directory
	paths = append(paths, ".quickcheck.yaml", ".quickcheck.yml")

	// 3. Home directory
	if home, _ := os.UserHomeDir(); home != "" {
		paths = append(paths,
			filepath.Join(home, ".quickcheck.yaml"),
			filepath.Join(home, ".quickcheck.yml"),
		)
	}

	// 4. System-wide config
	return append(paths, "/etc/quickcheck/config.yaml")
}

// Load reads the first config file found on SearchPaths. With no file it
// returns the defaults. A file that exists but does not parse or validate is
// an error.
func Load() (*Config, error) {
	for _, path := range SearchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		log.Debugf("Loading config from %s", path)
		return Parse(data, path)
	}
	return Default(), nil
}

// LoadOrDefault is Load for callers that must not fail: an invalid config is
// logged and the defaults are used instead.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		log.Warnf("Ignoring config: %v", err)
		return Default()
	}
	return cfg
}

// Parse overlays YAML data onto the defaults and validates the result.
// source names the data in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "invalid config at %s: %v", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed for %s", source)
	}
	return cfg, nil
}

// Validate checks config for errors
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SSHDConfigPath) == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "sshdConfigPath must not be empty")
	}
	if c.PortLines < 1 {
		return errors.Wrap(errors.ErrInvalidConfig, "portLines must be at least 1, got: %d", c.PortLines)
	}
	if c.CommandTimeoutSeconds < 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "commandTimeoutSeconds must not be negative, got: %d", c.CommandTimeoutSeconds)
	}
	return nil
}
