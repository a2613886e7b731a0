// Package config loads globrun's optional YAML configuration and
// resolves exclusion defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zysharp/globrun/internal/exclude"
)

const (
	// EnvExclude supplies the exclusion list when --exclude is omitted.
	EnvExclude = "GLOBRUN_EXCLUDE"
	// EnvConfig overrides the config file location.
	EnvConfig = "GLOBRUN_CONFIG"

	defaultShell = "sh"
)

// Config is the on-disk configuration.
type Config struct {
	// Exclude lists glob patterns filtered from every run unless the
	// --exclude flag or GLOBRUN_EXCLUDE overrides them.
	Exclude []string `yaml:"exclude"`
	// Shell runs the substituted commands (`<shell> -c <command>`).
	// Empty means sh.
	Shell string `yaml:"shell"`
}

// DefaultPath returns the config file location: $GLOBRUN_CONFIG when
// set, otherwise globrun/config.yaml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "globrun", "config.yaml")
}

// Load reads the config file at path. A missing file (or an empty path)
// yields the zero config; malformed YAML is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveExclude applies the precedence flag > environment > config
// file. flagSet reports whether --exclude was passed at all; an
// explicitly empty flag disables filtering.
func (c *Config) ResolveExclude(flagValue string, flagSet bool) []string {
	if flagSet {
		return exclude.Parse(flagValue)
	}
	if env, ok := os.LookupEnv(EnvExclude); ok {
		return exclude.Parse(env)
	}
	return c.Exclude
}

// ResolveShell returns the configured shell, defaulting to sh.
func (c *Config) ResolveShell() string {
	if c.Shell != "" {
		return c.Shell
	}
	return defaultShell
}
