package catalog

import (
	"fmt"
	"os"
)

// Config selects the catalog source.
type Config struct {
	Path    string `toml:"path"`
	Version string `toml:"version"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Path    string
	Version string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
	if env.Version != "" {
		if v := os.Getenv(env.Version); v != "" {
			c.Version = v
		}
	}
}

func (c *Config) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("catalog path: %w", err)
	}
	return nil
}
