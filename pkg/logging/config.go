package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds logger settings. File is optional; when set, output is
// duplicated to a size-rotated file.
type Config struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Level      string
	Format     string
	File       string
	MaxSize    string
	MaxBackups string
	MaxAge     string
	Compress   string
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
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.File != "" {
		c.File = overlay.File
	}
	if overlay.MaxSize > 0 {
		c.MaxSize = overlay.MaxSize
	}
	if overlay.MaxBackups > 0 {
		c.MaxBackups = overlay.MaxBackups
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
	c.Compress = c.Compress || overlay.Compress
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.MaxSize <= 0 {
		c.MaxSize = 100
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 3
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 28
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := getenv(env.Level); v != "" {
		c.Level = v
	}
	if v := getenv(env.Format); v != "" {
		c.Format = v
	}
	if v := getenv(env.File); v != "" {
		c.File = v
	}
	if v := getenv(env.MaxSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxSize = n
		}
	}
	if v := getenv(env.MaxBackups); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxBackups = n
		}
	}
	if v := getenv(env.MaxAge); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxAge = n
		}
	}
	if v := getenv(env.Compress); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Compress = b
		}
	}
}

func (c *Config) validate() error {
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %q", c.Format)
	}
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
