package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/promptd/internal/catalog"
	"github.com/JaimeStill/promptd/pkg/logging"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"
	DotEnvFile           = ".env"

	EnvPromptdEnv             = "PROMPTD_ENV"
	EnvPromptdShutdownTimeout = "PROMPTD_SHUTDOWN_TIMEOUT"
	EnvPromptdVersion         = "PROMPTD_VERSION"
)

var loggingEnv = &logging.Env{
	Level:      "PROMPTD_LOG_LEVEL",
	Format:     "PROMPTD_LOG_FORMAT",
	File:       "PROMPTD_LOG_FILE",
	MaxSize:    "PROMPTD_LOG_MAX_SIZE",
	MaxBackups: "PROMPTD_LOG_MAX_BACKUPS",
	MaxAge:     "PROMPTD_LOG_MAX_AGE",
	Compress:   "PROMPTD_LOG_COMPRESS",
}

var catalogEnv = &catalog.Env{
	Path:    "PROMPTD_CATALOG_PATH",
	Version: "PROMPTD_CATALOG_VERSION",
}

// Config is the root configuration for the promptd service.
type Config struct {
	Server          ServerConfig   `toml:"server"`
	API             APIConfig      `toml:"api"`
	Logging         logging.Config `toml:"logging"`
	Catalog         catalog.Config `toml:"catalog"`
	ShutdownTimeout string         `toml:"shutdown_timeout"`
	Version         string         `toml:"version"`
}

// Env returns the PROMPTD_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvPromptdEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration. It is the
// single bound on graceful shutdown: every lifecycle hook, including the HTTP
// server's connection drain, must finish within it.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads variables from .env (if present), the base config (if present),
// applies any environment overlay, and finalizes all values. With no files at
// all, defaults and environment variables provide all configuration.
// Variables already set in the process environment take precedence over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Logging.Merge(&overlay.Logging)
	c.Catalog.Merge(&overlay.Catalog)
}

// Finalize applies defaults, environment overrides, and validation to the
// root config and every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Catalog.Finalize(catalogEnv); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvPromptdShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvPromptdVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvPromptdEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
