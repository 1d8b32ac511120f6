package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/JaimeStill/promptd/pkg/formatting"
)

const (
	EnvServerPort          = "PORT"
	EnvServerHost          = "PROMPTD_SERVER_HOST"
	EnvServerReadTimeout   = "PROMPTD_SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout  = "PROMPTD_SERVER_WRITE_TIMEOUT"
	EnvServerMaxHeaderSize = "PROMPTD_SERVER_MAX_HEADER_SIZE"

	DefaultPort = 3000
)

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Host          string          `toml:"host"`
	Port          int             `toml:"port"`
	ReadTimeout   string          `toml:"read_timeout"`
	WriteTimeout  string          `toml:"write_timeout"`
	MaxHeaderSize formatting.Size `toml:"max_header_size"`
}

// Addr returns the host:port listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL returns the local URL announced at startup.
func (c *ServerConfig) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// ReadTimeoutDuration returns ReadTimeout as a time.Duration.
func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration returns WriteTimeout as a time.Duration.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.MaxHeaderSize != 0 {
		c.MaxHeaderSize = overlay.MaxHeaderSize
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "30s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "30s"
	}
	if c.MaxHeaderSize == 0 {
		c.MaxHeaderSize = 1 << 20
	}
}

// loadEnv ignores a PORT that is not a valid port number, leaving the
// configured or default port in place.
func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && validPort(port) {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvServerReadTimeout); v != "" {
		c.ReadTimeout = v
	}
	if v := os.Getenv(EnvServerWriteTimeout); v != "" {
		c.WriteTimeout = v
	}
	if v := os.Getenv(EnvServerMaxHeaderSize); v != "" {
		if n, err := formatting.ParseBytes(v); err == nil {
			c.MaxHeaderSize = formatting.Size(n)
		}
	}
}

func (c *ServerConfig) validate() error {
	if !validPort(c.Port) {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := time.ParseDuration(c.ReadTimeout); err != nil {
		return fmt.Errorf("invalid read_timeout: %w", err)
	}
	if _, err := time.ParseDuration(c.WriteTimeout); err != nil {
		return fmt.Errorf("invalid write_timeout: %w", err)
	}
	if c.MaxHeaderSize < 0 {
		return fmt.Errorf("invalid max_header_size: %d", c.MaxHeaderSize)
	}
	return nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}
