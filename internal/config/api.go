package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/promptd/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "PROMPTD_CORS_ENABLED",
	Origins:          "PROMPTD_CORS_ORIGINS",
	AllowedMethods:   "PROMPTD_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "PROMPTD_CORS_ALLOWED_HEADERS",
	AllowCredentials: "PROMPTD_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "PROMPTD_CORS_MAX_AGE",
}

// APIConfig holds CORS policy and API document metadata.
type APIConfig struct {
	Title       string                `toml:"title"`
	Description string                `toml:"description"`
	CORS        middleware.CORSConfig `toml:"cors"`
}

// Finalize applies defaults, environment variable overrides, and the nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay, including CORS.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.Title == "" {
		c.Title = "Prompts API"
	}
	if c.Description == "" {
		c.Description = "Read-only prompt catalog for local development."
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("PROMPTD_API_TITLE"); v != "" {
		c.Title = v
	}
	if v := os.Getenv("PROMPTD_API_DESCRIPTION"); v != "" {
		c.Description = v
	}
}
