// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies domain systems require: lifecycle coordination,
// logging, and the prompt catalog.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/JaimeStill/promptd/internal/catalog"
	"github.com/JaimeStill/promptd/internal/config"
	"github.com/JaimeStill/promptd/pkg/lifecycle"
	"github.com/JaimeStill/promptd/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Catalog   *catalog.Catalog

	logCloser io.Closer
}

// New creates an Infrastructure from the application configuration.
// The catalog is built here, once, and never changes afterwards.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger, closer, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}

	cat, err := catalog.FromConfig(&cfg.Catalog, time.Now())
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("catalog init failed: %w", err)
	}

	logger.Debug(
		"catalog loaded",
		"source", catalogSource(&cfg.Catalog),
		"version", cat.Version(),
		"prompts", cat.Len(),
	)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Catalog:   cat,
		logCloser: closer,
	}, nil
}

// Start registers infrastructure hooks with the lifecycle coordinator.
// The log file, if any, is closed once shutdown begins.
func (i *Infrastructure) Start() error {
	closer := i.logCloser
	if closer == nil {
		return nil
	}
	i.Lifecycle.OnShutdown(func() error {
		<-i.Lifecycle.Context().Done()
		return closer.Close()
	})
	return nil
}

func catalogSource(cfg *catalog.Config) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	return "builtin"
}
