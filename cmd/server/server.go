package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/promptd/internal/api"
	"github.com/JaimeStill/promptd/internal/config"
	"github.com/JaimeStill/promptd/internal/infrastructure"
)

// Server owns the process: infrastructure, the prompts API, and its listener.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

// NewServer builds the catalog-backed API. Nothing listens until Start.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	handler, err := api.New(cfg, infra)
	if err != nil {
		return nil, fmt.Errorf("api init failed: %w", err)
	}

	infra.Logger.Debug("server initialized", "version", cfg.Version, "env", cfg.Env())

	return &Server{
		infra: infra,
		http:  newHTTPServer(&cfg.Server, cfg.ShutdownTimeoutDuration(), handler, infra.Logger),
	}, nil
}

// Start binds the listener and blocks until every startup hook has run,
// after which /readyz reports ready.
func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}
	return s.infra.Lifecycle.WaitForStartup()
}

// Shutdown stops accepting requests and drains in-flight ones within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Debug("shutdown requested", "timeout", timeout)
	return s.infra.Lifecycle.Shutdown(timeout)
}
