package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/promptd/internal/config"
	"github.com/JaimeStill/promptd/pkg/lifecycle"
)

type httpServer struct {
	http            *http.Server
	url             string
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// newHTTPServer builds the listener. shutdownTimeout bounds the connection
// drain and comes from the root shutdown_timeout.
func newHTTPServer(cfg *config.ServerConfig, shutdownTimeout time.Duration, handler http.Handler, logger *slog.Logger) *httpServer {
	return &httpServer{
		http: &http.Server{
			Addr:           cfg.Addr(),
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeoutDuration(),
			WriteTimeout:   cfg.WriteTimeoutDuration(),
			MaxHeaderBytes: int(cfg.MaxHeaderSize),
		},
		url:             cfg.URL(),
		logger:          logger.With("system", "http"),
		shutdownTimeout: shutdownTimeout,
	}
}

// Start binds the listen address synchronously so a busy port fails startup,
// then serves in the background until the lifecycle context is cancelled.
func (s *httpServer) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}

	go func() {
		s.logger.Info("prompts api listening", "addr", s.url)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	lc.OnShutdown(func() error {
		<-lc.Context().Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
			return err
		}
		s.logger.Info("server shutdown complete")
		return nil
	})

	return nil
}
