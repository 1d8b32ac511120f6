package main

import (
	"testing"
	"time"

	"github.com/JaimeStill/promptd/internal/config"
)

func TestNewServerDrainUsesRootShutdownTimeout(t *testing.T) {
	for _, name := range []string{
		"PORT", config.EnvServerHost, config.EnvPromptdShutdownTimeout,
		"PROMPTD_CATALOG_PATH", "PROMPTD_LOG_FILE", "PROMPTD_LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}

	cfg := &config.Config{ShutdownTimeout: "7s"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	if srv.http.shutdownTimeout != 7*time.Second {
		t.Errorf("drain timeout: got %v, want 7s", srv.http.shutdownTimeout)
	}
}
