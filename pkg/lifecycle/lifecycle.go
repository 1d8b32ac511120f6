// Package lifecycle coordinates startup and shutdown hooks for long-running subsystems.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ReadinessChecker reports whether a subsystem is ready to serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator manages startup and shutdown hooks for the application lifecycle.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	startup  errgroup.Group
	shutdown errgroup.Group
	ready    bool
	readyMu  sync.RWMutex
}

// New creates a Coordinator with a cancellable context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a function to run concurrently during startup.
func (c *Coordinator) OnStartup(fn func() error) {
	c.startup.Go(fn)
}

// OnShutdown registers a function to run concurrently during shutdown.
// Shutdown hooks should block on <-c.Context().Done() before executing cleanup.
func (c *Coordinator) OnShutdown(fn func() error) {
	c.shutdown.Go(fn)
}

// Ready returns true after all startup hooks have completed successfully.
func (c *Coordinator) Ready() bool {
	c.readyMu.RLock()
	defer c.readyMu.RUnlock()
	return c.ready
}

// WaitForStartup blocks until all startup hooks have completed. The ready flag
// is set only when none of them failed; the first hook error is returned.
func (c *Coordinator) WaitForStartup() error {
	if err := c.startup.Wait(); err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	c.readyMu.Lock()
	c.ready = true
	c.readyMu.Unlock()
	return nil
}

// Shutdown cancels the context and waits for shutdown hooks to complete
// within the given timeout. The first hook error is returned.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.readyMu.Lock()
	c.ready = false
	c.readyMu.Unlock()
	c.cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.shutdown.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
