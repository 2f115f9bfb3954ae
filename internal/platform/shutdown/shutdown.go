package shutdown

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type closer struct {
	name string
	fn   func() error
}

// Coordinator stops the HTTP server and then releases the resources
// registered with OnShutdown, in reverse registration order.
type Coordinator struct {
	logger  *zap.Logger
	timeout time.Duration

	mu      sync.Mutex
	closers []closer
}

// NewCoordinator creates a Coordinator. timeout bounds the HTTP drain.
func NewCoordinator(logger *zap.Logger, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Coordinator{logger: logger, timeout: timeout}
}

// OnShutdown registers fn to run after the server has stopped.
func (c *Coordinator) OnShutdown(name string, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closers = append(c.closers, closer{name: name, fn: fn})
}

// ListenForSignalsAndShutdown blocks until SIGINT or SIGTERM, then shuts down.
func (c *Coordinator) ListenForSignalsAndShutdown(server *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	sig := <-sigChan
	c.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	c.Shutdown(context.Background(), server)
}

// Shutdown drains in-flight requests and then runs the registered closers.
// Closer errors are logged; every closer runs.
func (c *Coordinator) Shutdown(ctx context.Context, server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		c.logger.Error("http server shutdown failed", zap.Error(err))
	} else {
		c.logger.Info("http server stopped")
	}

	c.mu.Lock()
	closers := make([]closer, len(c.closers))
	copy(closers, c.closers)
	c.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].fn(); err != nil {
			c.logger.Error("failed to close resource", zap.String("resource", closers[i].name), zap.Error(err))
			continue
		}
		c.logger.Info("resource closed", zap.String("resource", closers[i].name))
	}

	c.logger.Info("shutdown complete")
}
