package health

import (
	"context"
	"fmt"
	"time"
)

const defaultCheckTimeout = 2 * time.Second

// Checker is one readiness dependency.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Pinger is anything that can verify its backing connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker turns a Pinger into a Checker bounded by a timeout.
type PingChecker struct {
	name    string
	target  Pinger
	timeout time.Duration
}

// NewPingChecker creates a PingChecker. A zero timeout uses the default.
func NewPingChecker(name string, target Pinger, timeout time.Duration) *PingChecker {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &PingChecker{name: name, target: target, timeout: timeout}
}

func (p *PingChecker) Name() string { return p.name }

func (p *PingChecker) Check(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.target.Ping(checkCtx); err != nil {
		return fmt.Errorf("%s health check failed: %w", p.name, err)
	}
	return nil
}
