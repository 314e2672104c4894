// Package netcheck предоставляет connectivity probe: явную проверку
// доступности сервера, которая инжектируется в orchestrator вместо
// неявного глобального флага "online".
package netcheck

import (
	"context"
	"time"
)

// DefaultProbeTimeout таймаут одиночной проверки доступности
const DefaultProbeTimeout = 2 * time.Second

//go:generate moq -out probe_mock.go . Probe

// Probe reports whether the remote server is currently reachable
type Probe interface {
	Online(ctx context.Context) bool
}

// HealthPinger — минимальный срез API клиента, нужный probe
type HealthPinger interface {
	Health(ctx context.Context) error
}

// HTTPProbe проверяет доступность сервера запросом к health endpoint
type HTTPProbe struct {
	pinger  HealthPinger
	timeout time.Duration
}

// NewHTTPProbe создает probe поверх API клиента
func NewHTTPProbe(pinger HealthPinger, timeout time.Duration) *HTTPProbe {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &HTTPProbe{pinger: pinger, timeout: timeout}
}

// Online выполняет health check с коротким таймаутом
func (p *HTTPProbe) Online(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.pinger.Health(probeCtx) == nil
}

// Static is a fixed-answer probe for tests and forced-offline mode
type Static struct {
	Up bool
}

// Online returns the configured answer
func (s Static) Online(ctx context.Context) bool {
	return s.Up
}
