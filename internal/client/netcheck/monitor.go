package netcheck

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Monitor периодически опрашивает probe и кеширует последний статус.
// Сам реализует Probe: Online отвечает из кеша без сетевого запроса,
// что позволяет долгоживущим клиентам не платить за health check на
// каждую операцию.
type Monitor struct {
	probe    Probe
	interval time.Duration
	logger   *slog.Logger
	online   atomic.Bool
}

// NewMonitor создает монитор; первый опрос выполняется в Run
func NewMonitor(probe Probe, interval time.Duration, logger *slog.Logger) *Monitor {
	m := &Monitor{
		probe:    probe,
		interval: interval,
		logger:   logger,
	}
	// До первого опроса считаем сеть доступной: первый же реальный
	// запрос уточнит состояние через классификацию ошибок
	m.online.Store(true)
	return m
}

// Online returns the last observed connectivity status
func (m *Monitor) Online(ctx context.Context) bool {
	return m.online.Load()
}

// Run опрашивает probe до отмены контекста, логируя переходы
func (m *Monitor) Run(ctx context.Context) {
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (m *Monitor) check(ctx context.Context) {
	current := m.probe.Online(ctx)
	previous := m.online.Swap(current)

	if current != previous {
		if current {
			m.logger.Info("connectivity restored, switching to online mode")
		} else {
			m.logger.Warn("connectivity lost, switching to offline mode")
		}
	}
}
