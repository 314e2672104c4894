// Package failover реализует сетевой orchestrator: каждая исходящая
// операция оборачивается в проверку доступности, таймаут, классификацию
// ошибки и переход на локальный кеш.
//
// Состояния одной операции:
//
//	CheckingConnectivity -> {OfflineFallback | OnlineAttempt}
//	OnlineAttempt -> {Success | NetworkFailure -> Fallback | NonNetworkFailure -> Failed}
package failover

import (
	"context"
	"log/slog"
	"time"

	"github.com/aemlabs/aemdash/internal/client/netcheck"
)

const (
	// DefaultOnlineBudget бюджет ожидания сетевого вызова по умолчанию
	DefaultOnlineBudget = 10 * time.Second

	// CachedBudget укороченный бюджет, когда есть кешированные данные:
	// быстрее уйти на fallback, чем держать пользователя в ожидании
	CachedBudget = 3 * time.Second
)

// Operation describes one orchestrated remote operation.
type Operation[T any] struct {
	// Name identifies the operation in logs.
	Name string

	// Attempt performs the remote call under the runner's time budget.
	Attempt func(ctx context.Context) (T, error)

	// Fallback reads the matching cache. ok=false means no usable
	// offline data (absent record, password mismatch).
	Fallback func(ctx context.Context) (value T, ok bool, err error)

	// WriteThrough persists a successful online result to the cache.
	// Optional; failures are logged and never fail the operation.
	WriteThrough func(ctx context.Context, value T) error

	// HasCache is a cheap existence check used to shrink the time
	// budget when a safety net exists. Optional.
	HasCache func(ctx context.Context) bool

	// ErrNoData is returned when connectivity is down (or the call
	// failed with a network-class error) and the fallback has nothing.
	ErrNoData error
}

// Result carries the operation value and whether it came from the cache.
type Result[T any] struct {
	Value     T
	FromCache bool
}

// Runner arbitrates between "try the network", "fall back to cache" and
// "fail" using an injected connectivity probe.
type Runner struct {
	probe        netcheck.Probe
	logger       *slog.Logger
	onlineBudget time.Duration
	cachedBudget time.Duration
}

// NewRunner creates a runner with default time budgets
func NewRunner(probe netcheck.Probe, logger *slog.Logger) *Runner {
	return &Runner{
		probe:        probe,
		logger:       logger,
		onlineBudget: DefaultOnlineBudget,
		cachedBudget: CachedBudget,
	}
}

// SetBudgets overrides the online/cached time budgets (tests, tuning)
func (r *Runner) SetBudgets(online, cached time.Duration) {
	r.onlineBudget = online
	r.cachedBudget = cached
}

// Run executes one operation through the decision state machine.
func Run[T any](ctx context.Context, r *Runner, op Operation[T]) (*Result[T], error) {
	// Сеть недоступна — сразу на fallback
	if !r.probe.Online(ctx) {
		r.logger.Info("connectivity is down, using offline fallback", "operation", op.Name)
		return fallback(ctx, op)
	}

	budget := r.onlineBudget
	if op.HasCache != nil && op.HasCache(ctx) {
		// Есть страховка в кеше — не ждем сеть дольше необходимого
		budget = r.cachedBudget
	}

	attemptCtx, cancel := context.WithTimeout(ctx, budget)
	value, err := op.Attempt(attemptCtx)
	cancel()

	if err == nil {
		if op.WriteThrough != nil {
			if werr := op.WriteThrough(ctx, value); werr != nil {
				// Ошибка write-through не должна провалить операцию
				r.logger.Warn("failed to update offline cache",
					"operation", op.Name, "error", werr)
			}
		}
		return &Result[T]{Value: value}, nil
	}

	// Таймаут и transport-ошибки уводят на fallback; перепроверяем
	// probe на случай, если сеть пропала во время запроса
	if IsNetworkError(err) || !r.probe.Online(ctx) {
		r.logger.Warn("network failure, falling back to offline cache",
			"operation", op.Name, "error", err)
		return fallback(ctx, op)
	}

	// Не-сетевые ошибки (отказ аутентификации, серверная ошибка со
	// статусом) отдаются как есть, без обращения к кешу
	return nil, err
}

func fallback[T any](ctx context.Context, op Operation[T]) (*Result[T], error) {
	value, ok, err := op.Fallback(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, op.ErrNoData
	}
	return &Result[T]{Value: value, FromCache: true}, nil
}
