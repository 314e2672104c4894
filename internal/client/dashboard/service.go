// Package dashboard реализует операцию загрузки дашборда поверх
// orchestrator'а: онлайн-fetch с write-through в кеш, offline-доступ
// к последнему снапшоту.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aemlabs/aemdash/internal/client/api"
	"github.com/aemlabs/aemdash/internal/client/dashcache"
	"github.com/aemlabs/aemdash/internal/client/failover"
	"github.com/aemlabs/aemdash/internal/client/storage"
	"github.com/aemlabs/aemdash/internal/models"
)

var (
	// ErrNoCachedData возвращается, когда сеть недоступна и снапшот
	// дашборда ни разу не был закеширован
	ErrNoCachedData = errors.New("no network connection and no cached dashboard data")

	// ErrNotAuthenticated возвращается при отсутствии токена сессии;
	// это не сетевой сбой, fallback не задействуется
	ErrNotAuthenticated = errors.New("no authentication token")
)

// LoadResult содержит payload дашборда и происхождение данных
type LoadResult struct {
	Data *models.DashboardData
	// FromCache true, когда данные взяты из offline-кеша
	FromCache bool
	// CachedAt время снапшота; нулевое для свежих данных
	CachedAt time.Time
}

// payload внутренний тип результата для orchestrator'а
type payload struct {
	data     *models.DashboardData
	cachedAt time.Time
}

// Service предоставляет операцию загрузки дашборда
type Service struct {
	apiClient api.ClientAPI
	cache     *dashcache.Cache
	session   storage.SessionStore
	runner    *failover.Runner
	logger    *slog.Logger
	gate      failover.Gate
}

// NewService создает сервис дашборда
func NewService(apiClient api.ClientAPI, cache *dashcache.Cache, session storage.SessionStore, runner *failover.Runner, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		cache:     cache,
		session:   session,
		runner:    runner,
		logger:    logger,
	}
}

// Load загружает payload дашборда.
//
// Требует сохраненного токена сессии. При сетевом сбое или offline
// возвращает последний закешированный снапшот; его отсутствие — ошибка
// ErrNoCachedData. Повторный вызов во время выполняющейся загрузки
// отклоняется с failover.ErrBusy.
func (s *Service) Load(ctx context.Context) (*LoadResult, error) {
	if !s.gate.TryAcquire() {
		return nil, failover.ErrBusy
	}
	defer s.gate.Release()

	token, err := s.session.Token(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	result, err := failover.Run(ctx, s.runner, failover.Operation[payload]{
		Name: "dashboard-load",
		Attempt: func(ctx context.Context) (payload, error) {
			data, err := s.apiClient.Dashboard(ctx, token)
			if err != nil {
				return payload{}, err
			}
			return payload{data: data}, nil
		},
		Fallback: func(ctx context.Context) (payload, bool, error) {
			snapshot, err := s.cache.Fetch(ctx)
			if err != nil {
				return payload{}, false, err
			}
			if snapshot == nil {
				return payload{}, false, nil
			}
			return payload{data: snapshot.Data(), cachedAt: snapshot.CachedTime()}, true, nil
		},
		WriteThrough: func(ctx context.Context, p payload) error {
			return s.cache.Store(ctx, p.data)
		},
		HasCache:  s.cache.Exists,
		ErrNoData: ErrNoCachedData,
	})
	if err != nil {
		return nil, err
	}

	if result.FromCache {
		s.logger.Info("serving dashboard from offline cache",
			"cached_at", result.Value.cachedAt)
	}

	return &LoadResult{
		Data:      result.Value.data,
		FromCache: result.FromCache,
		CachedAt:  result.Value.cachedAt,
	}, nil
}
