// Package auth реализует операцию логина/логаута поверх orchestrator'а:
// онлайн-логин с write-through в offline-кеш учетных данных, offline-логин
// по кешу при недоступной сети.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aemlabs/aemdash/internal/client/api"
	"github.com/aemlabs/aemdash/internal/client/creds"
	"github.com/aemlabs/aemdash/internal/client/failover"
	"github.com/aemlabs/aemdash/internal/client/storage"
	"github.com/aemlabs/aemdash/internal/validation"
	pkgapi "github.com/aemlabs/aemdash/pkg/api"
)

// ErrNoOfflineCredentials возвращается, когда сеть недоступна и в кеше
// нет пригодной записи для пользователя
var ErrNoOfflineCredentials = errors.New("no network connection and no offline credentials found")

// LoginResult содержит результат логина
type LoginResult struct {
	Token string
	// FromCache true, когда логин прошел по offline-кешу без сети
	FromCache bool
}

// LogoutOptions управляет очисткой offline-данных при выходе
type LogoutOptions struct {
	// WipeAll удаляет все offline-документы (учетные данные и кеш дашборда)
	WipeAll bool
	// WipeCredentials удаляет только кешированные учетные данные
	WipeCredentials bool
}

// Service предоставляет операции логина и логаута
type Service struct {
	apiClient api.ClientAPI
	creds     *creds.Cache
	session   storage.SessionStore
	runner    *failover.Runner
	logger    *slog.Logger
	gate      failover.Gate
}

// NewService создает сервис авторизации
func NewService(apiClient api.ClientAPI, credsCache *creds.Cache, session storage.SessionStore, runner *failover.Runner, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		creds:     credsCache,
		session:   session,
		runner:    runner,
		logger:    logger,
	}
}

// Login выполняет аутентификацию пользователя.
//
// При доступной сети — запрос к серверу с write-through в offline-кеш;
// при сетевом сбое или offline — проверка пароля по кешу. Повторный
// вызов во время выполняющегося логина отклоняется с failover.ErrBusy.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if !s.gate.TryAcquire() {
		return nil, failover.ErrBusy
	}
	defer s.gate.Release()

	if err := validation.ValidateUsername(validation.NormalizeUsername(username)); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	result, err := failover.Run(ctx, s.runner, failover.Operation[string]{
		Name: "login",
		Attempt: func(ctx context.Context) (string, error) {
			return s.apiClient.Login(ctx, pkgapi.LoginRequest{
				Username: username,
				Password: password,
			})
		},
		Fallback: func(ctx context.Context) (string, bool, error) {
			check, err := s.creds.Validate(ctx, username, password)
			if err != nil {
				return "", false, err
			}
			if !check.Valid {
				return "", false, nil
			}
			return check.Token, true, nil
		},
		// Выполняется только после онлайн-успеха: offline-путь
		// не перезаписывает собственный источник
		WriteThrough: func(ctx context.Context, token string) error {
			return s.creds.Store(ctx, username, password, token)
		},
		HasCache: func(ctx context.Context) bool {
			return s.creds.Has(ctx, username)
		},
		ErrNoData: ErrNoOfflineCredentials,
	})
	if err != nil {
		return nil, err
	}

	// Токен сессии нужен последующим операциям (дашборд); сбой записи
	// не отменяет успешный логин
	if err := s.session.SetToken(ctx, result.Value); err != nil {
		s.logger.Warn("failed to persist session token", "error", err)
	}

	if result.FromCache {
		s.logger.Info("logged in using offline credentials", "username", validation.NormalizeUsername(username))
	}

	return &LoginResult{Token: result.Value, FromCache: result.FromCache}, nil
}

// Logout очищает сессию и (опционально) offline-данные.
// Локальная операция: всегда завершается успешно, ошибки очистки
// логируются и проглатываются.
func (s *Service) Logout(ctx context.Context, opts LogoutOptions) error {
	if err := s.session.ClearToken(ctx); err != nil {
		s.logger.Warn("failed to clear session token", "error", err)
	}

	switch {
	case opts.WipeAll:
		s.creds.ClearAll(ctx)
	case opts.WipeCredentials:
		s.creds.ClearCredentials(ctx)
	}

	return nil
}

// IsAuthenticated сообщает, есть ли сохраненный токен сессии
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.session.Token(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
