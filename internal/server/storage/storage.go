// Package storage defines server-side persistence contracts.
package storage

import (
	"context"
	"time"

	"github.com/aemlabs/aemdash/internal/models"
)

//go:generate moq -out user_mock.go . UserStorage

// UserStorage defines interface for account persistence
type UserStorage interface {
	// CreateUser сохраняет нового пользователя
	// Возвращает ErrUserAlreadyExists при дубликате username
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername возвращает пользователя по username
	// Возвращает ErrUserNotFound если пользователь не существует
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateLastLogin обновляет время последнего логина
	UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error
}

//go:generate moq -out dashboard_mock.go . DashboardStorage

// DashboardStorage defines interface for dashboard statistics
type DashboardStorage interface {
	// GetDashboard возвращает полный payload дашборда
	GetDashboard(ctx context.Context) (*models.DashboardData, error)
}
